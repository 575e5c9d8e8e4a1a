package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapverse/snapverse-api/internal/dto"
	"github.com/snapverse/snapverse-api/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
	feedService    *services.FeedService
}

func NewCommentHandler(commentService *services.CommentService, feedService *services.FeedService) *CommentHandler {
	return &CommentHandler{commentService: commentService, feedService: feedService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	comment, err := h.commentService.CreateComment(userID, postID, req.Text, req.ParentCommentID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// List serves a post's top-level comments, oldest first.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	page, limit := pageParams(c, 20)
	comments, total, err := h.feedService.PostComments(viewerID(c), postID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, comments, page, limit, total)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	commentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid comment ID")
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	comment, err := h.commentService.UpdateComment(userID, commentID, req.Text)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	commentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid comment ID")
	}

	if err := h.commentService.DeleteComment(userID, commentID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}

func (h *CommentHandler) Replies(c *fiber.Ctx) error {
	commentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid comment ID")
	}

	page, limit := pageParams(c, 20)
	replies, total, err := h.commentService.Replies(viewerID(c), commentID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, replies, page, limit, total)
}
