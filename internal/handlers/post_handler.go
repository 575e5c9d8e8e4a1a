package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/config"
	"github.com/snapverse/snapverse-api/internal/dto"
	"github.com/snapverse/snapverse-api/internal/media"
	"github.com/snapverse/snapverse-api/internal/services"
)

type PostHandler struct {
	postService *services.PostService
	feedService *services.FeedService
	cfg         *config.Config
}

func NewPostHandler(postService *services.PostService, feedService *services.FeedService, cfg *config.Config) *PostHandler {
	return &PostHandler{postService: postService, feedService: feedService, cfg: cfg}
}

// Create accepts either JSON or multipart. A multipart request may carry an
// image file, which is validated and stored before the post row is written.
func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh, err := c.FormFile("image"); err == nil {
		if err := media.ValidateImageUpload(fh); err != nil {
			if errors.Is(err, media.ErrTooLarge) || errors.Is(err, media.ErrInvalidFormat) {
				return errorJSON(c, fiber.StatusBadRequest, err.Error())
			}
			return respondError(c, err)
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		name := fmt.Sprintf("%s%s", uuid.New(), ext)
		dest := filepath.Join(h.cfg.UploadDir, "posts", name)
		if err := c.SaveFile(fh, dest); err != nil {
			return respondError(c, err)
		}
		req.ImageURL = "/uploads/posts/" + name
	}

	post, err := h.postService.CreatePost(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postService.GetPost(viewerID(c), postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	post, err := h.postService.UpdatePost(userID, postID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	if err := h.postService.DeletePost(userID, postID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// Feed serves the global feed, visible to anonymous viewers as public-only.
func (h *PostHandler) Feed(c *fiber.Ctx) error {
	page, limit := pageParams(c, 10)
	posts, total, err := h.feedService.GlobalFeed(viewerID(c), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, posts, page, limit, total)
}

func (h *PostHandler) UserPosts(c *fiber.Ctx) error {
	authorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	page, limit := pageParams(c, 10)
	posts, total, err := h.feedService.UserPosts(viewerID(c), authorID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, posts, page, limit, total)
}

func (h *PostHandler) MyPosts(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c, 10)
	posts, total, err := h.feedService.UserPosts(userID, userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, posts, page, limit, total)
}

func (h *PostHandler) React(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var req dto.ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	action, err := h.postService.React(userID, postID, req.Type)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"action": action})
}

func (h *PostHandler) RemoveReaction(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	if err := h.postService.RemoveReaction(userID, postID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Reaction removed"})
}

func (h *PostHandler) Reactions(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	reactions, err := h.postService.Reactions(viewerID(c), postID, c.Query("type", ""))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": reactions})
}
