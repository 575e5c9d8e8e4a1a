package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/snapverse/snapverse-api/internal/services"
)

type FollowHandler struct {
	followService *services.FollowService
}

func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow creates an edge toward the target user. Public targets come back
// approved; private ones come back pending.
func (h *FollowHandler) Follow(c *fiber.Ctx) error {
	followerID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	followeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	edge, err := h.followService.RequestFollow(followerID, followeeID)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusCreated
	msg := "Now following"
	if edge.Status == models.FollowStatusPending {
		msg = "Follow request sent"
	}
	return c.Status(status).JSON(fiber.Map{"message": msg, "follow": edge})
}

func (h *FollowHandler) Unfollow(c *fiber.Ctx) error {
	followerID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	followeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.followService.Unfollow(followerID, followeeID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed"})
}

func (h *FollowHandler) Approve(c *fiber.Ctx) error {
	actorID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	followID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid follow request ID")
	}

	edge, err := h.followService.ApproveFollow(actorID, followID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Follow request approved", "follow": edge})
}

func (h *FollowHandler) Reject(c *fiber.Ctx) error {
	actorID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	followID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid follow request ID")
	}

	if err := h.followService.RejectFollow(actorID, followID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Follow request rejected"})
}

// RemoveFollower drops an incoming approved edge.
func (h *FollowHandler) RemoveFollower(c *fiber.Ctx) error {
	followeeID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	followerID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.followService.RemoveFollower(followeeID, followerID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Follower removed"})
}

func (h *FollowHandler) Followers(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	page, limit := pageParams(c, 20)
	edges, total, err := h.followService.Followers(userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, edges, page, limit, total)
}

func (h *FollowHandler) Following(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	page, limit := pageParams(c, 20)
	edges, total, err := h.followService.Following(userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, edges, page, limit, total)
}

// Stats returns follower/following/pending counts for a user.
func (h *FollowHandler) Stats(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	followers, following, pending, err := h.followService.Stats(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"followers": followers,
		"following": following,
		"pending":   pending,
	})
}

// PendingRequests lists the caller's incoming follow requests.
func (h *FollowHandler) PendingRequests(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c, 20)
	edges, total, err := h.followService.PendingRequests(userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, edges, page, limit, total)
}
