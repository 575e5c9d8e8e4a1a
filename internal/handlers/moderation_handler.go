package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapverse/snapverse-api/internal/dto"
	"github.com/snapverse/snapverse-api/internal/services"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
}

func NewModerationHandler(moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := h.moderationService.CreateReport(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", "")
	page, limit := pageParams(c, 20)

	reports, total, err := h.moderationService.ListReports(status, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, reports, page, limit, total)
}

func (h *ModerationHandler) ActionReport(c *fiber.Ctx) error {
	reportID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	var req dto.ActionReportRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.moderationService.ActionReport(reportID, &req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Report updated successfully"})
}

func (h *ModerationHandler) BlockUser(c *fiber.Ctx) error {
	blockerID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.moderationService.BlockUser(blockerID, req.BlockedID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User blocked successfully"})
}

func (h *ModerationHandler) UnblockUser(c *fiber.Ctx) error {
	blockerID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	blockedID, err := parseUUIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.moderationService.UnblockUser(blockerID, blockedID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User unblocked successfully"})
}

func (h *ModerationHandler) BlockedUsers(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c, 20)
	blocks, total, err := h.moderationService.BlockedUsers(userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return paginated(c, blocks, page, limit, total)
}
