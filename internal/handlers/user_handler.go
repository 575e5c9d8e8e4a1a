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

type UserHandler struct {
	userService *services.UserService
	cfg         *config.Config
}

func NewUserHandler(userService *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{userService: userService, cfg: cfg}
}

// GetProfile serves a profile by username, shaped by the viewer's
// relationship to the account.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	target, err := h.userService.GetByUsername(c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	profile, err := h.userService.Profile(viewerID(c), target)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	target, err := h.userService.GetByID(userID)
	if err != nil {
		return respondError(c, err)
	}

	profile, err := h.userService.Profile(userID, target)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

func (h *UserHandler) SetPrivacy(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SetPrivacyRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.userService.SetPrivacy(userID, req.IsPrivate)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

func (h *UserHandler) UploadProfilePicture(c *fiber.Ctx) error {
	return h.uploadImage(c, "avatars", h.userService.SetProfilePicture)
}

func (h *UserHandler) UploadCoverPhoto(c *fiber.Ctx) error {
	return h.uploadImage(c, "covers", h.userService.SetCoverPhoto)
}

func (h *UserHandler) uploadImage(c *fiber.Ctx, subdir string, save func(uuid.UUID, string) error) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "image file is required")
	}

	if err := media.ValidateImageUpload(fh); err != nil {
		if errors.Is(err, media.ErrTooLarge) || errors.Is(err, media.ErrInvalidFormat) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return respondError(c, err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%s%s", uuid.New(), ext)
	dest := filepath.Join(h.cfg.UploadDir, subdir, name)
	if err := c.SaveFile(fh, dest); err != nil {
		return respondError(c, err)
	}

	url := "/uploads/" + subdir + "/" + name
	if err := save(userID, url); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"url": url})
}
