package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/dto"
	"github.com/snapverse/snapverse-api/internal/middleware"
	"github.com/snapverse/snapverse-api/internal/services"
)

// respondError maps service error categories onto HTTP statuses. Anything
// outside the taxonomy is a 500 and gets logged; taxonomy errors carry their
// own message to the client.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrConflict):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrInvalidToken):
		return errorJSON(c, fiber.StatusUnauthorized, err.Error())
	default:
		slog.Error("unhandled service error",
			"path", c.Path(),
			"method", c.Method(),
			"error", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func unauthorized(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
}

// callerID returns the authenticated caller's ID. Routes behind JWTProtected
// always have one; an error means a malformed token slipped through.
func callerID(c *fiber.Ctx) (uuid.UUID, error) {
	return middleware.GetUserID(c)
}

// viewerID is callerID for optionally-authenticated routes: anonymous
// callers come back as uuid.Nil.
func viewerID(c *fiber.Ctx) uuid.UUID {
	id, err := middleware.GetUserID(c)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// pageParams reads page/limit query params with a per-resource default limit,
// capped at 100.
func pageParams(c *fiber.Ctx, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func paginated(c *fiber.Ctx, data interface{}, page, limit int, total int64) error {
	return c.JSON(dto.PaginatedResponse{
		Data:       data,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
