package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapverse/snapverse-api/internal/config"
	"github.com/snapverse/snapverse-api/internal/dto"
	"github.com/snapverse/snapverse-api/internal/services"
)

type PaymentHandler struct {
	subscriptionService *services.SubscriptionService
	cfg                 *config.Config
}

func NewPaymentHandler(subscriptionService *services.SubscriptionService, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{subscriptionService: subscriptionService, cfg: cfg}
}

// InitiatePro opens a pro payment session and returns the transaction the
// client hands to the gateway checkout.
func (h *PaymentHandler) InitiatePro(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	sub, err := h.subscriptionService.InitiatePro(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InitiateProResponse{
		TransactionID: sub.TransactionID,
		AmountBDT:     sub.AmountBDT,
		Gateway:       h.cfg.PaymentGateway,
	})
}

// Webhook receives the gateway's IPN callback. It is unauthenticated; the
// transaction ID is the shared secret.
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	var req dto.PaymentWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.TranID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "tran_id is required")
	}

	if err := h.subscriptionService.HandleWebhook(req.TranID, req.Status); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Payment processed"})
}

func (h *PaymentHandler) Status(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}

	sub, err := h.subscriptionService.Status(userID)
	if err != nil {
		return respondError(c, err)
	}
	if sub == nil {
		return c.JSON(fiber.Map{"subscription": nil, "is_pro": false})
	}

	return c.JSON(fiber.Map{
		"subscription": sub,
		"is_pro":       sub.Status == "active",
	})
}
