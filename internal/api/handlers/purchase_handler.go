package handlers

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/internal/api/presenters"
	"UnityGrow-Backend/pkg/purchase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		CreatePurchase(c *fiber.Ctx) error
		GetUserPurchases(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		purchaseService purchase.PurchaseService
		validator       *validator.Validate
	}
)

func NewPurchaseHandler(purchaseService purchase.PurchaseService, validator *validator.Validate) PurchaseHandler {
	return &purchaseHandler{
		purchaseService: purchaseService,
		validator:       validator,
	}
}

func (h *purchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreatePurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if screenshot, err := c.FormFile("screenshot"); err == nil {
		req.Screenshot = screenshot
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchase, err)
	}

	resp, err := h.purchaseService.CreatePurchase(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreatePurchase, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreatePurchase)
}

func (h *purchaseHandler) GetUserPurchases(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	purchases, err := h.purchaseService.GetUserPurchases(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetUserPurchases, err)
	}

	return presenters.SuccessResponse(c, purchases, fiber.StatusOK, domain.MessageSuccessGetUserPurchases)
}
