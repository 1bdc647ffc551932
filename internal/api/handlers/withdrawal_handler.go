package handlers

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/internal/api/presenters"
	"UnityGrow-Backend/pkg/withdrawal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WithdrawalHandler interface {
		RequestWithdrawal(c *fiber.Ctx) error
		GetUserTransactions(c *fiber.Ctx) error
	}

	withdrawalHandler struct {
		withdrawalService withdrawal.WithdrawalService
		validator         *validator.Validate
	}
)

func NewWithdrawalHandler(withdrawalService withdrawal.WithdrawalService, validator *validator.Validate) WithdrawalHandler {
	return &withdrawalHandler{
		withdrawalService: withdrawalService,
		validator:         validator,
	}
}

func (h *withdrawalHandler) RequestWithdrawal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RequestWithdrawalRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestWithdrawal, err)
	}

	resp, err := h.withdrawalService.RequestWithdrawal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRequestWithdrawal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRequestWithdrawal)
}

func (h *withdrawalHandler) GetUserTransactions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	transactions, err := h.withdrawalService.GetUserTransactions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, transactions, fiber.StatusOK, domain.MessageSuccessGetTransactions)
}
