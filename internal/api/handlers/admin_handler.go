package handlers

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/internal/api/presenters"
	"UnityGrow-Backend/pkg/admin"
	"UnityGrow-Backend/pkg/purchase"
	"UnityGrow-Backend/pkg/withdrawal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetPendingPurchases(c *fiber.Ctx) error
		ApprovePurchase(c *fiber.Ctx) error
		RejectPurchase(c *fiber.Ctx) error
		GetAllUsers(c *fiber.Ctx) error
		GetUserByID(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		GetPendingWithdrawals(c *fiber.Ctx) error
		ApproveWithdrawal(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService      admin.AdminService
		purchaseService   purchase.PurchaseService
		withdrawalService withdrawal.WithdrawalService
		validator         *validator.Validate
	}
)

func NewAdminHandler(
	adminService admin.AdminService,
	purchaseService purchase.PurchaseService,
	withdrawalService withdrawal.WithdrawalService,
	validator *validator.Validate,
) AdminHandler {
	return &adminHandler{
		adminService:      adminService,
		purchaseService:   purchaseService,
		withdrawalService: withdrawalService,
		validator:         validator,
	}
}

func (h *adminHandler) GetPendingPurchases(c *fiber.Ctx) error {
	purchases, err := h.adminService.GetPendingPurchases(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetPendingPurchases, err)
	}

	return presenters.SuccessResponse(c, purchases, fiber.StatusOK, domain.MessageSuccessGetPendingPurchases)
}

func (h *adminHandler) ApprovePurchase(c *fiber.Ctx) error {
	id := c.Params("id")

	resp, err := h.purchaseService.ApprovePurchase(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedApprovePurchase, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessApprovePurchase)
}

func (h *adminHandler) RejectPurchase(c *fiber.Ctx) error {
	id := c.Params("id")

	resp, err := h.purchaseService.RejectPurchase(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRejectPurchase, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRejectPurchase)
}

func (h *adminHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.adminService.GetAllUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetAllUsers, err)
	}

	return presenters.SuccessResponse(c, users, fiber.StatusOK, domain.MessageSuccessGetAllUsers)
}

func (h *adminHandler) GetUserByID(c *fiber.Ctx) error {
	userID := c.Params("userId")

	user, err := h.adminService.GetUserByID(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, user, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *adminHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	req := new(domain.AdminUpdateUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	user, err := h.adminService.UpdateUser(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateUser, err)
	}

	return presenters.SuccessResponse(c, user, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *adminHandler) GetPendingWithdrawals(c *fiber.Ctx) error {
	withdrawals, err := h.adminService.GetPendingWithdrawals(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetPendingWithdrawals, err)
	}

	return presenters.SuccessResponse(c, withdrawals, fiber.StatusOK, domain.MessageSuccessGetPendingWithdrawals)
}

func (h *adminHandler) ApproveWithdrawal(c *fiber.Ctx) error {
	id := c.Params("id")

	resp, err := h.withdrawalService.ApproveWithdrawal(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedApproveWithdrawal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessApproveWithdrawal)
}

func (h *adminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}
