package handlers

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/internal/api/presenters"
	"UnityGrow-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		VerifyOTP(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		RequestPasswordReset(c *fiber.Ctx) error
		VerifyResetOTP(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
		GetMyTeam(c *fiber.Ctx) error
		GetCoins(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	resp, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) VerifyOTP(c *fiber.Ctx) error {
	req := new(domain.VerifyOTPRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOTP, err)
	}

	if err := h.userService.VerifyOTP(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedVerifyOTP, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyOTP)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	resp, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) RequestPasswordReset(c *fiber.Ctx) error {
	req := new(domain.RequestPasswordResetRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestReset, err)
	}

	resp, err := h.userService.RequestPasswordReset(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRequestReset, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRequestReset)
}

func (h *userHandler) VerifyResetOTP(c *fiber.Ctx) error {
	req := new(domain.VerifyOTPRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOTP, err)
	}

	if err := h.userService.VerifyResetOTP(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedVerifyOTP, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyOTP)
}

func (h *userHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPassword(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedResetPassword, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetPassword)
}

func (h *userHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *userHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	profile, err := h.userService.UpdateProfile(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}

func (h *userHandler) GetMyTeam(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	team, err := h.userService.GetMyTeam(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetTeam, err)
	}

	return presenters.SuccessResponse(c, team, fiber.StatusOK, domain.MessageSuccessGetTeam)
}

func (h *userHandler) GetCoins(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	coins, err := h.userService.GetCoins(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetCoins, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"coins": coins}, fiber.StatusOK, domain.MessageSuccessGetCoins)
}
