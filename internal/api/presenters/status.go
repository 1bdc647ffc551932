package presenters

import (
	"UnityGrow-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// StatusFromError maps domain sentinel errors onto HTTP status codes so every
// handler reports the same taxonomy: not-found, conflict, validation,
// insufficient funds, unauthorized.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReferrerNotFound),
		errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrPurchaseNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicatePurchase),
		errors.Is(err, domain.ErrPurchaseNotPending),
		errors.Is(err, domain.ErrEmailOrPhoneTaken),
		errors.Is(err, domain.ErrInvalidOTP):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrOTPExpired):
		return fiber.StatusGone
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotVerified),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientCoins),
		errors.Is(err, domain.ErrInvalidWithdrawalAmount),
		errors.Is(err, domain.ErrMissingWithdrawalDetails):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
