package domain

import (
	"time"
)

var (
	MessageSuccessGetPendingPurchases   = "pending purchases retrieved successfully"
	MessageSuccessGetAllUsers           = "users retrieved successfully"
	MessageSuccessGetUser               = "user retrieved successfully"
	MessageSuccessUpdateUser            = "user updated successfully"
	MessageSuccessGetPendingWithdrawals = "pending withdrawals retrieved successfully"
	MessageSuccessGetStats              = "stats retrieved successfully"

	MessageFailedGetPendingPurchases   = "failed to retrieve pending purchases"
	MessageFailedGetAllUsers           = "failed to retrieve users"
	MessageFailedGetUser               = "failed to retrieve user"
	MessageFailedUpdateUser            = "failed to update user"
	MessageFailedGetPendingWithdrawals = "failed to retrieve pending withdrawals"
	MessageFailedGetStats              = "failed to retrieve stats"
)

type (
	PendingPurchase struct {
		ID         string `json:"id"`
		UserID     string `json:"user_id"`
		Name       string `json:"name"`
		PackageID  string `json:"package_id"`
		Price      int64  `json:"price"`
		Screenshot string `json:"screenshot,omitempty"`
		Status     string `json:"status"`
	}

	AdminUserSummary struct {
		UserID        string   `json:"user_id"`
		Name          string   `json:"name"`
		Phone         string   `json:"phone"`
		ReferralPhone string   `json:"referral_phone"`
		Packages      []string `json:"packages"`
		TotalEarnings int64    `json:"total_earnings"` // placeholder, always zero
	}

	AdminUpdateUserRequest struct {
		Name          string `json:"name" validate:"omitempty"`
		Phone         string `json:"phone" validate:"omitempty"`
		ReferralPhone string `json:"referral_phone" validate:"omitempty"`
	}

	// AdminStats mirrors the dashboard counters: TotalEarnings is the coin sum
	// across all users, PendingRequests the number of open withdrawals.
	AdminStats struct {
		TotalUsers      int64 `json:"total_users"`
		TotalEarnings   int64 `json:"total_earnings"`
		PendingRequests int64 `json:"pending_requests"`
	}

	PendingWithdrawal struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		Name        string    `json:"name"`
		Amount      int64     `json:"amount"`
		Method      string    `json:"method"`
		Account     string    `json:"account"`
		RequestedAt time.Time `json:"requested_at"`
	}
)
