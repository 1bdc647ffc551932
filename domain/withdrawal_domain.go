package domain

import (
	"errors"
	"fmt"
	"time"
)

// MinimumCoinReserve is the balance a user must keep after any withdrawal.
const MinimumCoinReserve = 50

var (
	MessageSuccessRequestWithdrawal = "withdrawal request submitted successfully"
	MessageSuccessGetTransactions   = "transactions retrieved successfully"
	MessageSuccessApproveWithdrawal = "withdrawal approved"

	MessageFailedRequestWithdrawal = "failed to request withdrawal"
	MessageFailedGetTransactions   = "failed to retrieve transactions"
	MessageFailedApproveWithdrawal = "failed to approve withdrawal"

	ErrInvalidWithdrawalAmount  = errors.New("invalid withdrawal amount")
	ErrMissingWithdrawalDetails = errors.New("withdrawal method and account are required")
	ErrInsufficientCoins        = fmt.Errorf(
		"insufficient coins, you must keep at least %d coins in your account",
		MinimumCoinReserve,
	)
	ErrTransactionNotFound = errors.New("transaction not found or already processed")
)

const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusCompleted = "completed"
)

type (
	RequestWithdrawalRequest struct {
		Amount  int64  `json:"amount" validate:"required,min=1"`
		Method  string `json:"method" validate:"required,oneof=upi bank paypal"`
		Account string `json:"account" validate:"required"`
	}

	RequestWithdrawalResponse struct {
		Coins int64 `json:"coins"`
	}

	TransactionResponse struct {
		ID          string    `json:"id"`
		Amount      int64     `json:"amount"`
		Method      string    `json:"method"`
		Account     string    `json:"account"`
		Status      string    `json:"status"`
		RequestedAt time.Time `json:"requested_at"`
	}

	ApproveWithdrawalResponse struct {
		Status string `json:"status"`
	}
)
