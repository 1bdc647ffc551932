package withdrawal

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	WithdrawalService interface {
		RequestWithdrawal(ctx context.Context, req domain.RequestWithdrawalRequest, userID string) (domain.RequestWithdrawalResponse, error)
		GetUserTransactions(ctx context.Context, userID string) ([]domain.TransactionResponse, error)
		ApproveWithdrawal(ctx context.Context, transactionID string) (domain.ApproveWithdrawalResponse, error)
	}

	withdrawalService struct {
		withdrawalRepository WithdrawalRepository
	}
)

func NewWithdrawalService(withdrawalRepository WithdrawalRepository) WithdrawalService {
	return &withdrawalService{withdrawalRepository: withdrawalRepository}
}

// RequestWithdrawal debits the balance at request time. The admin completion
// step is bookkeeping only; coins never come back on this path.
func (s *withdrawalService) RequestWithdrawal(ctx context.Context, req domain.RequestWithdrawalRequest, userID string) (domain.RequestWithdrawalResponse, error) {
	if req.Amount <= 0 {
		return domain.RequestWithdrawalResponse{}, domain.ErrInvalidWithdrawalAmount
	}
	if req.Method == "" || req.Account == "" {
		return domain.RequestWithdrawalResponse{}, domain.ErrMissingWithdrawalDetails
	}

	newBalance, err := s.withdrawalRepository.DebitCoins(ctx, userID, req.Amount)
	if err != nil {
		return domain.RequestWithdrawalResponse{}, err
	}

	transaction := &entities.WithdrawalTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      req.Amount,
		Method:      req.Method,
		Account:     req.Account,
		Status:      domain.WithdrawalStatusPending,
		RequestedAt: time.Now(),
	}

	if err := s.withdrawalRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.RequestWithdrawalResponse{}, err
	}

	return domain.RequestWithdrawalResponse{Coins: newBalance}, nil
}

func (s *withdrawalService) GetUserTransactions(ctx context.Context, userID string) ([]domain.TransactionResponse, error) {
	transactions, err := s.withdrawalRepository.GetUserTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, domain.TransactionResponse{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Method:      tx.Method,
			Account:     tx.Account,
			Status:      tx.Status,
			RequestedAt: tx.RequestedAt,
		})
	}
	return result, nil
}

func (s *withdrawalService) ApproveWithdrawal(ctx context.Context, transactionID string) (domain.ApproveWithdrawalResponse, error) {
	if err := s.withdrawalRepository.CompleteTransaction(ctx, transactionID); err != nil {
		return domain.ApproveWithdrawalResponse{}, err
	}
	return domain.ApproveWithdrawalResponse{Status: domain.WithdrawalStatusCompleted}, nil
}
