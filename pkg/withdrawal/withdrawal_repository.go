package withdrawal

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	WithdrawalRepository interface {
		// DebitCoins performs the read-balance, reserve-check and debit as a
		// single conditional UPDATE, so two racing requests cannot both pass
		// the reserve check against a stale balance. Returns the new balance.
		DebitCoins(ctx context.Context, userID string, amount int64) (int64, error)
		CreateTransaction(ctx context.Context, tx *entities.WithdrawalTransaction) error
		GetUserTransactions(ctx context.Context, userID string) ([]*entities.WithdrawalTransaction, error)
		GetPendingTransactions(ctx context.Context) ([]*entities.WithdrawalTransaction, error)
		CompleteTransaction(ctx context.Context, id string) error
	}

	withdrawalRepository struct {
		db *gorm.DB
	}
)

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) DebitCoins(ctx context.Context, userID string, amount int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("user_id = ? AND coins - ? >= ?", userID, amount, domain.MinimumCoinReserve).
		UpdateColumn("coins", gorm.Expr("coins - ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		var user entities.User
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, domain.ErrUserNotFound
			}
			return 0, err
		}
		return 0, domain.ErrInsufficientCoins
	}

	var user entities.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		return 0, err
	}
	return user.Coins, nil
}

func (r *withdrawalRepository) CreateTransaction(ctx context.Context, tx *entities.WithdrawalTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *withdrawalRepository) GetUserTransactions(ctx context.Context, userID string) ([]*entities.WithdrawalTransaction, error) {
	var transactions []*entities.WithdrawalTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *withdrawalRepository) GetPendingTransactions(ctx context.Context) ([]*entities.WithdrawalTransaction, error) {
	var transactions []*entities.WithdrawalTransaction
	if err := r.db.WithContext(ctx).
		Where("status = ?", domain.WithdrawalStatusPending).
		Order("requested_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *withdrawalRepository) CompleteTransaction(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&entities.WithdrawalTransaction{}).
		Where("id = ? AND status = ?", id, domain.WithdrawalStatusPending).
		Update("status", domain.WithdrawalStatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
