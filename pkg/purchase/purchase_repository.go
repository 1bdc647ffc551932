package purchase

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"UnityGrow-Backend/pkg/referral"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	PurchaseRepository interface {
		CreatePurchase(ctx context.Context, purchase *entities.Purchase) error
		GetPurchaseByID(ctx context.Context, id string) (*entities.Purchase, error)
		GetUserPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error)
		GetPendingPurchases(ctx context.Context) ([]*entities.Purchase, error)
		FindActivePurchase(ctx context.Context, userID, packageID string) (*entities.Purchase, error)

		// ApprovePurchase flips a pending purchase to paid and runs the payout
		// engine against the same database transaction. The status flip is the
		// linearization point: a concurrent approval observes zero affected
		// rows and fails with ErrPurchaseNotPending instead of re-paying.
		ApprovePurchase(ctx context.Context, id string, engine referral.PayoutEngine) ([]domain.PayoutCredit, error)
		RejectPurchase(ctx context.Context, id string) error
	}

	purchaseRepository struct {
		db *gorm.DB
	}
)

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) GetPurchaseByID(ctx context.Context, id string) (*entities.Purchase, error) {
	var purchase entities.Purchase
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) GetUserPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) GetPendingPurchases(ctx context.Context) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("status = ?", domain.PurchaseStatusPending).
		Order("created_at ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) FindActivePurchase(ctx context.Context, userID, packageID string) (*entities.Purchase, error) {
	var purchase entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND package_id = ? AND status IN ?",
			userID, packageID,
			[]string{domain.PurchaseStatusPending, domain.PurchaseStatusPaid},
		).
		First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) ApprovePurchase(ctx context.Context, id string, engine referral.PayoutEngine) ([]domain.PayoutCredit, error) {
	var credits []domain.PayoutCredit

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Purchase{}).
			Where("id = ? AND status = ?", id, domain.PurchaseStatusPending).
			Update("status", domain.PurchaseStatusPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var existing entities.Purchase
			if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrPurchaseNotFound
				}
				return err
			}
			return domain.ErrPurchaseNotPending
		}

		var purchase entities.Purchase
		if err := tx.Where("id = ?", id).First(&purchase).Error; err != nil {
			return err
		}

		ledger := &txUserLedger{tx: tx}
		distributed, err := engine.Distribute(ctx, ledger, purchase.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Buyer row is gone. The purchase stays paid with no ledger
				// credit; surfaced in logs, not to the admin.
				log.Warnf("approve purchase %s: buyer %s not found, no coins distributed", id, purchase.UserID)
				credits = []domain.PayoutCredit{}
				return nil
			}
			return err
		}

		credits = distributed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return credits, nil
}

func (r *purchaseRepository) RejectPurchase(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&entities.Purchase{}).
		Where("id = ? AND status = ?", id, domain.PurchaseStatusPending).
		Update("status", domain.PurchaseStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var existing entities.Purchase
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPurchaseNotFound
			}
			return err
		}
		return domain.ErrPurchaseNotPending
	}
	return nil
}

// txUserLedger adapts the transaction the approval runs in to the payout
// engine's ledger port. Reads take a row lock so the chain of user rows stays
// stable for the duration of the payout.
type txUserLedger struct {
	tx *gorm.DB
}

func (l *txUserLedger) GetByUserID(ctx context.Context, userID string) (*entities.User, error) {
	var user entities.User
	if err := l.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (l *txUserLedger) AddCoins(ctx context.Context, userID string, amount int64) error {
	return l.tx.WithContext(ctx).Model(&entities.User{}).
		Where("user_id = ?", userID).
		UpdateColumn("coins", gorm.Expr("coins + ?", amount)).Error
}
