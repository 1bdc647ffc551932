package referral

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"context"
)

type (
	// UserLedger is the slice of the user store the payout engine needs:
	// resolve a userId and credit coins. Implementations are expected to
	// scope both calls to the same database transaction.
	UserLedger interface {
		GetByUserID(ctx context.Context, userID string) (*entities.User, error)
		AddCoins(ctx context.Context, userID string, amount int64) error
	}

	PayoutEngine interface {
		Distribute(ctx context.Context, ledger UserLedger, buyerUserID string) ([]domain.PayoutCredit, error)
	}

	payoutEngine struct {
		rewards [4]int64
	}
)

func NewPayoutEngine() PayoutEngine {
	return &payoutEngine{rewards: domain.ReferralRewards}
}

// Distribute credits the buyer and up to three referrers above them. The walk
// is driven by a level counter, not the chain length, so it terminates after
// at most four credits even on a corrupted chain. A missing referrer ends the
// walk early; the credits made so far stand.
func (e *payoutEngine) Distribute(ctx context.Context, ledger UserLedger, buyerUserID string) ([]domain.PayoutCredit, error) {
	buyer, err := ledger.GetByUserID(ctx, buyerUserID)
	if err != nil {
		return nil, err
	}

	if err := ledger.AddCoins(ctx, buyer.UserID, e.rewards[0]); err != nil {
		return nil, err
	}
	credits := []domain.PayoutCredit{{UserID: buyer.UserID, Amount: e.rewards[0]}}

	current := buyer
	for level := 1; level < len(e.rewards); level++ {
		if current.ReferredBy == nil {
			break
		}

		referrer, err := ledger.GetByUserID(ctx, *current.ReferredBy)
		if err != nil {
			break
		}

		if err := ledger.AddCoins(ctx, referrer.UserID, e.rewards[level]); err != nil {
			return credits, err
		}
		credits = append(credits, domain.PayoutCredit{UserID: referrer.UserID, Amount: e.rewards[level]})

		current = referrer
	}

	return credits, nil
}
