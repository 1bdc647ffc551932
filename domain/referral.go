package domain

// ReferralRewards is the fixed payout schedule applied when a purchase is
// approved: index 0 goes to the buyer, indexes 1..3 to the referral chain
// above the buyer. The walk stops at the first missing referrer, so a payout
// is always at most four credits.
var ReferralRewards = [4]int64{150, 450, 45, 5}

type PayoutCredit struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}
