package entities

import (
	"time"

	"github.com/google/uuid"
)

type WithdrawalTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      string    `gorm:"size:6;index" json:"user_id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"` // upi, bank, paypal
	Account     string    `json:"account"`
	Status      string    `gorm:"default:pending" json:"status"` // pending, completed
	RequestedAt time.Time `gorm:"type:timestamp" json:"requested_at"`

	Timestamp
}
