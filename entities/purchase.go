package entities

import (
	"github.com/google/uuid"
)

type Purchase struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     string    `gorm:"size:6;uniqueIndex:idx_user_package" json:"user_id"`
	PackageID  string    `gorm:"uniqueIndex:idx_user_package" json:"package_id"`
	Price      int64     `json:"price"`
	Status     string    `gorm:"default:pending" json:"status"` // pending, paid, rejected
	Screenshot string    `json:"screenshot,omitempty"`

	Timestamp
}
