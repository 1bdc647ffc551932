package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        string     `gorm:"uniqueIndex;size:6" json:"user_id"`
	Name          string     `json:"name"`
	Phone         string     `gorm:"uniqueIndex" json:"phone"`
	Email         string     `gorm:"uniqueIndex" json:"email"`
	Password      string     `json:"-"`
	ReferralPhone *string    `json:"referral_phone,omitempty"`
	ReferredBy    *string    `gorm:"size:6;index" json:"referred_by,omitempty"`
	Coins         int64      `gorm:"default:0" json:"coins"`
	IsVerified    bool       `gorm:"default:false" json:"is_verified"`
	OTP           string     `json:"-"`
	OTPExpiresAt  *time.Time `json:"-"`
	IsAdmin       bool       `gorm:"default:false" json:"is_admin"`
	PackageName   *string    `json:"package_name,omitempty"`
	PackageActive bool       `gorm:"default:false" json:"package_active"`

	Timestamp
}
