package entities

import (
	"github.com/google/uuid"
)

type Package struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PackageID   string    `gorm:"uniqueIndex" json:"package_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Price       int64     `json:"price"`

	Timestamp
}
