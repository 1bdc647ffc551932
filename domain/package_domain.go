package domain

import (
	"errors"
)

var (
	MessageSuccessGetPackages  = "packages retrieved successfully"
	MessageSuccessSeedPackages = "packages seeded successfully"

	MessageFailedGetPackages  = "failed to retrieve packages"
	MessageFailedSeedPackages = "failed to seed packages"

	ErrPackageNotFound = errors.New("package not found")
)

type (
	PackageResponse struct {
		PackageID   string `json:"package_id"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
		Image       string `json:"image,omitempty"`
		Price       int64  `json:"price"`
	}

	SeedPackagesResponse struct {
		SeededCount int `json:"seeded_count"`
	}
)
