package catalog

import (
	"UnityGrow-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PackageRepository interface {
		GetPackages(ctx context.Context) ([]*entities.Package, error)
		GetPackageByID(ctx context.Context, packageID string) (*entities.Package, error)
		ReplacePackages(ctx context.Context, packages []*entities.Package) error
	}

	packageRepository struct {
		db *gorm.DB
	}
)

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) GetPackages(ctx context.Context) ([]*entities.Package, error) {
	var packages []*entities.Package
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) GetPackageByID(ctx context.Context, packageID string) (*entities.Package, error) {
	var pkg entities.Package
	if err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) ReplacePackages(ctx context.Context, packages []*entities.Package) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Package{}).Error; err != nil {
			return err
		}
		return tx.Create(packages).Error
	})
}
