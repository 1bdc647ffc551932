package catalog

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"context"

	"github.com/google/uuid"
)

type (
	PackageService interface {
		GetPackages(ctx context.Context) ([]domain.PackageResponse, error)
		SeedPackages(ctx context.Context) (domain.SeedPackagesResponse, error)
	}

	packageService struct {
		packageRepository PackageRepository
	}
)

func NewPackageService(packageRepository PackageRepository) PackageService {
	return &packageService{packageRepository: packageRepository}
}

func (s *packageService) GetPackages(ctx context.Context) ([]domain.PackageResponse, error) {
	packages, err := s.packageRepository.GetPackages(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, domain.PackageResponse{
			PackageID:   pkg.PackageID,
			Title:       pkg.Title,
			Description: pkg.Description,
			Image:       pkg.Image,
			Price:       pkg.Price,
		})
	}
	return result, nil
}

// SeedPackages replaces the catalog with the three stock growth packages.
// Dev helper, wired behind the admin routes.
func (s *packageService) SeedPackages(ctx context.Context) (domain.SeedPackagesResponse, error) {
	seed := []*entities.Package{
		{
			ID:          uuid.New(),
			PackageID:   "basic-001",
			Title:       "Basic Growth Package",
			Description: "Access core resources and local communities.",
			Image:       "basic.png",
			Price:       1000,
		},
		{
			ID:          uuid.New(),
			PackageID:   "pro-001",
			Title:       "Nation Growth Package",
			Description: "Serving the nation by serving the retired soldiers.",
			Image:       "pro.png",
			Price:       1000,
		},
		{
			ID:          uuid.New(),
			PackageID:   "elite-001",
			Title:       "Community Growth Package",
			Description: "Serving the growth to the NGO and our social community.",
			Image:       "elite.png",
			Price:       1000,
		},
	}

	if err := s.packageRepository.ReplacePackages(ctx, seed); err != nil {
		return domain.SeedPackagesResponse{}, err
	}
	return domain.SeedPackagesResponse{SeededCount: len(seed)}, nil
}
