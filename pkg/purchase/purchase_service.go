package purchase

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"UnityGrow-Backend/internal/utils/storage"
	"UnityGrow-Backend/pkg/catalog"
	"UnityGrow-Backend/pkg/referral"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PurchaseService interface {
		CreatePurchase(ctx context.Context, req domain.CreatePurchaseRequest, userID string) (domain.PurchaseResponse, error)
		GetUserPurchases(ctx context.Context, userID string) ([]domain.PurchaseResponse, error)
		ApprovePurchase(ctx context.Context, purchaseID string) (domain.ApprovePurchaseResponse, error)
		RejectPurchase(ctx context.Context, purchaseID string) (domain.RejectPurchaseResponse, error)
	}

	purchaseService struct {
		purchaseRepository PurchaseRepository
		packageRepository  catalog.PackageRepository
		payoutEngine       referral.PayoutEngine
		s3                 storage.AwsS3
	}
)

func NewPurchaseService(
	purchaseRepository PurchaseRepository,
	packageRepository catalog.PackageRepository,
	payoutEngine referral.PayoutEngine,
	s3 storage.AwsS3,
) PurchaseService {
	return &purchaseService{
		purchaseRepository: purchaseRepository,
		packageRepository:  packageRepository,
		payoutEngine:       payoutEngine,
		s3:                 s3,
	}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req domain.CreatePurchaseRequest, userID string) (domain.PurchaseResponse, error) {
	pkg, err := s.packageRepository.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PurchaseResponse{}, domain.ErrPackageNotFound
		}
		return domain.PurchaseResponse{}, err
	}

	_, err = s.purchaseRepository.FindActivePurchase(ctx, userID, req.PackageID)
	if err == nil {
		return domain.PurchaseResponse{}, domain.ErrDuplicatePurchase
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PurchaseResponse{}, err
	}

	screenshotURL := ""
	if req.Screenshot != nil {
		fileName := fmt.Sprintf("purchase-%s-%d", userID, time.Now().Unix())
		objectKey, err := s.s3.UploadFile(fileName, req.Screenshot, "purchases", storage.AllowImage...)
		if err != nil {
			return domain.PurchaseResponse{}, err
		}
		screenshotURL = s.s3.GetPublicLinkKey(objectKey)
	}

	purchase := &entities.Purchase{
		ID:         uuid.New(),
		UserID:     userID,
		PackageID:  pkg.PackageID,
		Price:      pkg.Price,
		Status:     domain.PurchaseStatusPending,
		Screenshot: screenshotURL,
	}

	if err := s.purchaseRepository.CreatePurchase(ctx, purchase); err != nil {
		return domain.PurchaseResponse{}, err
	}

	return domain.PurchaseResponse{
		PackageID:  purchase.PackageID,
		Status:     purchase.Status,
		Screenshot: purchase.Screenshot,
	}, nil
}

func (s *purchaseService) GetUserPurchases(ctx context.Context, userID string) ([]domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetUserPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		result = append(result, domain.PurchaseResponse{
			PackageID:  p.PackageID,
			Status:     p.Status,
			Screenshot: p.Screenshot,
		})
	}
	return result, nil
}

func (s *purchaseService) ApprovePurchase(ctx context.Context, purchaseID string) (domain.ApprovePurchaseResponse, error) {
	credits, err := s.purchaseRepository.ApprovePurchase(ctx, purchaseID, s.payoutEngine)
	if err != nil {
		return domain.ApprovePurchaseResponse{}, err
	}

	return domain.ApprovePurchaseResponse{
		Status:      domain.PurchaseStatusPaid,
		Distributed: credits,
	}, nil
}

func (s *purchaseService) RejectPurchase(ctx context.Context, purchaseID string) (domain.RejectPurchaseResponse, error) {
	purchase, err := s.purchaseRepository.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RejectPurchaseResponse{}, domain.ErrPurchaseNotFound
		}
		return domain.RejectPurchaseResponse{}, err
	}

	if err := s.purchaseRepository.RejectPurchase(ctx, purchaseID); err != nil {
		return domain.RejectPurchaseResponse{}, err
	}

	// The screenshot has no further use once the review is over; a failed
	// delete is logged, the rejection stands either way.
	if purchase.Screenshot != "" {
		if key := s.s3.GetObjectKeyFromLink(purchase.Screenshot); key != "" {
			if err := s.s3.DeleteFile(key); err != nil {
				log.Warnf("reject purchase %s: failed to delete screenshot %s: %v", purchaseID, key, err)
			}
		}
	}

	return domain.RejectPurchaseResponse{Status: domain.PurchaseStatusRejected}, nil
}
