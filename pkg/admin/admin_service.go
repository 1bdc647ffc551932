package admin

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/pkg/catalog"
	"UnityGrow-Backend/pkg/purchase"
	"UnityGrow-Backend/pkg/user"
	"UnityGrow-Backend/pkg/withdrawal"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	AdminService interface {
		GetPendingPurchases(ctx context.Context) ([]domain.PendingPurchase, error)
		GetAllUsers(ctx context.Context) ([]domain.AdminUserSummary, error)
		GetUserByID(ctx context.Context, userID string) (domain.UserProfile, error)
		UpdateUser(ctx context.Context, req domain.AdminUpdateUserRequest, userID string) (domain.UserProfile, error)
		GetPendingWithdrawals(ctx context.Context) ([]domain.PendingWithdrawal, error)
		GetStats(ctx context.Context) (domain.AdminStats, error)
	}

	adminService struct {
		userRepository       user.UserRepository
		purchaseRepository   purchase.PurchaseRepository
		packageRepository    catalog.PackageRepository
		withdrawalRepository withdrawal.WithdrawalRepository
	}
)

func NewAdminService(
	userRepository user.UserRepository,
	purchaseRepository purchase.PurchaseRepository,
	packageRepository catalog.PackageRepository,
	withdrawalRepository withdrawal.WithdrawalRepository,
) AdminService {
	return &adminService{
		userRepository:       userRepository,
		purchaseRepository:   purchaseRepository,
		packageRepository:    packageRepository,
		withdrawalRepository: withdrawalRepository,
	}
}

func (s *adminService) GetPendingPurchases(ctx context.Context) ([]domain.PendingPurchase, error) {
	pending, err := s.purchaseRepository.GetPendingPurchases(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PendingPurchase, 0, len(pending))
	for _, p := range pending {
		name := "Unknown"
		if u, err := s.userRepository.GetUserByUserID(ctx, p.UserID); err == nil {
			name = u.Name
		}

		// Catalog price wins; the price recorded on the purchase is the
		// fallback when the package row is gone.
		price := p.Price
		if pkg, err := s.packageRepository.GetPackageByID(ctx, p.PackageID); err == nil {
			price = pkg.Price
		}

		result = append(result, domain.PendingPurchase{
			ID:         p.ID.String(),
			UserID:     p.UserID,
			Name:       name,
			PackageID:  p.PackageID,
			Price:      price,
			Screenshot: p.Screenshot,
			Status:     p.Status,
		})
	}
	return result, nil
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]domain.AdminUserSummary, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdminUserSummary, 0, len(users))
	for _, u := range users {
		purchases, err := s.purchaseRepository.GetUserPurchases(ctx, u.UserID)
		if err != nil {
			return nil, err
		}

		titles := make([]string, 0, len(purchases))
		for _, p := range purchases {
			if pkg, err := s.packageRepository.GetPackageByID(ctx, p.PackageID); err == nil {
				titles = append(titles, pkg.Title)
			}
		}

		referralPhone := "-"
		if u.ReferralPhone != nil && *u.ReferralPhone != "" {
			referralPhone = *u.ReferralPhone
		}

		result = append(result, domain.AdminUserSummary{
			UserID:        u.UserID,
			Name:          u.Name,
			Phone:         u.Phone,
			ReferralPhone: referralPhone,
			Packages:      titles,
			TotalEarnings: 0, // placeholder, not computed from the ledger
		})
	}
	return result, nil
}

func (s *adminService) GetUserByID(ctx context.Context, userID string) (domain.UserProfile, error) {
	u, err := s.userRepository.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	return domain.UserProfile{
		UserID:        u.UserID,
		Name:          u.Name,
		Phone:         u.Phone,
		Email:         u.Email,
		ReferralPhone: u.ReferralPhone,
		ReferredBy:    u.ReferredBy,
		Coins:         u.Coins,
		IsVerified:    u.IsVerified,
		PackageName:   u.PackageName,
		PackageActive: u.PackageActive,
		CreatedAt:     u.CreatedAt,
	}, nil
}

func (s *adminService) UpdateUser(ctx context.Context, req domain.AdminUpdateUserRequest, userID string) (domain.UserProfile, error) {
	u, err := s.userRepository.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.ReferralPhone != "" {
		u.ReferralPhone = &req.ReferralPhone
	}

	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return domain.UserProfile{}, err
	}
	return s.GetUserByID(ctx, userID)
}

func (s *adminService) GetStats(ctx context.Context) (domain.AdminStats, error) {
	totalUsers, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return domain.AdminStats{}, err
	}

	totalCoins, err := s.userRepository.SumCoins(ctx)
	if err != nil {
		return domain.AdminStats{}, err
	}

	pending, err := s.withdrawalRepository.GetPendingTransactions(ctx)
	if err != nil {
		return domain.AdminStats{}, err
	}

	return domain.AdminStats{
		TotalUsers:      totalUsers,
		TotalEarnings:   totalCoins,
		PendingRequests: int64(len(pending)),
	}, nil
}

func (s *adminService) GetPendingWithdrawals(ctx context.Context) ([]domain.PendingWithdrawal, error) {
	pending, err := s.withdrawalRepository.GetPendingTransactions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PendingWithdrawal, 0, len(pending))
	for _, tx := range pending {
		name := "Unknown"
		if u, err := s.userRepository.GetUserByUserID(ctx, tx.UserID); err == nil {
			name = u.Name
		}

		result = append(result, domain.PendingWithdrawal{
			ID:          tx.ID.String(),
			UserID:      tx.UserID,
			Name:        name,
			Amount:      tx.Amount,
			Method:      tx.Method,
			Account:     tx.Account,
			RequestedAt: tx.RequestedAt,
		})
	}
	return result, nil
}
