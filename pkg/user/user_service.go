package user

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"UnityGrow-Backend/internal/utils/mailing"
	"UnityGrow-Backend/pkg/jwt"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		RequestPasswordReset(ctx context.Context, req domain.RequestPasswordResetRequest) (domain.RequestPasswordResetResponse, error)
		VerifyResetOTP(ctx context.Context, req domain.VerifyOTPRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserProfile, error)
		GetMyTeam(ctx context.Context, userID string) ([]domain.TeamMember, error)
		GetCoins(ctx context.Context, userID string) (int64, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

// generateUserID returns a 6-character uppercase alphanumeric id derived from
// a fresh uuid, matching the ids users share as referral codes.
func generateUserID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:6])
}

func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.CheckEmailOrPhoneExists(ctx, req.Email, req.Phone)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailOrPhoneTaken
	}

	// Referral input can be either the referrer's phone number or their
	// 6-char userId.
	var referralPhone, referredBy *string
	if req.ReferralInput != "" {
		var refUser *entities.User
		var refErr error
		if phonePattern.MatchString(req.ReferralInput) {
			refUser, refErr = s.userRepository.GetUserByPhone(ctx, req.ReferralInput)
		} else {
			refUser, refErr = s.userRepository.GetUserByUserID(ctx, strings.ToUpper(req.ReferralInput))
		}
		if refErr != nil {
			if errors.Is(refErr, gorm.ErrRecordNotFound) {
				return domain.RegisterResponse{}, domain.ErrReferrerNotFound
			}
			return domain.RegisterResponse{}, refErr
		}
		referralPhone = &refUser.Phone
		referredBy = &refUser.UserID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	otp := generateOTP()
	otpExpiresAt := time.Now().Add(domain.OTPValidity)

	newUser := &entities.User{
		ID:            uuid.New(),
		UserID:        generateUserID(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Password:      string(hashed),
		ReferralPhone: referralPhone,
		ReferredBy:    referredBy,
		Coins:         0,
		IsVerified:    false,
		OTP:           otp,
		OTPExpiresAt:  &otpExpiresAt,
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return domain.RegisterResponse{}, err
	}

	// OTP delivery is fire-and-forget; a mail failure must not roll back the
	// registration, the user can request a new code.
	go func(email, otp string) {
		if err := s.mailer.SendOTPEmail(email, otp); err != nil {
			log.Errorf("failed to send OTP email to %s: %v", email, err)
		}
	}(newUser.Email, otp)

	return domain.RegisterResponse{UserID: newUser.UserID}, nil
}

func (s *userService) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.OTP == "" || user.OTP != req.OTP {
		return domain.ErrInvalidOTP
	}
	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return domain.ErrOTPExpired
	}

	user.OTP = ""
	user.OTPExpiresAt = nil
	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return domain.LoginResponse{}, domain.ErrUserNotVerified
	}

	role := domain.RoleUser
	if user.IsAdmin {
		role = domain.RoleAdmin
	}
	token := s.jwtService.GenerateTokenUser(user.UserID, role)

	return domain.LoginResponse{
		UserID:  user.UserID,
		Name:    user.Name,
		Coins:   user.Coins,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

func (s *userService) RequestPasswordReset(ctx context.Context, req domain.RequestPasswordResetRequest) (domain.RequestPasswordResetResponse, error) {
	user, err := s.userRepository.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RequestPasswordResetResponse{}, domain.ErrUserNotFound
		}
		return domain.RequestPasswordResetResponse{}, err
	}

	otp := generateOTP()
	otpExpiresAt := time.Now().Add(domain.OTPValidity)
	user.OTP = otp
	user.OTPExpiresAt = &otpExpiresAt
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.RequestPasswordResetResponse{}, err
	}

	go func(email, otp string) {
		if err := s.mailer.SendOTPEmail(email, otp); err != nil {
			log.Errorf("failed to send reset OTP email to %s: %v", email, err)
		}
	}(user.Email, otp)

	return domain.RequestPasswordResetResponse{Email: user.Email}, nil
}

func (s *userService) VerifyResetOTP(ctx context.Context, req domain.VerifyOTPRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.OTP == "" || user.OTP != req.OTP {
		return domain.ErrInvalidOTP
	}
	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return domain.ErrOTPExpired
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.OTP = ""
	user.OTPExpiresAt = nil
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	return toUserProfile(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}
	return toUserProfile(user), nil
}

func (s *userService) GetMyTeam(ctx context.Context, userID string) ([]domain.TeamMember, error) {
	user, err := s.userRepository.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	members, err := s.userRepository.GetTeamByReferralPhone(ctx, user.Phone)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TeamMember, 0, len(members))
	for _, m := range members {
		result = append(result, domain.TeamMember{
			UserID:    m.UserID,
			Name:      m.Name,
			Phone:     m.Phone,
			Coins:     m.Coins,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}

func (s *userService) GetCoins(ctx context.Context, userID string) (int64, error) {
	user, err := s.userRepository.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}
	return user.Coins, nil
}

func toUserProfile(user *entities.User) domain.UserProfile {
	return domain.UserProfile{
		UserID:        user.UserID,
		Name:          user.Name,
		Phone:         user.Phone,
		Email:         user.Email,
		ReferralPhone: user.ReferralPhone,
		ReferredBy:    user.ReferredBy,
		Coins:         user.Coins,
		IsVerified:    user.IsVerified,
		PackageName:   user.PackageName,
		PackageActive: user.PackageActive,
		CreatedAt:     user.CreatedAt,
	}
}
