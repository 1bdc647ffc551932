package user

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"UnityGrow-Backend/internal/utils/mailing"
	"context"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User // keyed by UserID
}

func newFakeUserRepository(users ...*entities.User) *fakeUserRepository {
	r := &fakeUserRepository{users: make(map[string]*entities.User)}
	for _, u := range users {
		r.users[u.UserID] = u
	}
	return r
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepository) GetUserByUserID(ctx context.Context, userID string) (*entities.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByPhone(ctx context.Context, phone string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) CheckEmailOrPhoneExists(ctx context.Context, email, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, u := range r.users {
		result = append(result, u)
	}
	return result, nil
}

func (r *fakeUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepository) SumCoins(ctx context.Context) (int64, error) {
	var total int64
	for _, u := range r.users {
		total += u.Coins
	}
	return total, nil
}

func (r *fakeUserRepository) GetTeamByReferralPhone(ctx context.Context, phone string) ([]*entities.User, error) {
	var result []*entities.User
	for _, u := range r.users {
		if u.ReferralPhone != nil && *u.ReferralPhone == phone {
			result = append(result, u)
		}
	}
	return result, nil
}

type fakeMailer struct {
	sent chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 4)}
}

func (m *fakeMailer) SendOTPEmail(toEmail string, otp string) error {
	m.sent <- toEmail
	return nil
}

// fakeJWTService hands out inspectable tokens; only GenerateTokenUser is
// exercised by the service.
type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return userId + ":" + role
}

func (fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return "", "", domain.ErrTokenInvalid
	}
	return parts[0], parts[1], nil
}

func newTestUserService(repo UserRepository, mailer mailing.Mailer) UserService {
	return NewUserService(repo, fakeJWTService{}, mailer)
}

func TestRegisterWithReferralByUserID(t *testing.T) {
	referrer := &entities.User{UserID: "REFAAA", Phone: "9999999999", Email: "ref@example.com"}
	repo := newFakeUserRepository(referrer)
	mailer := newFakeMailer()
	svc := newTestUserService(repo, mailer)

	resp, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:          "New User",
		Email:         "new@example.com",
		Phone:         "8888888888",
		Password:      "secret123",
		ReferralInput: "refaaa", // lowercase input resolves case-insensitively
	})
	require.NoError(t, err)
	require.Len(t, resp.UserID, 6)

	created := repo.users[resp.UserID]
	require.NotNil(t, created)
	require.Equal(t, "REFAAA", *created.ReferredBy)
	require.Equal(t, "9999999999", *created.ReferralPhone)
	require.False(t, created.IsVerified)
	require.Len(t, created.OTP, 6)
	require.NotEqual(t, "secret123", created.Password, "password must be hashed")

	select {
	case to := <-mailer.sent:
		require.Equal(t, "new@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("OTP email never sent")
	}
}

func TestRegisterWithReferralByPhone(t *testing.T) {
	referrer := &entities.User{UserID: "REFAAA", Phone: "9999999999", Email: "ref@example.com"}
	repo := newFakeUserRepository(referrer)
	svc := newTestUserService(repo, newFakeMailer())

	resp, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:          "New User",
		Email:         "new@example.com",
		Phone:         "8888888888",
		Password:      "secret123",
		ReferralInput: "9999999999",
	})
	require.NoError(t, err)
	require.Equal(t, "REFAAA", *repo.users[resp.UserID].ReferredBy)
}

func TestRegisterReferrerNotFound(t *testing.T) {
	svc := newTestUserService(newFakeUserRepository(), newFakeMailer())

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:          "New User",
		Email:         "new@example.com",
		Phone:         "8888888888",
		Password:      "secret123",
		ReferralInput: "NOBODY",
	})
	require.ErrorIs(t, err, domain.ErrReferrerNotFound)
}

func TestRegisterDuplicateEmailOrPhone(t *testing.T) {
	existing := &entities.User{UserID: "EXIST0", Phone: "8888888888", Email: "taken@example.com"}
	svc := newTestUserService(newFakeUserRepository(existing), newFakeMailer())

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "New User",
		Email:    "taken@example.com",
		Phone:    "7777777777",
		Password: "secret123",
	})
	require.ErrorIs(t, err, domain.ErrEmailOrPhoneTaken)
}

func TestVerifyOTP(t *testing.T) {
	expires := time.Now().Add(5 * time.Minute)
	u := &entities.User{UserID: "U0AAAA", Email: "u@example.com", OTP: "123456", OTPExpiresAt: &expires}
	repo := newFakeUserRepository(u)
	svc := newTestUserService(repo, newFakeMailer())

	err := svc.VerifyOTP(context.Background(), domain.VerifyOTPRequest{Email: "u@example.com", OTP: "000000"})
	require.ErrorIs(t, err, domain.ErrInvalidOTP)

	err = svc.VerifyOTP(context.Background(), domain.VerifyOTPRequest{Email: "u@example.com", OTP: "123456"})
	require.NoError(t, err)
	require.True(t, u.IsVerified)
	require.Empty(t, u.OTP)
}

func TestVerifyOTPExpired(t *testing.T) {
	expired := time.Now().Add(-time.Minute)
	u := &entities.User{UserID: "U0AAAA", Email: "u@example.com", OTP: "123456", OTPExpiresAt: &expired}
	svc := newTestUserService(newFakeUserRepository(u), newFakeMailer())

	err := svc.VerifyOTP(context.Background(), domain.VerifyOTPRequest{Email: "u@example.com", OTP: "123456"})
	require.ErrorIs(t, err, domain.ErrOTPExpired)
	require.False(t, u.IsVerified)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	mailer := newFakeMailer()
	svc := newTestUserService(repo, mailer)

	resp, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "User",
		Email:    "u@example.com",
		Phone:    "8888888888",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Unverified users cannot log in.
	_, err = svc.Login(context.Background(), domain.LoginRequest{Phone: "8888888888", Password: "secret123"})
	require.ErrorIs(t, err, domain.ErrUserNotVerified)

	u := repo.users[resp.UserID]
	err = svc.VerifyOTP(context.Background(), domain.VerifyOTPRequest{Email: "u@example.com", OTP: u.OTP})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Phone: "8888888888", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Phone: "0000000000", Password: "secret123"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	login, err := svc.Login(context.Background(), domain.LoginRequest{Phone: "8888888888", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, resp.UserID, login.UserID)
	require.NotEmpty(t, login.Token)
}

func TestGetMyTeam(t *testing.T) {
	phone := "9999999999"
	owner := &entities.User{UserID: "OWNER0", Phone: phone}
	memberA := &entities.User{UserID: "MEMBA0", Name: "A", Phone: "1111111111", ReferralPhone: &phone}
	memberB := &entities.User{UserID: "MEMBB0", Name: "B", Phone: "2222222222", ReferralPhone: &phone}
	svc := newTestUserService(newFakeUserRepository(owner, memberA, memberB), newFakeMailer())

	team, err := svc.GetMyTeam(context.Background(), "OWNER0")
	require.NoError(t, err)
	require.Len(t, team, 2)
}
