package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully, OTP sent to email"
	MessageSuccessVerifyOTP     = "OTP verified successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessRequestReset  = "OTP sent for password reset"
	MessageSuccessResetPassword = "password updated successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessGetTeam       = "team retrieved successfully"
	MessageSuccessGetCoins      = "coins retrieved successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedVerifyOTP     = "failed to verify OTP"
	MessageFailedLogin         = "failed to login"
	MessageFailedRequestReset  = "failed to request password reset"
	MessageFailedResetPassword = "failed to reset password"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedGetTeam       = "failed to retrieve team"
	MessageFailedGetCoins      = "failed to retrieve coins"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailOrPhoneTaken  = errors.New("email or phone already registered")
	ErrReferrerNotFound   = errors.New("referrer not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotVerified    = errors.New("please verify your email before logging in")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrOTPExpired         = errors.New("OTP expired, please request a new one")
)

const OTPValidity = 10 * time.Minute

type (
	RegisterRequest struct {
		Name          string `json:"name" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		Phone         string `json:"phone" validate:"required"`
		Password      string `json:"password" validate:"required,min=6"`
		ReferralInput string `json:"referral_input" validate:"omitempty"`
	}

	RegisterResponse struct {
		UserID string `json:"user_id"`
	}

	VerifyOTPRequest struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required,len=6"`
	}

	LoginRequest struct {
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		UserID  string `json:"user_id"`
		Name    string `json:"name"`
		Coins   int64  `json:"coins"`
		IsAdmin bool   `json:"is_admin"`
		Token   string `json:"token"`
	}

	RequestPasswordResetRequest struct {
		Phone string `json:"phone" validate:"required"`
	}

	RequestPasswordResetResponse struct {
		Email string `json:"email"`
	}

	ResetPasswordRequest struct {
		Email       string `json:"email" validate:"required,email"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	UserProfile struct {
		UserID        string    `json:"user_id"`
		Name          string    `json:"name"`
		Phone         string    `json:"phone"`
		Email         string    `json:"email"`
		ReferralPhone *string   `json:"referral_phone,omitempty"`
		ReferredBy    *string   `json:"referred_by,omitempty"`
		Coins         int64     `json:"coins"`
		IsVerified    bool      `json:"is_verified"`
		PackageName   *string   `json:"package_name,omitempty"`
		PackageActive bool      `json:"package_active"`
		CreatedAt     time.Time `json:"created_at"`
	}

	UpdateProfileRequest struct {
		Name  string `json:"name" validate:"omitempty"`
		Email string `json:"email" validate:"omitempty,email"`
	}

	TeamMember struct {
		UserID    string    `json:"user_id"`
		Name      string    `json:"name"`
		Phone     string    `json:"phone"`
		Coins     int64     `json:"coins"`
		CreatedAt time.Time `json:"created_at"`
	}
)
