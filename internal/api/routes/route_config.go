package routes

import (
	"UnityGrow-Backend/internal/api/handlers"
	"UnityGrow-Backend/internal/middleware"
	"UnityGrow-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	PackageHandler    handlers.PackageHandler
	PurchaseHandler   handlers.PurchaseHandler
	WithdrawalHandler handlers.WithdrawalHandler
	AdminHandler      handlers.AdminHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Profile()
	c.Packages()
	c.Purchases()
	c.Withdrawals()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/verify-otp", c.UserHandler.VerifyOTP)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/request-reset", c.UserHandler.RequestPasswordReset)
		auth.Post("/verify-reset-otp", c.UserHandler.VerifyResetOTP)
		auth.Post("/reset-password", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/profile", c.Middleware.AuthMiddleware(c.JWTService))
	{
		profile.Get("", c.UserHandler.GetProfile)
		profile.Patch("", c.UserHandler.UpdateProfile)
	}

	c.App.Get("/api/team", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetMyTeam)
	c.App.Get("/api/user/coins", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetCoins)
}

func (c *Config) Packages() {
	c.App.Get("/api/buy-package/packages", c.PackageHandler.GetPackages)
}

func (c *Config) Purchases() {
	purchases := c.App.Group("/api/purchases", c.Middleware.AuthMiddleware(c.JWTService))
	{
		purchases.Post("", c.PurchaseHandler.CreatePurchase)
		purchases.Get("", c.PurchaseHandler.GetUserPurchases)
	}
}

func (c *Config) Withdrawals() {
	withdrawals := c.App.Group("/api/transactions", c.Middleware.AuthMiddleware(c.JWTService))
	{
		withdrawals.Post("/withdraw", c.WithdrawalHandler.RequestWithdrawal)
		withdrawals.Get("", c.WithdrawalHandler.GetUserTransactions)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyAdmin,
	)
	{
		admin.Get("/purchases/pending", c.AdminHandler.GetPendingPurchases)
		admin.Post("/purchases/:id/approve", c.AdminHandler.ApprovePurchase)
		admin.Post("/purchases/:id/reject", c.AdminHandler.RejectPurchase)
		admin.Get("/users", c.AdminHandler.GetAllUsers)
		admin.Get("/users/:userId", c.AdminHandler.GetUserByID)
		admin.Patch("/users/:userId", c.AdminHandler.UpdateUser)
		admin.Get("/withdrawals/pending", c.AdminHandler.GetPendingWithdrawals)
		admin.Post("/withdrawals/:id/approve", c.AdminHandler.ApproveWithdrawal)
		admin.Get("/stats", c.AdminHandler.GetStats)
		admin.Post("/packages/seed", c.PackageHandler.SeedPackages)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
