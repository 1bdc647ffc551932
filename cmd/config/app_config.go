package config

import (
	"UnityGrow-Backend/internal/api/handlers"
	"UnityGrow-Backend/internal/api/routes"
	"UnityGrow-Backend/internal/middleware"
	"UnityGrow-Backend/internal/utils"
	"UnityGrow-Backend/internal/utils/mailing"
	"UnityGrow-Backend/internal/utils/storage"
	"UnityGrow-Backend/pkg/admin"
	"UnityGrow-Backend/pkg/catalog"
	"UnityGrow-Backend/pkg/jwt"
	"UnityGrow-Backend/pkg/purchase"
	"UnityGrow-Backend/pkg/referral"
	"UnityGrow-Backend/pkg/user"
	"UnityGrow-Backend/pkg/withdrawal"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	packageRepository := catalog.NewPackageRepository(db)
	purchaseRepository := purchase.NewPurchaseRepository(db)
	withdrawalRepository := withdrawal.NewWithdrawalRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	payoutEngine := referral.NewPayoutEngine()
	userService := user.NewUserService(userRepository, jwtService, mailer)
	packageService := catalog.NewPackageService(packageRepository)
	purchaseService := purchase.NewPurchaseService(purchaseRepository, packageRepository, payoutEngine, s3)
	withdrawalService := withdrawal.NewWithdrawalService(withdrawalRepository)
	adminService := admin.NewAdminService(userRepository, purchaseRepository, packageRepository, withdrawalRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	packageHandler := handlers.NewPackageHandler(packageService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, validator)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, purchaseService, withdrawalService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		PackageHandler:    packageHandler,
		PurchaseHandler:   purchaseHandler,
		WithdrawalHandler: withdrawalHandler,
		AdminHandler:      adminHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
