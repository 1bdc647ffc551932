package handlers

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/internal/api/presenters"
	"UnityGrow-Backend/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	PackageHandler interface {
		GetPackages(c *fiber.Ctx) error
		SeedPackages(c *fiber.Ctx) error
	}

	packageHandler struct {
		packageService catalog.PackageService
	}
)

func NewPackageHandler(packageService catalog.PackageService) PackageHandler {
	return &packageHandler{packageService: packageService}
}

func (h *packageHandler) GetPackages(c *fiber.Ctx) error {
	packages, err := h.packageService.GetPackages(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetPackages, err)
	}

	return presenters.SuccessResponse(c, packages, fiber.StatusOK, domain.MessageSuccessGetPackages)
}

func (h *packageHandler) SeedPackages(c *fiber.Ctx) error {
	resp, err := h.packageService.SeedPackages(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedSeedPackages, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessSeedPackages)
}
