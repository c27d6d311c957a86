package catalog

import (
	"strings"

	"github.com/UIT23520530/AnEat-sub002/internal/database"
	"github.com/UIT23520530/AnEat-sub002/internal/models"

	"github.com/gofiber/fiber/v2"
)

type BranchResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

type CreateBranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// GET /api/branches
func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var branches []models.Branch
		if err := database.DB.Order("id asc").Find(&branches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list branches")
		}

		res := make([]BranchResponse, 0, len(branches))
		for _, b := range branches {
			res = append(res, BranchResponse{
				ID:       b.ID,
				Name:     b.Name,
				Address:  b.Address,
				Phone:    b.Phone,
				IsActive: b.IsActive,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/branches
func CreateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		branch := models.Branch{
			Name:     body.Name,
			Address:  strings.TrimSpace(body.Address),
			Phone:    strings.TrimSpace(body.Phone),
			IsActive: true,
		}

		if err := database.DB.Create(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create branch")
		}

		return c.Status(fiber.StatusCreated).JSON(BranchResponse{
			ID:       branch.ID,
			Name:     branch.Name,
			Address:  branch.Address,
			Phone:    branch.Phone,
			IsActive: branch.IsActive,
		})
	}
}
