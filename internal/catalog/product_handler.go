package catalog

import (
	"strings"

	"github.com/UIT23520530/AnEat-sub002/internal/database"
	"github.com/UIT23520530/AnEat-sub002/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductOptionResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Type        string `json:"type"`
	IsRequired  bool   `json:"is_required"`
	IsAvailable bool   `json:"is_available"`
	Order       int    `json:"order"`
}

type ProductResponse struct {
	ID          uint                    `json:"id"`
	Code        string                  `json:"code"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Price       int64                   `json:"price"`
	CostPrice   int64                   `json:"cost_price"`
	Quantity    int                     `json:"quantity"`
	PrepTime    int                     `json:"prep_time"`
	Image       string                  `json:"image"`
	IsAvailable bool                    `json:"is_available"`
	CategoryID  uint                    `json:"category_id"`
	BranchID    uint                    `json:"branch_id"`
	Options     []ProductOptionResponse `json:"options"`
}

type ProductOptionInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Type        string `json:"type"`
	IsRequired  bool   `json:"is_required"`
	IsAvailable bool   `json:"is_available"`
	Order       int    `json:"order"`
}

type CreateProductRequest struct {
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       int64                `json:"price"`
	CostPrice   int64                `json:"cost_price"`
	Quantity    int                  `json:"quantity"`
	PrepTime    int                  `json:"prep_time"`
	Image       string               `json:"image"`
	CategoryID  uint                 `json:"category_id"`
	BranchID    uint                 `json:"branch_id"`
	Options     []ProductOptionInput `json:"options"`
}

type UpdateProductRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Price       *int64               `json:"price"`
	CostPrice   *int64               `json:"cost_price"`
	Quantity    *int                 `json:"quantity"`
	PrepTime    *int                 `json:"prep_time"`
	Image       *string              `json:"image"`
	IsAvailable *bool                `json:"is_available"`
	CategoryID  *uint                `json:"category_id"`
	Options     []ProductOptionInput `json:"options"` // nil keeps the current options, non-nil replaces all of them
}

func toProductResponse(p models.Product) ProductResponse {
	options := make([]ProductOptionResponse, 0, len(p.Options))
	for _, o := range p.Options {
		options = append(options, ProductOptionResponse{
			ID:          o.ID,
			Name:        o.Name,
			Description: o.Description,
			Price:       o.Price,
			Type:        string(o.Type),
			IsRequired:  o.IsRequired,
			IsAvailable: o.IsAvailable,
			Order:       o.Order,
		})
	}
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Quantity:    p.Quantity,
		PrepTime:    p.PrepTime,
		Image:       p.Image,
		IsAvailable: p.IsAvailable,
		CategoryID:  p.CategoryID,
		BranchID:    p.BranchID,
		Options:     options,
	}
}

func optionType(s string) models.OptionType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(models.OptionTypeSize):
		return models.OptionTypeSize
	case string(models.OptionTypeSauce):
		return models.OptionTypeSauce
	default:
		return models.OptionTypeOther
	}
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).Order("name asc")

		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.Preload("Options").First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return c.JSON(toProductResponse(product))
	}
}

// POST /api/admin/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Code = strings.TrimSpace(strings.ToLower(body.Code))
		body.Name = strings.TrimSpace(body.Name)

		if body.Code == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Code and name are required")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
		}
		if body.CategoryID == 0 || body.BranchID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Category and branch are required")
		}

		var existing models.Product
		if err := database.DB.Where("code = ?", body.Code).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "This product code is already used")
		}

		product := models.Product{
			Code:        body.Code,
			Name:        body.Name,
			Description: strings.TrimSpace(body.Description),
			Price:       body.Price,
			CostPrice:   body.CostPrice,
			Quantity:    body.Quantity,
			PrepTime:    body.PrepTime,
			Image:       strings.TrimSpace(body.Image),
			IsAvailable: true,
			CategoryID:  body.CategoryID,
			BranchID:    body.BranchID,
		}
		for i, opt := range body.Options {
			product.Options = append(product.Options, models.ProductOption{
				Name:        strings.TrimSpace(opt.Name),
				Description: strings.TrimSpace(opt.Description),
				Price:       opt.Price,
				Type:        optionType(opt.Type),
				IsRequired:  opt.IsRequired,
				IsAvailable: opt.IsAvailable,
				Order:       i,
			})
		}

		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create product")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.Preload("Options").First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			product.Name = name
		}
		if body.Description != nil {
			product.Description = strings.TrimSpace(*body.Description)
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
			}
			product.Price = *body.Price
		}
		if body.CostPrice != nil {
			product.CostPrice = *body.CostPrice
		}
		if body.Quantity != nil {
			product.Quantity = *body.Quantity
		}
		if body.PrepTime != nil {
			product.PrepTime = *body.PrepTime
		}
		if body.Image != nil {
			product.Image = strings.TrimSpace(*body.Image)
		}
		if body.IsAvailable != nil {
			product.IsAvailable = *body.IsAvailable
		}
		if body.CategoryID != nil {
			product.CategoryID = *body.CategoryID
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Options", "Category", "Branch").Save(&product).Error; err != nil {
				return err
			}
			if body.Options == nil {
				return nil
			}
			// full replace, same rule the menu import follows
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductOption{}).Error; err != nil {
				return err
			}
			product.Options = product.Options[:0]
			for i, opt := range body.Options {
				option := models.ProductOption{
					ProductID:   product.ID,
					Name:        strings.TrimSpace(opt.Name),
					Description: strings.TrimSpace(opt.Description),
					Price:       opt.Price,
					Type:        optionType(opt.Type),
					IsRequired:  opt.IsRequired,
					IsAvailable: opt.IsAvailable,
					Order:       i,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
				product.Options = append(product.Options, option)
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update product")
		}

		return c.JSON(toProductResponse(product))
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductOption{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete product")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
