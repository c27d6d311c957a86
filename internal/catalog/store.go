package catalog

import (
	"errors"

	"github.com/UIT23520530/AnEat-sub002/internal/models"

	"gorm.io/gorm"
)

// Store is the narrow catalog surface the menu import job runs against.
// Lookups return (nil, nil) when nothing matches so callers can
// distinguish "absent" from a real store failure.
type Store interface {
	FirstBranch() (*models.Branch, error)
	FindCategoryByName(name string) (*models.Category, error)
	CreateCategory(category *models.Category) error
	FindProductByCode(code string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteOptionsForProduct(productID uint) error
	CreateOption(option *models.ProductOption) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FirstBranch() (*models.Branch, error) {
	var branch models.Branch
	if err := s.db.Order("id asc").First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

// FindCategoryByName: case-insensitive "name contains" lookup
func (s *gormStore) FindCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name ILIKE ?", "%"+name+"%").First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *gormStore) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *gormStore) FindProductByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Options").Where("code = ?", code).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (s *gormStore) CreateProduct(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *gormStore) UpdateProduct(product *models.Product) error {
	return s.db.Omit("Options", "Category", "Branch").Save(product).Error
}

func (s *gormStore) DeleteOptionsForProduct(productID uint) error {
	return s.db.Where("product_id = ?", productID).Delete(&models.ProductOption{}).Error
}

func (s *gormStore) CreateOption(option *models.ProductOption) error {
	return s.db.Create(option).Error
}
