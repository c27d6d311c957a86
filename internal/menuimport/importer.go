package menuimport

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/UIT23520530/AnEat-sub002/internal/catalog"
	"github.com/UIT23520530/AnEat-sub002/internal/models"

	"golang.org/x/text/transform"
)

// Importer reconciles parsed menu items against the catalog store.
// Re-running it on an unchanged document converges: products are keyed
// by a deterministic code and options are fully replaced every run.
type Importer struct {
	store    catalog.Store
	assetDir string
}

func NewImporter(store catalog.Store, assetDir string) *Importer {
	return &Importer{store: store, assetDir: assetDir}
}

type Summary struct {
	Created int
	Updated int
	Skipped int
	Errors  int
}

// Run reads the menu document and imports every surviving item. A
// missing document or a missing branch aborts the whole run; anything
// that goes wrong on a single item is logged, counted and skipped.
func (im *Importer) Run(docPath string) (*Summary, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("could not read menu document %s: %w", docPath, err)
	}

	branch, err := im.store.FirstBranch()
	if err != nil {
		return nil, fmt.Errorf("branch lookup failed: %w", err)
	}
	if branch == nil {
		return nil, fmt.Errorf("no branch exists yet, create one before importing the menu")
	}

	items, skipped := ParseMenu(string(data))
	summary := &Summary{Skipped: skipped}

	for _, item := range items {
		action, err := im.reconcileItem(branch, item)
		if err != nil {
			log.Printf("[ERROR] %s: %v", item.Name, err)
			summary.Errors++
			continue
		}
		log.Printf("%s: %s (%s)", action, item.Name, item.Category)
		if action == "created" {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	log.Printf("Menu import finished: %d created, %d updated, %d skipped, %d errors",
		summary.Created, summary.Updated, summary.Skipped, summary.Errors)
	return summary, nil
}

func (im *Importer) reconcileItem(branch *models.Branch, item MenuItem) (string, error) {
	category, err := im.resolveCategory(item.Category)
	if err != nil {
		return "", err
	}

	code := ProductCode(category.Code, item.Name)
	image := FindProductImage(item.Name, item.Category, im.assetDir)

	existing, err := im.store.FindProductByCode(code)
	if err != nil {
		return "", fmt.Errorf("product lookup: %w", err)
	}

	if existing != nil {
		if err := im.store.DeleteOptionsForProduct(existing.ID); err != nil {
			return "", fmt.Errorf("delete options: %w", err)
		}
		existing.Name = item.Name
		existing.Description = item.Description
		existing.Price = toMinorUnits(item.Price)
		existing.CategoryID = category.ID
		// when nothing resolved, keep whatever image the product had
		if image != "" {
			existing.Image = image
		}
		if err := im.store.UpdateProduct(existing); err != nil {
			return "", fmt.Errorf("update product: %w", err)
		}
		if err := im.createOptions(existing.ID, item.Options); err != nil {
			return "", err
		}
		return "updated", nil
	}

	product := &models.Product{
		Code:        code,
		Name:        item.Name,
		Description: item.Description,
		Price:       toMinorUnits(item.Price),
		CostPrice:   0,
		Quantity:    100,
		PrepTime:    10,
		Image:       image,
		IsAvailable: true,
		CategoryID:  category.ID,
		BranchID:    branch.ID,
	}
	if err := im.store.CreateProduct(product); err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	if err := im.createOptions(product.ID, item.Options); err != nil {
		return "", err
	}
	return "created", nil
}

func (im *Importer) resolveCategory(label string) (*models.Category, error) {
	category, err := im.store.FindCategoryByName(label)
	if err != nil {
		return nil, fmt.Errorf("category lookup: %w", err)
	}
	if category != nil {
		return category, nil
	}

	category = &models.Category{
		Code:        CategoryCode(label),
		Name:        label,
		Description: "Danh mục " + label,
		IsActive:    true,
	}
	if err := im.store.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// createOptions recreates the full option list. Order is assigned in
// group/item traversal order and keeps counting across groups.
func (im *Importer) createOptions(productID uint, groups []OptionGroup) error {
	order := 0
	for _, group := range groups {
		for _, name := range group.Items {
			option := &models.ProductOption{
				ProductID:   productID,
				Name:        name,
				Description: group.Group + ": " + name,
				Price:       toMinorUnits(OptionPrice(name)),
				Type:        ClassifyOption(name),
				IsRequired:  false,
				IsAvailable: true,
				Order:       order,
			}
			if err := im.store.CreateOption(option); err != nil {
				return fmt.Errorf("create option %q: %w", name, err)
			}
			order++
		}
	}
	return nil
}

func toMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

// CategoryCode derives a stable code from a category label: diacritics
// stripped, uppercased, anything non-alphanumeric collapsed to '_',
// at most 20 characters.
func CategoryCode(label string) string {
	out, _, err := transform.String(stripMarks, label)
	if err != nil {
		out = label
	}
	out = strings.ToUpper(strings.ReplaceAll(strings.ToLower(out), "đ", "d"))

	var b strings.Builder
	for _, r := range out {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	code := b.String()
	if len(code) > 20 {
		code = code[:20]
	}
	return code
}

// ProductCode is "<categoryCode>-<slug>", slug capped at 30 characters
// and the whole code at 50.
func ProductCode(categoryCode, name string) string {
	slug := normalizeName(name)
	if len(slug) > 30 {
		slug = slug[:30]
	}
	code := categoryCode + "-" + slug
	if len(code) > 50 {
		code = code[:50]
	}
	return code
}
