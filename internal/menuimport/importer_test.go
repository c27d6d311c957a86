package menuimport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UIT23520530/AnEat-sub002/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory catalog used to exercise the importer
// without a database.
type fakeStore struct {
	branches   []models.Branch
	categories []models.Category
	products   []models.Product
	options    []models.ProductOption
	nextID     uint

	failProductNames map[string]bool // CreateProduct fails for these names
}

func newFakeStore(withBranch bool) *fakeStore {
	s := &fakeStore{failProductNames: map[string]bool{}}
	if withBranch {
		s.branches = append(s.branches, models.Branch{ID: 1, Name: "AnEat Thủ Đức"})
	}
	return s
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) FirstBranch() (*models.Branch, error) {
	if len(s.branches) == 0 {
		return nil, nil
	}
	b := s.branches[0]
	return &b, nil
}

func (s *fakeStore) FindCategoryByName(name string) (*models.Category, error) {
	lower := strings.ToLower(name)
	for _, c := range s.categories {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CreateCategory(category *models.Category) error {
	category.ID = s.id()
	s.categories = append(s.categories, *category)
	return nil
}

func (s *fakeStore) FindProductByCode(code string) (*models.Product, error) {
	for _, p := range s.products {
		if p.Code == code {
			found := p
			for _, o := range s.options {
				if o.ProductID == p.ID {
					found.Options = append(found.Options, o)
				}
			}
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CreateProduct(product *models.Product) error {
	if s.failProductNames[product.Name] {
		return fmt.Errorf("forced store failure")
	}
	product.ID = s.id()
	s.products = append(s.products, *product)
	return nil
}

func (s *fakeStore) UpdateProduct(product *models.Product) error {
	for i, p := range s.products {
		if p.ID == product.ID {
			updated := *product
			updated.Options = nil
			s.products[i] = updated
			return nil
		}
	}
	return fmt.Errorf("product %d not found", product.ID)
}

func (s *fakeStore) DeleteOptionsForProduct(productID uint) error {
	kept := s.options[:0]
	for _, o := range s.options {
		if o.ProductID != productID {
			kept = append(kept, o)
		}
	}
	s.options = kept
	return nil
}

func (s *fakeStore) CreateOption(option *models.ProductOption) error {
	option.ID = s.id()
	s.options = append(s.options, *option)
	return nil
}

func (s *fakeStore) optionsFor(productID uint) []models.ProductOption {
	var out []models.ProductOption
	for _, o := range s.options {
		if o.ProductID == productID {
			out = append(out, o)
		}
	}
	return out
}

const importDoc = `## 1. Món chính

| Tên món | Mô tả | Lựa chọn (nếu có) | Giá (VNĐ) |
|---------|-------|-------------------|-----------|
| **Combo Gà Rán** | 2 miếng gà và nước | **Nước uống:**<br>+ 7Up / Pepsi (Thường/Up)<br>**Khoai tây:**<br>+ Vừa / Lớn | 89.000 |
| Món đang cập nhật | Sắp ra mắt | - | Liên hệ |

## 2. Thức uống

| Tên món | Mô tả | Lựa chọn (nếu có) | Giá (VNĐ) |
|---------|-------|-------------------|-----------|
| Trà Đào | Trà đào cam sả | - | 19.000 |
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImporterRun(t *testing.T) {
	store := newFakeStore(true)
	assets := t.TempDir()
	touch(t, assets, "combo-ga-ran.webp")

	importer := NewImporter(store, assets)
	summary, err := importer.Run(writeDoc(t, importDoc))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Errors)

	require.Len(t, store.categories, 2)
	assert.Equal(t, "MON_CHINH", store.categories[0].Code)
	assert.Equal(t, "Món chính", store.categories[0].Name)

	require.Len(t, store.products, 2)
	combo := store.products[0]
	assert.Equal(t, "MON_CHINH-combo-ga-ran", combo.Code)
	assert.Equal(t, int64(8900000), combo.Price, "major units times 100")
	assert.Equal(t, int64(0), combo.CostPrice)
	assert.Equal(t, 100, combo.Quantity)
	assert.Equal(t, 10, combo.PrepTime)
	assert.True(t, combo.IsAvailable)
	assert.Equal(t, uint(1), combo.BranchID)
	assert.Equal(t, filepath.Join(assets, "combo-ga-ran.webp"), combo.Image)

	options := store.optionsFor(combo.ID)
	require.Len(t, options, 6)
	// order counts across groups, never resets
	for i, o := range options {
		assert.Equal(t, i, o.Order)
		assert.False(t, o.IsRequired)
		assert.True(t, o.IsAvailable)
	}
	assert.Equal(t, "7Up (Thường)", options[0].Name)
	assert.Equal(t, "Nước uống: 7Up (Thường)", options[0].Description)
	assert.Equal(t, int64(0), options[0].Price)
	assert.Equal(t, "7Up (Up)", options[1].Name)
	assert.Equal(t, int64(BeverageUpsizePrice*100), options[1].Price)
	assert.Equal(t, models.OptionTypeSize, options[1].Type)
	assert.Equal(t, "Khoai tây: Vừa", options[4].Description)
	assert.Equal(t, int64(1000000), options[4].Price)
}

func TestImporterIdempotent(t *testing.T) {
	store := newFakeStore(true)
	importer := NewImporter(store, t.TempDir())
	doc := writeDoc(t, importDoc)

	first, err := importer.Run(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	productCount := len(store.products)
	optionCount := len(store.options)

	second, err := importer.Run(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Updated)

	assert.Len(t, store.products, productCount, "no duplicate products")
	assert.Len(t, store.options, optionCount, "options replaced, not appended")
	assert.Len(t, store.categories, 2, "categories are reused")
}

func TestImporterKeepsImageWhenNoneResolves(t *testing.T) {
	store := newFakeStore(true)
	assets := t.TempDir()
	touch(t, assets, "combo-ga-ran.webp")
	doc := writeDoc(t, importDoc)

	_, err := NewImporter(store, assets).Run(doc)
	require.NoError(t, err)
	require.NotEmpty(t, store.products[0].Image)
	imageBefore := store.products[0].Image

	// second run against an asset dir with no matching files
	_, err = NewImporter(store, t.TempDir()).Run(doc)
	require.NoError(t, err)
	assert.Equal(t, imageBefore, store.products[0].Image)
}

func TestImporterPerItemErrorContinues(t *testing.T) {
	store := newFakeStore(true)
	store.failProductNames["Combo Gà Rán"] = true

	summary, err := NewImporter(store, t.TempDir()).Run(writeDoc(t, importDoc))
	require.NoError(t, err, "one bad item must not abort the batch")

	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.Created)
	require.Len(t, store.products, 1)
	assert.Equal(t, "Trà Đào", store.products[0].Name)
}

func TestImporterFatalConditions(t *testing.T) {
	store := newFakeStore(true)
	importer := NewImporter(store, t.TempDir())

	_, err := importer.Run(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err, "missing document aborts the run")

	noBranch := newFakeStore(false)
	_, err = NewImporter(noBranch, t.TempDir()).Run(writeDoc(t, importDoc))
	require.Error(t, err, "missing branch aborts the run")
	assert.Empty(t, noBranch.products)
}

func TestCategoryCode(t *testing.T) {
	assert.Equal(t, "MON_CHINH", CategoryCode("Món chính"))
	assert.Equal(t, "THUC_UONG", CategoryCode("Thức uống"))
	assert.Equal(t, "BURGER___COM", CategoryCode("Burger & Cơm"))

	long := CategoryCode("Danh mục có tên dài quá mức cho phép")
	assert.Len(t, long, 20)
}

func TestProductCode(t *testing.T) {
	assert.Equal(t, "MON_CHINH-combo-ga-ran", ProductCode("MON_CHINH", "Combo Gà Rán"))

	code := ProductCode("MON_CHINH", "Món có cái tên thật sự rất là dài dòng văn tự luôn nhé")
	assert.LessOrEqual(t, len(code), 50)
	assert.True(t, strings.HasPrefix(code, "MON_CHINH-"))
}
