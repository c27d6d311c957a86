package menuimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644))
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Gà Rán Giòn", "ga-ran-gion"},
		{"Combo Gà Rán (2 miếng)", "combo-ga-ran-2-mieng"},
		{"Đùi gà sốt cay", "dui-ga-sot-cay"},
		{"  Khoai   Tây  ", "khoai-tay"},
		{"7Up", "7up"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizeName(c.in), "input %q", c.in)
	}
}

func TestScoreMatch(t *testing.T) {
	assert.Equal(t, 100, scoreMatch("ga-ran-gion", "ga-ran-gion"))
	assert.Equal(t, 80, scoreMatch("ga-ran", "combo-ga-ran-gion"))
	assert.Equal(t, 70, scoreMatch("combo-ga-ran-gion", "ga-ran"))

	// word overlap, scaled to 60: stopwords and short words don't count
	assert.Equal(t, 30, scoreMatch("khoai-tay-chien-gion", "khoai-tay-lac"))
	assert.Equal(t, 0, scoreMatch("tra-dao", "pepsi-tuoi"))
}

func TestFuzzyImageMatchExact(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ga-ran-gion.webp")
	touch(t, dir, "ga-ran.webp")

	got := fuzzyImageMatch("Gà Rán Giòn", dir)
	assert.Equal(t, filepath.Join(dir, "ga-ran-gion.webp"), got)
}

func TestFuzzyImageMatchFirstTieWins(t *testing.T) {
	dir := t.TempDir()
	// both normalize to "ga-ran" and score 100; ReadDir returns files
	// sorted by name, so the .png is scanned first and must stay picked
	touch(t, dir, "ga-ran.png")
	touch(t, dir, "ga-ran.webp")

	got := fuzzyImageMatch("Gà Rán", dir)
	assert.Equal(t, filepath.Join(dir, "ga-ran.png"), got)
}

func TestFuzzyImageMatchThreshold(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "pepsi-tuoi.webp")

	assert.Empty(t, fuzzyImageMatch("Trà Đào Cam Sả", dir))
}

func TestFuzzyImageMatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ga-ran.txt")
	touch(t, dir, "ga-ran.webp.bak")

	assert.Empty(t, fuzzyImageMatch("Gà Rán", dir))
}

func TestKeywordImageLookupLongestKeyFirst(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ga-ran.webp")
	touch(t, dir, "ga-sot-cay.webp")

	// "gà sốt cay" is longer than "gà rán", so it must be tried first
	got := keywordImageLookup("combo gà sốt cay đặc biệt", productImageKeywords, dir)
	assert.Equal(t, filepath.Join(dir, "ga-sot-cay.webp"), got)
}

func TestKeywordImageLookupRequiresFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, keywordImageLookup("gà rán", productImageKeywords, dir))
}

func TestFindProductImageCategoryFallback(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "com-ga.jpg")

	got := FindProductImage("Món Đặc Biệt Của Bếp", "Cơm", dir)
	assert.Equal(t, filepath.Join(dir, "com-ga.jpg"), got)
}

func TestFindProductImageNoMatch(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindProductImage("Trà Đào", "Thức uống", dir))
}
