package menuimport

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// imageExtensions in preference order.
var imageExtensions = []string{".webp", ".png", ".jpg", ".jpeg"}

// ImageMatch is one scored candidate file, score 0-100.
type ImageMatch struct {
	File  string
	Score int
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName prepares a product name or filename for comparison:
// diacritics stripped, lowercased, word runs joined with hyphens.
// "Gà Rán Giòn" and "ga-ran-gion.webp" normalize to the same string.
func normalizeName(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(out)
	// đ does not decompose under NFD
	out = strings.ReplaceAll(out, "đ", "d")

	var b strings.Builder
	for _, r := range out {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// stopwords: normalized Vietnamese numerals and portion words that say
// nothing about what the dish is.
var stopwords = map[string]bool{
	"mot": true, "hai": true, "bon": true, "nam": true, "sau": true,
	"bay": true, "tam": true, "chin": true, "muoi": true, "phan": true,
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func significantWords(normalized string) []string {
	var words []string
	for _, w := range strings.Split(normalized, "-") {
		if len(w) <= 2 || isAllDigits(w) || stopwords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// scoreMatch compares a normalized product name against a normalized
// filename: 100 exact, 80 filename contains name, 70 name contains
// filename, otherwise up to 60 scaled by overlapping significant words.
func scoreMatch(normName, normFile string) int {
	if normName == normFile {
		return 100
	}
	if strings.Contains(normFile, normName) {
		return 80
	}
	if strings.Contains(normName, normFile) {
		return 70
	}

	words := significantWords(normName)
	if len(words) == 0 {
		return 0
	}
	matched := 0
	for _, w := range words {
		if strings.Contains(normFile, w) {
			matched++
		}
	}
	return matched * 60 / len(words)
}

func hasImageExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// fuzzyImageMatch scans the asset directory and keeps the single best
// candidate. Strict > comparison: on a tie the first file scanned wins.
// Candidates under score 50 are rejected.
func fuzzyImageMatch(productName, assetDir string) string {
	normName := normalizeName(productName)
	if normName == "" {
		return ""
	}

	entries, err := os.ReadDir(assetDir)
	if err != nil {
		return ""
	}

	var best ImageMatch
	for _, entry := range entries {
		if entry.IsDir() || !hasImageExtension(entry.Name()) {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		score := scoreMatch(normName, normalizeName(base))
		if score > best.Score {
			best = ImageMatch{File: entry.Name(), Score: score}
		}
	}

	if best.Score >= 50 {
		return filepath.Join(assetDir, best.File)
	}
	return ""
}

// productImageKeywords maps product-name fragments to asset base names.
var productImageKeywords = map[string]string{
	"gà sốt cay":      "ga-sot-cay",
	"gà không xương":  "ga-khong-xuong",
	"khoai tây chiên": "khoai-tay-chien",
	"burger tôm":      "burger-tom",
	"cơm gà":          "com-ga",
	"gà rán":          "ga-ran",
	"burger":          "burger-bo",
	"mì ý":            "mi-y",
	"pepsi":           "pepsi",
	"mirinda":         "mirinda",
	"salad":           "salad",
	"7up":             "7up",
	"kem":             "kem-tuoi",
}

// categoryImageKeywords is the last resort, keyed on the category name.
var categoryImageKeywords = map[string]string{
	"thức uống":   "pepsi",
	"tráng miệng": "kem-tuoi",
	"món phụ":     "khoai-tay-chien",
	"burger":      "burger-bo",
	"gà":          "ga-ran",
	"cơm":         "com-ga",
	"mì":          "mi-y",
}

// keywordImageLookup tries keys longest first so "gà sốt cay" beats
// "gà". A key only counts when one of the extensions exists on disk.
func keywordImageLookup(text string, table map[string]string, assetDir string) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	lower := strings.ToLower(text)
	for _, key := range keys {
		if !strings.Contains(lower, key) {
			continue
		}
		for _, ext := range imageExtensions {
			path := filepath.Join(assetDir, table[key]+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// FindProductImage resolves an image path for a product: fuzzy filename
// match first, then the product keyword table, then the category
// keyword table. Empty string means no image, callers must keep any
// previously assigned image in that case.
func FindProductImage(productName, category, assetDir string) string {
	if path := fuzzyImageMatch(productName, assetDir); path != "" {
		return path
	}
	if path := keywordImageLookup(productName, productImageKeywords, assetDir); path != "" {
		return path
	}
	return keywordImageLookup(category, categoryImageKeywords, assetDir)
}
