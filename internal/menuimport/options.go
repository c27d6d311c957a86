package menuimport

import (
	"regexp"
	"strings"

	"github.com/UIT23520530/AnEat-sub002/internal/models"
)

// UngroupedLabel names the synthetic group for option lines that appear
// outside any bold group header.
const UngroupedLabel = "Lựa chọn"

var (
	inlineBreakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	boldLabelRe   = regexp.MustCompile(`^\*\*(.+?):?\*\*:?$`)

	// compoundBeverageRe: "A / B (X/Y)" cells expand to the full cross
	// product of the two drinks and the two sizes.
	compoundBeverageRe = regexp.MustCompile(`^(.+?)\s*/\s*(.+?)\s*\(([^()/]+)/([^()/]+)\)$`)
)

// ParseOptionBlock converts the options cell of one row into option
// groups. "-" or an empty cell means the item has no options.
func ParseOptionBlock(cell string) []OptionGroup {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return nil
	}

	text := inlineBreakRe.ReplaceAllString(cell, "\n")

	var groups []OptionGroup
	var current *OptionGroup

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := boldLabelRe.FindStringSubmatch(line); m != nil {
			label := strings.TrimSpace(strings.TrimSuffix(m[1], ":"))
			if current != nil && len(current.Items) > 0 {
				groups = append(groups, *current)
			}
			current = &OptionGroup{Group: label}
			continue
		}

		if current != nil {
			item := strings.TrimSpace(strings.TrimPrefix(line, "+"))
			current.Items = append(current.Items, expandOptionLine(item)...)
			continue
		}

		// standalone line before any group header
		if strings.HasPrefix(line, "|") {
			continue
		}
		item := strings.TrimSpace(strings.TrimPrefix(line, "+"))
		if names := expandOptionLine(item); len(names) > 0 {
			groups = append(groups, OptionGroup{Group: UngroupedLabel, Items: names})
		}
	}

	if current != nil && len(current.Items) > 0 {
		groups = append(groups, *current)
	}

	return groups
}

// expandOptionLine turns one item line into concrete option names.
func expandOptionLine(line string) []string {
	if m := compoundBeverageRe.FindStringSubmatch(line); m != nil {
		a := strings.TrimSpace(m[1])
		b := strings.TrimSpace(m[2])
		x := strings.TrimSpace(m[3])
		y := strings.TrimSpace(m[4])
		return []string{
			a + " (" + x + ")",
			a + " (" + y + ")",
			b + " (" + x + ")",
			b + " (" + y + ")",
		}
	}
	return splitOutsideParens(line)
}

// splitOutsideParens splits on '/' only at parenthesis depth zero, so
// "Pepsi (Thường/Up)" stays one item while "7Up / Pepsi" becomes two.
func splitOutsideParens(line string) []string {
	var parts []string
	var b strings.Builder
	depth := 0

	for _, r := range line {
		switch r {
		case '(':
			depth++
			b.WriteRune(r)
		case ')':
			if depth > 0 {
				depth--
			}
			b.WriteRune(r)
		case '/':
			if depth == 0 {
				parts = append(parts, b.String())
				b.Reset()
				continue
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	parts = append(parts, b.String())

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BeverageUpsizePrice is the fixed surcharge for an upsized soft drink,
// in major units.
const BeverageUpsizePrice = 10000

var beverageBrands = []string{"pepsi", "7up", "mirinda", "coca", "sting"}

// UpsizeRule maps an option-name keyword to an extra price. The table
// is evaluated top to bottom and the first match wins.
type UpsizeRule struct {
	Keyword string
	Price   float64
}

var upsizeRules = []UpsizeRule{
	{Keyword: "size l", Price: 15000},
	{Keyword: "size m", Price: 10000},
	{Keyword: "lớn", Price: 15000},
	{Keyword: "vừa", Price: 10000},
	{Keyword: "up", Price: 10000},
}

// suffixKeywords also match as a space-prefixed suffix of the name.
var suffixKeywords = map[string]bool{"lớn": true, "vừa": true}

var trailingParenRe = regexp.MustCompile(`\(([^)]*)\)\s*$`)

// OptionPrice resolves the extra price of one option name in major
// units. The soft-drink rule takes priority over the generic table: a
// branded drink is only surcharged when its size suffix says "up".
func OptionPrice(name string) float64 {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, brand := range beverageBrands {
		if !strings.Contains(lower, brand) {
			continue
		}
		if m := trailingParenRe.FindStringSubmatch(lower); m != nil {
			if strings.Contains(m[1], "up") {
				return BeverageUpsizePrice
			}
			return 0
		}
		if strings.HasSuffix(lower, " up") {
			return BeverageUpsizePrice
		}
		return 0
	}

	for _, rule := range upsizeRules {
		if lower == rule.Keyword ||
			strings.Contains(lower, rule.Keyword) ||
			(suffixKeywords[rule.Keyword] && strings.HasSuffix(lower, " "+rule.Keyword)) {
			return rule.Price
		}
	}
	return 0
}

var (
	sizeTokens  = []string{"size", "lớn", "vừa", "nhỏ", "up"}
	sauceTokens = []string{"sốt", "sauce", "tương", "cay", "muối"}
)

// ClassifyOption tags an option name. Size tokens are checked before
// sauce tokens, a name matching both is a SIZE.
func ClassifyOption(name string) models.OptionType {
	lower := strings.ToLower(name)
	for _, t := range sizeTokens {
		if strings.Contains(lower, t) {
			return models.OptionTypeSize
		}
	}
	for _, t := range sauceTokens {
		if strings.Contains(lower, t) {
			return models.OptionTypeSauce
		}
	}
	return models.OptionTypeOther
}
