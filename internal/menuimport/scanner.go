package menuimport

import (
	"regexp"
	"strconv"
	"strings"
)

// scanState: the scanner is a two-state machine, either looking for the
// next table header or consuming rows of the current table.
type scanState int

const (
	stateSeekingTable scanState = iota
	stateInTable
)

var sectionHeaderRe = regexp.MustCompile(`^## (\d+)\.\s+(.+)$`)

// columnMap holds the resolved cell index of each logical field, -1 when
// the table has no such column.
type columnMap struct {
	name        int
	description int
	options     int
	price       int
}

// resolveColumns: header labels only need to contain the marker word,
// exact wording varies between document revisions.
func resolveColumns(headers []string) columnMap {
	cols := columnMap{name: -1, description: -1, options: -1, price: -1}
	for i, h := range headers {
		lower := strings.ToLower(h)
		switch {
		case cols.name == -1 && strings.Contains(lower, "tên"):
			cols.name = i
		case cols.description == -1 && strings.Contains(lower, "mô tả"):
			cols.description = i
		case cols.options == -1 && strings.Contains(lower, "lựa chọn"):
			cols.options = i
		case cols.price == -1 && strings.Contains(lower, "giá"):
			cols.price = i
		}
	}
	return cols
}

// splitRow: split a pipe row into trimmed, non-empty cells.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

// isSeparatorRow: markdown table separator like |---|:---|
func isSeparatorRow(line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	return strings.Trim(line, "|-: \t") == ""
}

func stripBold(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// ParseMenu walks the document and returns the menu items in document
// order plus the number of table rows dropped for a missing name or an
// unparsable price. Everything after the terminator marker is ignored.
func ParseMenu(doc string) ([]MenuItem, int) {
	var items []MenuItem
	skipped := 0

	state := stateSeekingTable
	category := ""
	var cols columnMap

	for _, raw := range strings.Split(doc, "\n") {
		line := strings.TrimSpace(raw)

		if m := sectionHeaderRe.FindStringSubmatch(line); m != nil {
			category = strings.TrimSpace(m[2])
			state = stateSeekingTable
			continue
		}
		if strings.Contains(line, terminatorMarker) {
			break
		}
		if strings.HasPrefix(line, "|") && strings.Contains(line, tableHeaderToken) {
			cols = resolveColumns(splitRow(line))
			state = stateInTable
			continue
		}
		if isSeparatorRow(line) {
			continue
		}
		if state == stateInTable && strings.HasPrefix(line, "|") {
			item, ok := decodeRow(line, cols, category)
			if !ok {
				skipped++
				continue
			}
			items = append(items, item)
		}
	}

	return items, skipped
}

// decodeRow maps one table row to a MenuItem. Rows without a name or a
// parsable positive price are dropped, that is not an error.
func decodeRow(line string, cols columnMap, category string) (MenuItem, bool) {
	cells := splitRow(line)

	name := stripBold(cellAt(cells, cols.name))
	priceCell := cellAt(cells, cols.price)
	if name == "" || priceCell == "" {
		return MenuItem{}, false
	}

	price := ParsePrice(priceCell)
	if price <= 0 {
		return MenuItem{}, false
	}

	if category == "" {
		category = DefaultCategory
	}

	return MenuItem{
		Name:        name,
		Description: stripBold(cellAt(cells, cols.description)),
		Category:    category,
		Price:       price,
		Options:     ParseOptionBlock(cellAt(cells, cols.options)),
	}, true
}

// priceTokenRe: grouped thousands with dots, optional decimal comma,
// e.g. "235.000" or "1.250,5".
var priceTokenRe = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*(?:,\d+)?`)

// ParsePrice converts a Vietnamese formatted price cell to a major-unit
// amount. No numeric token or a parse failure yields 0.
func ParsePrice(cell string) float64 {
	token := priceTokenRe.FindString(cell)
	if token == "" {
		return 0
	}
	token = strings.ReplaceAll(token, ".", "")
	token = strings.ReplaceAll(token, ",", ".")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return v
}
