package menuimport

// OptionGroup is one named cluster of choices for a menu item, in
// document order. Items keep their display text untouched.
type OptionGroup struct {
	Group string
	Items []string
}

// MenuItem is one parsed row of the menu document. Price is in major
// units (VND); the importer converts to minor units when writing.
type MenuItem struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Options     []OptionGroup
}

const (
	// DefaultCategory is used for rows that appear before any section header.
	DefaultCategory = "Khác"

	// terminatorMarker ends scanning, the upsize price table at the bottom
	// of the document is reference material, not menu data.
	terminatorMarker = "Bảng giá upsize"

	// tableHeaderToken identifies the header row of an item table.
	tableHeaderToken = "Tên món"
)
