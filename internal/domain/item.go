package domain

// Category groups packing items for presentation
type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryToiletries  Category = "toiletries"
	CategoryDocuments   Category = "documents"
	CategoryMedicines   Category = "medicines"
	CategoryEssentials  Category = "essentials"
	CategoryOther       Category = "other"
)

// Categories lists every category in presentation order
var Categories = []Category{
	CategoryClothing,
	CategoryElectronics,
	CategoryToiletries,
	CategoryDocuments,
	CategoryMedicines,
	CategoryEssentials,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryClothing:    "옷차림",
	CategoryElectronics: "전자기기",
	CategoryToiletries:  "세면용품",
	CategoryDocuments:   "서류",
	CategoryMedicines:   "의약품",
	CategoryEssentials:  "필수품",
	CategoryOther:       "기타",
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label, falling back to the "other" label
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// Item is a single packing suggestion. Name is the identity within one
// recommendation; Count is zero when the item carries no quantity.
type Item struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	IsEssential bool     `json:"isEssential"`
	Count       int      `json:"count,omitempty"`
}

// HasCount reports whether the item carries a quantity
func (i Item) HasCount() bool {
	return i.Count > 0
}

// ThemeTemplate is the stored checklist for one travel theme
type ThemeTemplate struct {
	ThemeName string `json:"themeName"`
	Items     []Item `json:"items"`
}
