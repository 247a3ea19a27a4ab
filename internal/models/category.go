package models

// System category identifiers. The taxonomy is closed; the remote
// classifier must answer with one of these ids.
const (
	CategoryIDUncategorized = 0
	CategoryIDGroceries     = 1
	CategoryIDDining        = 2
	CategoryIDTransport     = 3
	CategoryIDShopping      = 4
	CategoryIDBills         = 5
	CategoryIDHealthcare    = 6
	CategoryIDEntertainment = 7
	CategoryIDTravel        = 8
	CategoryIDFees          = 9
	CategoryIDOther         = 10
)

// SystemCategory pairs a stable id with a display name
type SystemCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AllCategories returns the full system taxonomy in id order
func AllCategories() []SystemCategory {
	return []SystemCategory{
		{CategoryIDGroceries, "Groceries"},
		{CategoryIDDining, "Dining"},
		{CategoryIDTransport, "Transportation"},
		{CategoryIDShopping, "Shopping"},
		{CategoryIDBills, "Bills & Utilities"},
		{CategoryIDHealthcare, "Healthcare"},
		{CategoryIDEntertainment, "Entertainment"},
		{CategoryIDTravel, "Travel"},
		{CategoryIDFees, "Fees & Charges"},
		{CategoryIDOther, "Other"},
	}
}

// IsValidCategoryID checks if an id belongs to the system taxonomy
func IsValidCategoryID(id int) bool {
	return id >= CategoryIDGroceries && id <= CategoryIDOther
}

// CategoryNameByID returns the display name for a taxonomy id, or ""
func CategoryNameByID(id int) string {
	for _, c := range AllCategories() {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// CategoryAssignment is one classifier answer for a normalized description
type CategoryAssignment struct {
	NormDesc     string `json:"norm_desc"`
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	Note         string `json:"note"`
}

// Valid reports whether the assignment references the known taxonomy
func (a CategoryAssignment) Valid() bool {
	return a.NormDesc != "" && IsValidCategoryID(a.CategoryID)
}
