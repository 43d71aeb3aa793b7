package domain

import "strings"

// Category narrows which benchmarks are eligible to run.
type Category string

const (
	// CategoryCoreCLR selects runtime benchmarks.
	CategoryCoreCLR Category = "coreclr"
	// CategoryCoreFX selects framework library benchmarks.
	CategoryCoreFX Category = "corefx"
)

// SupportedCategories returns the known categories.
func SupportedCategories() []Category {
	return []Category{CategoryCoreCLR, CategoryCoreFX}
}

// ParseCategory matches s case-insensitively and returns the lowercase category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(s))
	for _, known := range SupportedCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
