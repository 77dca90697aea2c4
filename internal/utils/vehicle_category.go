package utils

import "strings"

// Vehicle categories as stored in the catalog.
const (
	CategoryScooty = "scooty"
	CategoryBike   = "bike"
	CategoryCar    = "car"
	CategorySUV    = "suv"
)

var twoWheelerCategories = []string{CategoryBike, CategoryScooty}

// IsTwoWheeler reports whether the category is eligible for the helmet add-on.
func IsTwoWheeler(category string) bool {
	c := NormalizeCategory(category)
	for _, tw := range twoWheelerCategories {
		if c == tw {
			return true
		}
	}
	return false
}

// IsKnownCategory reports whether the category is one the catalog uses.
func IsKnownCategory(category string) bool {
	switch NormalizeCategory(category) {
	case CategoryScooty, CategoryBike, CategoryCar, CategorySUV:
		return true
	}
	return false
}

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
