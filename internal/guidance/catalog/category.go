// Package catalog holds the static career data the guidance engines read.
// Every table here is built at compile time and never mutated; concurrent
// reads are safe without synchronization.
package catalog

// Category is the closed set of coarse career groupings used by the
// conflict analyzer and the compromise table.
type Category string

const (
	CategoryTechnology  Category = "technology"
	CategoryGovernment  Category = "government"
	CategoryHealthcare  Category = "healthcare"
	CategoryCreative    Category = "creative"
	CategoryBusiness    Category = "business"
	CategoryScience     Category = "science"
	CategoryEducation   Category = "education"
	CategoryEngineering Category = "engineering"
	CategoryMarketing   Category = "marketing"
)

// Categories lists every valid category in a fixed order.
var Categories = []Category{
	CategoryTechnology,
	CategoryGovernment,
	CategoryHealthcare,
	CategoryCreative,
	CategoryBusiness,
	CategoryScience,
	CategoryEducation,
	CategoryEngineering,
	CategoryMarketing,
}

// Valid reports whether c is one of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryGovernment, CategoryHealthcare,
		CategoryCreative, CategoryBusiness, CategoryScience,
		CategoryEducation, CategoryEngineering, CategoryMarketing:
		return true
	}
	return false
}

// Stability is the job-security tier attached to keyword entries and profiles.
type Stability string

const (
	StabilityLow    Stability = "low"
	StabilityMedium Stability = "medium"
	StabilityHigh   Stability = "high"
)
