package models

// Category classifies a cost entry for monthly reporting.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySport     Category = "sport"
	CategoryEducation Category = "education"
)

// Categories lists the report categories in their fixed output order.
// Monthly reports always contain exactly these groups, in this order.
var Categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySport,
	CategoryEducation,
}

// Known reports whether c is one of the report categories. Costs with an
// unknown category are still persisted but never appear in a report.
func (c Category) Known() bool {
	switch c {
	case CategoryFood, CategoryHealth, CategoryHousing, CategorySport, CategoryEducation:
		return true
	}
	return false
}
