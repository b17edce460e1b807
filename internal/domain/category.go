package domain

// Category is one label from the closed spending taxonomy.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryGroceries      Category = "Groceries"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryBills          Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBankingFees    Category = "Banking & Fees"
	CategoryIncome         Category = "Income"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryTransfer       Category = "Transfer"
	CategoryOther          Category = "Other"
)

// Categories lists every valid category in declaration order. The order
// matters: keyword-scoring ties are broken by it.
var Categories = []Category{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryTransportation,
	CategoryShopping,
	CategoryBills,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryBankingFees,
	CategoryIncome,
	CategoryPersonalCare,
	CategoryEducation,
	CategoryTravel,
	CategoryTransfer,
	CategoryOther,
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
