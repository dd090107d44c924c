package model

// Category classifies a card transaction. Exactly one per row, recomputed
// on demand.
type Category string

const (
	CategoryTopup    Category = "topup"
	CategoryPrinting Category = "printing"
	CategoryAdmin    Category = "admin"
	CategoryExpense  Category = "expense"
	CategoryOther    Category = "other"
)
