// Package model defines domain types for cardwise cards and transactions.
package model

import "time"

// Card represents one credit line in the wallet.
type Card struct {
	ID             string
	BankName       string
	CardName       string
	LastFourDigits string
	CreditLimit    int64 // whole currency units, must be > 0
	CurrentUsage   int64 // whole currency units, never negative
	StatementDate  int   // day of month the statement closes, 1-31
	DueDate        int   // day of month payment is owed, 1-31
	Color          string
}

// Transaction is one ledger entry. CardID is a lookup key, not an ownership
// relation: the referenced card may have been deleted since.
type Transaction struct {
	ID       string
	CardID   string
	Amount   int64
	Category Category
	Date     time.Time
}

// Recommendation pairs a card with its projected interest-free float.
// DaysUntilDue can be negative when the due date precedes the purchase date.
type Recommendation struct {
	Card           Card
	DaysUntilDue   int
	PaymentDueDate time.Time
}

// Category labels a transaction.
type Category string

// Transaction categories, in display order.
const (
	CategoryGroceries     Category = "Groceries"
	CategoryDining        Category = "Dining"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories lists all valid transaction categories.
var Categories = []Category{
	CategoryGroceries,
	CategoryDining,
	CategoryTravel,
	CategoryShopping,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryOther,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
