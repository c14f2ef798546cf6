package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the layout of Entry.Date.
const DateFormat = "2006-01-02"

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
}

// Entry converts the transaction into a ledger entry filed under category.
// The sign of Amount picks the kind; the entry stores the magnitude.
func (t BankTransaction) Entry(category string) Entry {
	kind := KindIncome
	if t.Amount.IsNegative() {
		kind = KindExpense
	}
	return NewEntry(t.Date.Format(DateFormat), t.Amount.Abs(), kind, category, t.Description)
}
