package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies an entry as money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "receita"
	KindExpense Kind = "despesa"
)

var (
	// ErrUnknownKind is returned by ParseKind for anything other than income or expense.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrInvalidAmount is returned by ParseAmount for non-numeric or negative text.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrCarriageReturn is returned by CheckText for text holding '\r'.
	// The CSV reader folds a quoted "\r\n" into "\n", so such text cannot round-trip.
	ErrCarriageReturn = errors.New("text contains a carriage return")
)

// ParseKind converts user or file text into a Kind.
// "receita"/"income" and "despesa"/"expense" are accepted, case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindIncome), "income":
		return KindIncome, nil
	case string(KindExpense), "expense":
		return KindExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ParseAmount parses a non-negative decimal amount written with '.' as the fraction separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return d, nil
}

// Entry is one recorded financial movement. The sign of Amount is implied by Kind.
type Entry struct {
	Date        string // expected "YYYY-MM-DD", not validated
	Amount      decimal.Decimal
	Kind        Kind
	Category    string
	Description string
}

// NewEntry builds an Entry from already-parsed fields, verbatim.
func NewEntry(date string, amount decimal.Decimal, kind Kind, category, description string) Entry {
	return Entry{
		Date:        date,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		Description: description,
	}
}

// CheckText returns an error if a text field cannot be stored in the ledger file.
func (e Entry) CheckText() error {
	fields := []struct{ name, value string }{
		{"date", e.Date},
		{"category", e.Category},
		{"description", e.Description},
	}
	for _, f := range fields {
		if strings.ContainsRune(f.value, '\r') {
			return fmt.Errorf("%s: %w", f.name, ErrCarriageReturn)
		}
	}
	return nil
}

// Equal reports whether two entries hold the same fields. Amounts compare by value,
// so "100" and "100.00" are equal.
func (e Entry) Equal(o Entry) bool {
	return e.Date == o.Date &&
		e.Amount.Equal(o.Amount) &&
		e.Kind == o.Kind &&
		e.Category == o.Category &&
		e.Description == o.Description
}
