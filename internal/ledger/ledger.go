// Package ledger holds the in-memory list of entries and the queries over it.
package ledger

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/saldo/internal/model"
	"github.com/cleared-dev/saldo/internal/store"
)

// Ledger is an ordered, append-only collection of entries.
// It is not safe for concurrent use.
type Ledger struct {
	entries []model.Entry
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{}
}

// Add appends an entry.
func (l *Ledger) Add(e model.Entry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of all entries in insertion order.
func (l *Ledger) Entries() []model.Entry {
	return slices.Clone(l.entries)
}

// Balance returns total income minus total expenses.
func (l *Ledger) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, e := range l.entries {
		switch e.Kind {
		case model.KindIncome:
			balance = balance.Add(e.Amount)
		case model.KindExpense:
			balance = balance.Sub(e.Amount)
		}
	}
	return balance
}

// CategoryTotal is the summed expense amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryTotals lists categories in order of their first expense.
type CategoryTotals []CategoryTotal

// Get returns the total for category.
func (c CategoryTotals) Get(category string) (decimal.Decimal, bool) {
	for _, ct := range c {
		if ct.Category == category {
			return ct.Total, true
		}
	}
	return decimal.Zero, false
}

// Map returns the totals keyed by category.
func (c CategoryTotals) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(c))
	for _, ct := range c {
		m[ct.Category] = ct.Total
	}
	return m
}

// TotalsByCategory sums expense amounts per category. Categories are matched
// exactly and income entries are ignored.
func (l *Ledger) TotalsByCategory() CategoryTotals {
	var totals CategoryTotals
	index := make(map[string]int)
	for _, e := range l.entries {
		if e.Kind != model.KindExpense {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}
	return totals
}

// FindByDate returns the entries whose date equals date, in insertion order.
func (l *Ledger) FindByDate(date string) []model.Entry {
	found := []model.Entry{}
	for _, e := range l.entries {
		if e.Date == date {
			found = append(found, e)
		}
	}
	return found
}

// Averages returns the mean expense amount and the mean income amount.
// The mean of an empty group is zero.
func (l *Ledger) Averages() (avgExpense, avgIncome decimal.Decimal) {
	var expenses, incomes []decimal.Decimal
	for _, e := range l.entries {
		switch e.Kind {
		case model.KindExpense:
			expenses = append(expenses, e.Amount)
		case model.KindIncome:
			incomes = append(incomes, e.Amount)
		}
	}
	return mean(expenses), mean(incomes)
}

func mean(amounts []decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(amounts[0], amounts[1:]...).Div(decimal.NewFromInt(int64(len(amounts))))
}

// Save writes every entry to path, overwriting it.
func (l *Ledger) Save(path string) error {
	return store.Save(path, l.entries)
}

// Load appends the entries stored at path. Existing entries are kept.
// found is false when path does not exist; on error nothing is appended.
func (l *Ledger) Load(path string) (found bool, err error) {
	entries, found, err := store.Load(path)
	if err != nil {
		return found, err
	}
	l.entries = append(l.entries, entries...)
	return found, nil
}
