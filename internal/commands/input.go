package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/saldo/internal/model"
)

var errCategoryRequired = errors.New("category is required for expenses")

// parseEntry turns raw user text into an Entry, rejecting anything the
// ledger should never see.
func parseEntry(date, amount, kind, category, description string) (model.Entry, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return model.Entry{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	amt, err := model.ParseAmount(amount)
	if err != nil {
		return model.Entry{}, err
	}

	k, err := model.ParseKind(kind)
	if err != nil {
		return model.Entry{}, fmt.Errorf("%w (use receita or despesa)", err)
	}

	category = strings.TrimSpace(category)
	if k == model.KindExpense && category == "" {
		return model.Entry{}, errCategoryRequired
	}

	e := model.NewEntry(date, amt, k, category, strings.TrimSpace(description))
	if err := e.CheckText(); err != nil {
		return model.Entry{}, err
	}
	return e, nil
}
