package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/saldo/internal/model"
)

// ChaseParser parses Chase checking CSV exports. Columns are located by
// header name, so exports with reordered or extra columns still parse.
type ChaseParser struct{}

const chaseDateFormat = "01/02/2006"

var chaseColumns = []string{"Posting Date", "Description", "Amount"}

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns BankTransactions.
func (p *ChaseParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	cols, err := chaseHeader(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := parseChaseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// chaseHeader maps each required column name to its index.
func chaseHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range chaseColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("chase CSV: missing column %q", name)
		}
	}
	return cols, nil
}

func parseChaseRow(rec []string, cols map[string]int) (model.BankTransaction, error) {
	field := func(name string) string { return strings.TrimSpace(rec[cols[name]]) }

	date, err := time.Parse(chaseDateFormat, field("Posting Date"))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", field("Posting Date"), err)
	}

	amount, err := decimal.NewFromString(field("Amount"))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", field("Amount"), err)
	}

	return model.BankTransaction{
		Date:        date,
		Description: strings.Join(strings.Fields(field("Description")), " "),
		Amount:      amount,
	}, nil
}
