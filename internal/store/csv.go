package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/saldo/internal/model"
)

// Header is the CSV header of the ledger file.
const Header = "Data,Valor,Tipo,Categoria,Descrição"

// ErrMalformed marks a ledger file that cannot be parsed.
var ErrMalformed = errors.New("malformed ledger file")

const (
	numFields   = 5
	colDate     = 0
	colAmount   = 1
	colKind     = 2
	colCategory = 3
	colDesc     = 4

	utf8BOM = "\ufeff"
)

// ReadEntries reads all entries from a ledger CSV reader.
// Either every row parses or an error is returned and no entries are.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	// Skip header row.
	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformed, i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to a ledger CSV writer (including header).
// Nothing is written if any entry holds text the file cannot store.
func WriteEntries(w io.Writer, entries []model.Entry) error {
	for i, e := range entries {
		if err := e.CheckText(); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row ([]string).
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date
	row[colAmount] = e.Amount.String()
	row[colKind] = string(e.Kind)
	row[colCategory] = e.Category
	row[colDesc] = e.Description
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := model.ParseAmount(record[colAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing amount: %w", err)
	}

	kind, err := model.ParseKind(record[colKind])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing kind: %w", err)
	}

	return model.NewEntry(record[colDate], amount, kind, record[colCategory], record[colDesc]), nil
}

func checkHeader(rec []string) error {
	want := strings.Split(Header, ",")
	for i, name := range rec {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if name != want[i] {
			return fmt.Errorf("%w: header column %d is %q, want %q", ErrMalformed, i+1, name, want[i])
		}
	}
	return nil
}
