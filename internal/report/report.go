// Package report renders ledger results as text for the terminal.
package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cleared-dev/saldo/internal/ledger"
	"github.com/cleared-dev/saldo/internal/model"
)

// Money formats an amount with two decimal places behind the currency symbol.
func Money(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// WriteBalance prints the current balance.
func WriteBalance(w io.Writer, symbol string, balance decimal.Decimal) error {
	_, err := fmt.Fprintf(w, "Saldo atual: %s\n", Money(symbol, balance))
	return err
}

// WriteCategoryReport prints one line per expense category.
func WriteCategoryReport(w io.Writer, symbol string, totals ledger.CategoryTotals) error {
	if _, err := fmt.Fprintln(w, "### Relatório de Gastos por Categoria ###"); err != nil {
		return err
	}
	for _, ct := range totals {
		if _, err := fmt.Fprintf(w, "%s: %s\n", Capitalize(ct.Category), Money(symbol, ct.Total)); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntriesOnDate prints the entries recorded on date.
func WriteEntriesOnDate(w io.Writer, symbol, date string, entries []model.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "Nenhuma transação encontrada para esta data.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Transações em %s:\n", date); err != nil {
		return err
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s: %s %s (%s)", e.Date, Money(symbol, e.Amount), e.Kind, e.Category)
		if e.Description != "" {
			line += " - " + e.Description
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteStats prints the average expense and income.
func WriteStats(w io.Writer, symbol string, avgExpense, avgIncome decimal.Decimal) error {
	_, err := fmt.Fprintf(w, "Estatísticas financeiras:\nMédia de despesas por mês: %s\nMédia de receitas por mês: %s\n",
		Money(symbol, avgExpense), Money(symbol, avgIncome))
	return err
}
