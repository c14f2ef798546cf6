package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/saldo/internal/ledger"
	"github.com/cleared-dev/saldo/internal/model"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"50", "R$50.00"},
		{"127.5", "R$127.50"},
		{"-3", "R$-3.00"},
		{"0.125", "R$0.13"},
		{"0", "R$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money("R$", decimal.RequireFromString(tt.input)), "input %q", tt.input)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"food", "Food"},
		{"FOOD", "Food"},
		{"fast food", "Fast food"},
		{"éducation", "Éducation"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.input), "input %q", tt.input)
	}
}

func TestWriteBalance(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBalance(&buf, "R$", decimal.NewFromInt(50)))
	assert.Equal(t, "Saldo atual: R$50.00\n", buf.String())
}

func TestWriteCategoryReport(t *testing.T) {
	totals := ledger.CategoryTotals{
		{Category: "food", Total: decimal.NewFromInt(50)},
		{Category: "transporte", Total: decimal.RequireFromString("12.5")},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCategoryReport(&buf, "$", totals))
	assert.Equal(t, "### Relatório de Gastos por Categoria ###\nFood: $50.00\nTransporte: $12.50\n", buf.String())
}

func TestWriteEntriesOnDate(t *testing.T) {
	entries := []model.Entry{
		model.NewEntry("2024-01-01", decimal.NewFromInt(100), model.KindIncome, "salary", ""),
		model.NewEntry("2024-01-01", decimal.NewFromInt(30), model.KindExpense, "food", "lunch"),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteEntriesOnDate(&buf, "R$", "2024-01-01", entries))
	assert.Equal(t, "Transações em 2024-01-01:\n"+
		"2024-01-01: R$100.00 receita (salary)\n"+
		"2024-01-01: R$30.00 despesa (food) - lunch\n", buf.String())
}

func TestWriteEntriesOnDate_None(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntriesOnDate(&buf, "R$", "2024-01-09", nil))
	assert.Contains(t, buf.String(), "Nenhuma transação")
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStats(&buf, "R$", decimal.NewFromInt(25), decimal.NewFromInt(100)))
	assert.Contains(t, buf.String(), "Média de despesas por mês: R$25.00")
	assert.Contains(t, buf.String(), "Média de receitas por mês: R$100.00")
}
