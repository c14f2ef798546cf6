package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.File = "/tmp/money.csv"
	cfg.Display.CurrencySymbol = "€"
	cfg.Git.AutoCommit = true

	path := filepath.Join(t.TempDir(), "saldo.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "transacoes.csv", cfg.Ledger.File)
	assert.Equal(t, "R$", cfg.Display.CurrencySymbol)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Saldo", cfg.Git.AuthorName)
	assert.Equal(t, "saldo@localhost", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saldo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  file: casa.csv\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "casa.csv", cfg.Ledger.File)
	assert.Equal(t, "R$", cfg.Display.CurrencySymbol)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saldo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saldo.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "file: transacoes.csv")
	assert.Contains(t, contents, "currency_symbol: R$")
	assert.Contains(t, contents, "level: warn")
	assert.Contains(t, contents, "auto_commit: false")
}
