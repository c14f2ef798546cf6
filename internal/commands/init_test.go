package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/saldo/internal/config"
	"github.com/cleared-dev/saldo/internal/store"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := runSaldo(t, dir, nil, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized saldo ledger at")

	cfg, err := config.Load(filepath.Join(dir, "saldo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "transacoes.csv", cfg.Ledger.File)
	assert.Equal(t, "R$", cfg.Display.CurrencySymbol)
	assert.False(t, cfg.Git.AutoCommit)

	data, err := os.ReadFile(filepath.Join(dir, "transacoes.csv"))
	require.NoError(t, err)
	assert.Equal(t, store.Header+"\n", string(data))
}

func TestInit_CurrencySymbol(t *testing.T) {
	dir := t.TempDir()
	_, err := runSaldo(t, dir, nil, "init", dir, "--currency-symbol", "$")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "saldo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := runSaldo(t, dir, nil, "init", dir)
	require.NoError(t, err)

	_, err = runSaldo(t, dir, nil, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_KeepsExistingLedger(t *testing.T) {
	dir := t.TempDir()
	ledgerFile := filepath.Join(dir, "transacoes.csv")
	content := store.Header + "\n2024-01-01,10,despesa,food,\n"
	require.NoError(t, os.WriteFile(ledgerFile, []byte(content), 0o644))

	_, err := runSaldo(t, dir, nil, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(ledgerFile)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestInit_Git(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	_, err := runSaldo(t, dir, nil, "init", dir, "--git")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	cfg, err := config.Load(filepath.Join(dir, "saldo.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)

	// An add is committed on top of the init commit.
	_, err = runSaldo(t, dir, nil, "add", "--date", "2024-01-01", "--amount", "10", "--kind", "despesa", "--category", "food")
	require.NoError(t, err)

	log := exec.Command("git", "log", "--format=%s")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Equal(t, "add: 2024-01-01 despesa 10\ninit: saldo ledger\n", string(out))
}
