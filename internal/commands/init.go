package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/saldo/internal/config"
	"github.com/cleared-dev/saldo/internal/gitops"
	"github.com/cleared-dev/saldo/internal/store"
)

func newInitCommand() *cobra.Command {
	var withGit bool
	var symbol string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a config file and an empty ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, symbol, withGit); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized saldo ledger at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and commit ledger saves")
	cmd.Flags().StringVar(&symbol, "currency-symbol", "R$", "currency symbol shown before amounts")

	return cmd
}

func runInit(dir, symbol string, withGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	// Write saldo.yaml.
	cfg := config.Default()
	cfg.Display.CurrencySymbol = symbol
	cfg.Git.AutoCommit = withGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty ledger unless one is already there.
	ledgerPath := filepath.Join(dir, cfg.Ledger.File)
	if _, err := os.Stat(ledgerPath); errors.Is(err, fs.ErrNotExist) {
		if err := store.Save(ledgerPath, nil); err != nil {
			return fmt.Errorf("writing ledger: %w", err)
		}
	}

	if !withGit {
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}
	author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	if _, err := gitops.CommitAll(dir, "init: saldo ledger", author); err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	return nil
}
