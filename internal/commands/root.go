package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/saldo/internal/buildinfo"
	"github.com/cleared-dev/saldo/internal/config"
	"github.com/cleared-dev/saldo/internal/gitops"
	"github.com/cleared-dev/saldo/internal/ledger"
	"github.com/cleared-dev/saldo/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	file       string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "saldo",
		Short:   "Personal finance ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath, "config file")
	flags.StringVar(&a.file, "file", "", "ledger CSV file (overrides ledger.file from the config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(a),
		newBalanceCommand(a),
		newCategoriesCommand(a),
		newFindCommand(a),
		newStatsCommand(a),
		newImportCommand(a),
		newMenuCommand(a),
	)

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.log = logger
	return nil
}

// ledgerPath resolves the ledger file. A relative path from the config file
// is taken relative to the config file's directory.
func (a *app) ledgerPath() string {
	if a.file != "" {
		return a.file
	}
	path := a.cfg.Ledger.File
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(a.configPath), path)
}

func (a *app) symbol() string {
	return a.cfg.Display.CurrencySymbol
}

// loadInto appends the ledger file's entries to l.
func (a *app) loadInto(l *ledger.Ledger) (found bool, err error) {
	path := a.ledgerPath()
	before := l.Len()
	found, err = l.Load(path)
	if err != nil {
		a.log.Error("Failed to load ledger", zap.String("path", path), zap.Error(err))
		return found, err
	}
	if !found {
		a.log.Info("Ledger file not found, starting empty", zap.String("path", path))
		return false, nil
	}
	a.log.Debug("Loaded ledger", zap.String("path", path), zap.Int("entries", l.Len()-before))
	return true, nil
}

// load reads the ledger file into a fresh ledger.
func (a *app) load() (*ledger.Ledger, error) {
	l := ledger.New()
	if _, err := a.loadInto(l); err != nil {
		return nil, err
	}
	return l, nil
}

// save writes l to the ledger file and, when enabled, commits it.
func (a *app) save(l *ledger.Ledger, message string) error {
	path := a.ledgerPath()
	if err := l.Save(path); err != nil {
		a.log.Error("Failed to save ledger", zap.String("path", path), zap.Error(err))
		return err
	}
	a.log.Debug("Saved ledger", zap.String("path", path), zap.Int("entries", l.Len()))

	if !a.cfg.Git.AutoCommit {
		return nil
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if !gitops.IsRepo(dir) {
		a.log.Warn("Git auto-commit enabled but ledger directory is not a repository", zap.String("dir", dir))
		return nil
	}
	author := gitops.Author{Name: a.cfg.Git.AuthorName, Email: a.cfg.Git.AuthorEmail}
	hash, err := gitops.CommitFile(dir, file, message, author)
	if err != nil {
		return fmt.Errorf("committing ledger: %w", err)
	}
	if hash != "" {
		a.log.Info("Committed ledger", zap.String("commit", hash))
	}
	return nil
}
