package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/saldo/internal/importer"
)

func newImportCommand(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "import <format> <csv>",
		Short: "Append the transactions of a bank CSV export",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, a, args[0], args[1], category)
		},
	}

	cmd.Flags().StringVar(&category, "category", "importado", "category assigned to imported entries")

	return cmd
}

func runImport(cmd *cobra.Command, a *app, format, path, category string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := importer.DefaultRegistry().Entries(format, f, category)
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}

	l, err := a.load()
	if err != nil {
		return err
	}
	for _, e := range entries {
		l.Add(e)
	}
	a.log.Info("Imported bank transactions", zap.String("format", format),
		zap.String("source", path), zap.Int("entries", len(entries)))

	if err := a.save(l, fmt.Sprintf("import: %d entries from %s", len(entries), format)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", len(entries), path)
	return nil
}
