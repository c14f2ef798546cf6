package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/saldo/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	var date, amount, kind, category, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEntry(date, amount, kind, category, description)
			if err != nil {
				return err
			}
			return runAdd(cmd, a, e)
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, '.' as decimal separator (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&kind, "kind", "", "receita or despesa (required)")
	_ = cmd.MarkFlagRequired("kind")
	cmd.Flags().StringVar(&category, "category", "", "category (required for despesa)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")

	return cmd
}

func runAdd(cmd *cobra.Command, a *app, e model.Entry) error {
	l, err := a.load()
	if err != nil {
		return err
	}

	l.Add(e)
	a.log.Debug("Added entry", zap.String("date", e.Date), zap.String("kind", string(e.Kind)),
		zap.String("amount", e.Amount.String()), zap.String("category", e.Category))

	if err := a.save(l, fmt.Sprintf("add: %s %s %s", e.Date, e.Kind, e.Amount)); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Transação adicionada com sucesso!")
	return nil
}
