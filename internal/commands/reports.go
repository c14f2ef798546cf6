package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/saldo/internal/report"
)

func newBalanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show income minus expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load()
			if err != nil {
				return err
			}
			return report.WriteBalance(cmd.OutOrStdout(), a.symbol(), l.Balance())
		},
	}
}

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show total spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load()
			if err != nil {
				return err
			}
			return report.WriteCategoryReport(cmd.OutOrStdout(), a.symbol(), l.TotalsByCategory())
		},
	}
}

func newFindCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <date>",
		Short: "List the entries recorded on a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load()
			if err != nil {
				return err
			}
			return report.WriteEntriesOnDate(cmd.OutOrStdout(), a.symbol(), args[0], l.FindByDate(args[0]))
		},
	}
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the average expense and income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load()
			if err != nil {
				return err
			}
			avgExpense, avgIncome := l.Averages()
			return report.WriteStats(cmd.OutOrStdout(), a.symbol(), avgExpense, avgIncome)
		},
	}
}
