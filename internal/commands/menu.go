package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/saldo/internal/ledger"
	"github.com/cleared-dev/saldo/internal/report"
)

const menuText = `
### Menu ###
1. Adicionar transação
2. Verificar saldo
3. Relatório de gastos por categoria
4. Consultar transações por data
5. Estatísticas financeiras
6. Salvar transações
7. Carregar transações
0. Sair`

func newMenuCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu over an in-memory ledger",
		Long: "Interactive menu over an in-memory ledger. The session starts empty;\n" +
			"use the save and load options to write or read the ledger file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{
				app:    a,
				ledger: ledger.New(),
				p:      newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
			}
			return s.run()
		},
	}
}

// session is one run of the interactive menu.
type session struct {
	app    *app
	ledger *ledger.Ledger
	p      *prompter
}

func (s *session) run() error {
	for {
		s.p.Println(menuText)
		choice, err := s.p.Text("Escolha uma opção: ")
		if errors.Is(err, io.EOF) {
			s.p.Println()
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.add()
		case "2":
			err = report.WriteBalance(s.p.out, s.app.symbol(), s.ledger.Balance())
		case "3":
			err = report.WriteCategoryReport(s.p.out, s.app.symbol(), s.ledger.TotalsByCategory())
		case "4":
			err = s.find()
		case "5":
			avgExpense, avgIncome := s.ledger.Averages()
			err = report.WriteStats(s.p.out, s.app.symbol(), avgExpense, avgIncome)
		case "6":
			s.save()
		case "7":
			s.load()
		case "0":
			s.p.Println("Saindo do programa...")
			return nil
		default:
			s.p.Println("Opção inválida. Por favor, escolha uma opção válida.")
		}

		if errors.Is(err, io.EOF) {
			s.p.Println()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) add() error {
	questions := []string{
		"Digite a data (YYYY-MM-DD): ",
		"Digite o valor: ",
		"Digite o tipo (receita ou despesa): ",
		"Digite a categoria: ",
		"Digite uma descrição: ",
	}
	answers := make([]string, len(questions))
	for i, q := range questions {
		ans, err := s.p.Text(q)
		if err != nil {
			return err
		}
		answers[i] = ans
	}

	e, err := parseEntry(answers[0], answers[1], answers[2], answers[3], answers[4])
	if err != nil {
		s.p.Printf("Transação não adicionada: %v\n", err)
		return nil
	}
	s.ledger.Add(e)
	s.p.Println("Transação adicionada com sucesso!")
	return nil
}

func (s *session) find() error {
	date, err := s.p.Text("Digite a data (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	date = strings.TrimSpace(date)
	return report.WriteEntriesOnDate(s.p.out, s.app.symbol(), date, s.ledger.FindByDate(date))
}

func (s *session) save() {
	if err := s.app.save(s.ledger, "menu: save"); err != nil {
		s.p.Printf("Erro ao salvar transações: %v\n", err)
		return
	}
	s.p.Println("Transações salvas com sucesso!")
}

func (s *session) load() {
	found, err := s.app.loadInto(s.ledger)
	if err != nil {
		s.p.Printf("Erro ao carregar transações: %v\n", err)
		return
	}
	if !found {
		s.p.Println("Arquivo não encontrado. Começando do zero.")
		return
	}
	s.app.log.Debug("Menu ledger size", zap.Int("entries", s.ledger.Len()))
	s.p.Println("Transações carregadas com sucesso!")
}
