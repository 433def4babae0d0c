// Package view is the terminal front-end: a cobra command tree whose root
// runs the interactive menu, plus subcommands for scripted use.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"expensetracker/internal/app"
	"expensetracker/internal/cli"
	"expensetracker/internal/config"
	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/presenter"
)

type rootFlags struct {
	dbPath      string
	backend     string
	rulesFile   string
	exportPath  string
	currency    string
	strictDates bool
}

// session is the state one command invocation shares between bootstrap,
// the running command and shutdown.
type session struct {
	flags     rootFlags
	out       io.Writer
	errOut    io.Writer
	currency  string
	logger    *applog.Logger
	presenter *presenter.Presenter
	stop      func()
}

// Execute is the main entry point called from main.go.
func Execute() {
	root, closeSession := NewRootCommand(os.Stdout, os.Stderr)
	err := root.ExecuteContext(context.Background())
	closeSession()
	if err != nil {
		var failure *presenter.Failure
		if !errors.As(err, &failure) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. The returned func closes the store
// opened during bootstrap and must be called once Execute returns.
func NewRootCommand(out, errOut io.Writer) (*cobra.Command, func()) {
	s := &session{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "expense-tracker",
		Short: "Personal expense tracker",
		Long: "Record expenses, compare category spending against advisor thresholds,\n" +
			"chart totals and export a CSV report. Run without a command for the interactive menu.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewMenu(s.presenter, s.out, s.currency, s.logger).Run(cmd.Context())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&s.flags.dbPath, "db", "", "SQLite database file (overrides EXPENSES_DB_PATH)")
	pf.StringVar(&s.flags.backend, "backend", "", "Storage backend: sqlite or memory (overrides EXPENSES_BACKEND)")
	pf.StringVar(&s.flags.rulesFile, "rules", "", "Advisor rules file, .yaml or .toml (overrides EXPENSES_RULES_FILE)")
	pf.StringVar(&s.flags.exportPath, "export", "", "Default CSV report path (overrides EXPENSES_EXPORT_PATH)")
	pf.StringVar(&s.flags.currency, "currency", "", "Currency symbol for display (overrides EXPENSES_CURRENCY)")
	pf.BoolVar(&s.flags.strictDates, "strict-dates", false, "Reject dates not in YYYY-MM-DD form")

	root.AddCommand(
		s.addCmd(),
		s.listCmd(),
		s.deleteCmd(),
		s.deleteAllCmd(),
		s.totalsCmd(),
		s.chartCmd(),
		s.adviceCmd(),
		s.exportCmd(),
		s.rulesCmd(),
	)

	return root, s.close
}

func (s *session) bootstrap(cmd *cobra.Command, _ []string) error {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig(func(c *config.Config) { s.applyFlags(cmd, c) })
	if err != nil {
		return err
	}
	s.logger = cli.SetupLogger(cfg)

	opts, err := app.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	runCtx := applog.WithRunID(cmd.Context(), applog.NewRunID())
	appCtx, cleanup, err := app.New(runCtx, opts, s.logger)
	if err != nil {
		return err
	}

	ctx, stop := cli.NotifyShutdown(runCtx, s.logger, cleanup)
	cmd.SetContext(ctx)
	s.stop = stop
	s.currency = cfg.CurrencySymbol
	s.presenter = presenter.New(appCtx)

	s.logger.DebugContext(ctx, "Started",
		applog.FieldOperation, applog.OpStartup,
		"command", cmd.Name())
	return nil
}

// applyFlags lets explicitly set flags win over the environment.
func (s *session) applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		c.SQLiteDBPath = s.flags.dbPath
	}
	if flags.Changed("backend") {
		c.DataBackend = s.flags.backend
	}
	if flags.Changed("rules") {
		c.RulesFile = s.flags.rulesFile
	}
	if flags.Changed("export") {
		c.ExportPath = s.flags.exportPath
	}
	if flags.Changed("currency") {
		c.CurrencySymbol = s.flags.currency
	}
	if flags.Changed("strict-dates") {
		c.StrictDates = s.flags.strictDates
	}
}

func (s *session) close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

func (s *session) print(text string) {
	fmt.Fprintln(s.out, text)
}

// failed prints the failure and returns it so the process exits non-zero.
func (s *session) failed(f *presenter.Failure) error {
	fmt.Fprintln(s.errOut, failureOutput(f))
	return f
}

func (s *session) addCmd() *cobra.Command {
	var in presenter.AddExpenseInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := s.presenter.AddExpense(cmd.Context(), in)
			if !r.OK {
				return s.failed(r.Failure)
			}
			e := r.Payload.Expense
			s.print(RenderNotice(fmt.Sprintf("Expense #%d added: %s %s on %s",
				e.ID, displayCategory(e.Category), FormatMoney(s.currency, e.Amount), e.Date)))
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Date, "date", time.Now().Format(core.DateLayout), "Expense date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&in.Category, "category", "c", "", "Category, e.g. food")
	cmd.Flags().StringVarP(&in.Amount, "amount", "a", "", "Amount spent")
	cmd.Flags().StringVarP(&in.Description, "description", "m", "", "Free-text note")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (s *session) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all expenses in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := s.presenter.ListExpenses(cmd.Context())
			if !r.OK {
				return s.failed(r.Failure)
			}
			s.print(RenderExpenses(r.Payload, s.currency))
			return nil
		},
	}
}

func (s *session) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := s.presenter.DeleteByID(cmd.Context(), args[0])
			if !r.OK {
				return s.failed(r.Failure)
			}
			s.print(RenderNotice(fmt.Sprintf("Expense ID %d deleted.", r.Payload.ID)))
			return nil
		},
	}
}

func (s *session) deleteAllCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				err := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Delete all expenses?").
						Affirmative("Delete all").
						Negative("Cancel").
						Value(&yes),
				)).RunWithContext(cmd.Context())
				if err != nil && !errors.Is(err, huh.ErrUserAborted) {
					return err
				}
				if !yes {
					s.print(RenderMuted("Nothing deleted."))
					return nil
				}
			}
			r := s.presenter.DeleteAll(cmd.Context())
			if !r.OK {
				return s.failed(r.Failure)
			}
			s.print(RenderNotice(fmt.Sprintf("Deleted %s expenses.", FormatCount(r.Payload.Count))))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (s *session) totalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := s.presenter.CategoryTotals(cmd.Context())
			if !r.OK {
				return s.failed(r.Failure)
			}
			s.print(totalsOutput(r, s.currency))
			return nil
		},
	}
}

func (s *session) chartCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "chart bar|pie",
		Short:     "Chart spending per category",
		ValidArgs: []string{"bar", "pie"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := s.presenter.CategoryTotals(cmd.Context())
			if !r.OK {
				return s.failed(r.Failure)
			}
			if args[0] == "pie" {
				s.print(pieOutput(r))
			} else {
				s.print(barOutput(r, s.currency))
			}
			return nil
		},
	}
}

func (s *session) adviceCmd() *cobra.Command {
	var budget string
	cmd := &cobra.Command{
		Use:   "advice",
		Short: "Compare category shares against the advisor thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if cmd.Flags().Changed("budget") {
				if r := s.presenter.SetBudget(ctx, budget); !r.OK {
					return s.failed(r.Failure)
				}
			}
			summary := s.presenter.Summary(ctx)
			if !summary.OK {
				return s.failed(summary.Failure)
			}
			s.print(RenderSummary(summary.Payload, s.currency))

			r := s.presenter.BudgetAdvice(ctx)
			if !r.OK {
				return s.failed(r.Failure)
			}
			s.print(adviceOutput(r))
			return nil
		},
	}
	cmd.Flags().StringVar(&budget, "budget", "", "Monthly budget to show remaining spend against")
	return cmd
}

func (s *session) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write all expenses to a CSV report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			r := s.presenter.ExportCSV(cmd.Context(), path)
			if !r.OK {
				return s.failed(r.Failure)
			}
			s.print(exportOutput(r))
			return nil
		},
	}
}

func (s *session) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the active advisor thresholds",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s.print(RenderRules(s.presenter.Rules()))
			return nil
		},
	}
}
