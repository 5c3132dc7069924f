package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/soaringjerry/ipss-selfcheck/internal/api"
	"github.com/soaringjerry/ipss-selfcheck/internal/config"
	"github.com/soaringjerry/ipss-selfcheck/internal/db"
	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

const userAgent = "ipss-selfcheck/1.0"

// app carries the resolved configuration and logger shared by all commands.
type app struct {
	out io.Writer

	verbose     bool
	configPath  string
	endpoint    string
	pageURL     string
	locale      string
	journalPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ipss",
		Short: "IPSS self-assessment questionnaire",
		Long: `Take the International Prostate Symptom Score (IPSS) self-assessment.

Answer seven questions on a 0–5 scale, optionally rate quality of life (0–6), consent,
and submit your responses to the configured collection endpoint.
Results are not a diagnosis; please consult a healthcare professional.

Run without arguments to open the interactive form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runForm,
	}
	root.SetOut(out)
	root.SetErr(out)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file (or IPSS_CONFIG)")
	pf.StringVar(&a.endpoint, "endpoint", "", "Submission endpoint URL (or IPSS_ENDPOINT)")
	pf.StringVar(&a.pageURL, "page-url", "", "Page address forwarded as page_url; its utm_* query is captured (or IPSS_PAGE_URL)")
	pf.StringVar(&a.locale, "locale", "", "Message locale: en or zh (or IPSS_LOCALE)")
	pf.StringVar(&a.journalPath, "journal", "", "SQLite file journaling submit attempts (or IPSS_JOURNAL)")

	root.AddCommand(
		&cobra.Command{Use: "form", Short: "Open the interactive form", Args: cobra.NoArgs, RunE: a.runForm},
		newSubmitCmd(a),
		newScoreCmd(a),
		newQuestionsCmd(a),
		newJournalCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = a.endpoint
	}
	if flags.Changed("page-url") {
		cfg.PageURL = a.pageURL
	}
	if flags.Changed("locale") {
		cfg.Locale = a.locale
	}
	if flags.Changed("journal") {
		cfg.JournalPath = a.journalPath
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	interactive := cmd.Name() == "form" || cmd == cmd.Root()
	logger, err := buildLogger(cfg, interactive)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// buildLogger writes JSON logs to stderr, or to cfg.LogFile for the interactive form so the
// terminal UI is not disturbed. The form without a log file logs nothing.
func buildLogger(cfg *config.Config, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return zc.Build()
}

// newForm wires the controller to the endpoint client and, when configured, the journal.
func (a *app) newForm(ctx context.Context) (*services.FormController, func(), error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	client := api.NewEndpointClient(a.cfg.Endpoint, a.cfg.Locale, userAgent, api.WithClientLogger(a.logger))
	opts := []services.Option{
		services.WithLocation(services.StaticLocation(a.cfg.ResolvedPageURL())),
		services.WithLocale(a.cfg.Locale),
		services.WithLogger(a.logger),
	}
	closer := func() {}
	if a.cfg.JournalPath != "" {
		journal, err := db.OpenJournal(ctx, a.cfg.JournalPath, a.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open journal: %w", err)
		}
		opts = append(opts, services.WithJournal(journal))
		closer = func() {
			if err := journal.Close(); err != nil {
				a.logger.Warn("close journal", zap.Error(err))
			}
		}
	}
	return services.NewFormController(client, opts...), closer, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
