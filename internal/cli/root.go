package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fmueller/voxwer/internal/logging"
	"github.com/fmueller/voxwer/internal/render"
	"github.com/fmueller/voxwer/internal/report"
	"github.com/fmueller/voxwer/internal/tokenize"
	"github.com/fmueller/voxwer/internal/version"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

type appState struct {
	verbose            bool
	jsonLogs           bool
	quiet              bool
	noProgress         bool
	noColor            bool
	onlyBad            bool
	elideDeleted       bool
	mergeSubstitutions bool
	unit               string
	stripPunctuation   bool
	format             string
	summary            bool
	concurrency        int
	configPath         string
	suites             []string

	logger *zap.Logger

	evaluateFn func(ctx context.Context, suite report.Suite, opts report.Options) ([]report.Outcome, error)
}

func NewRootCmd() *cobra.Command {
	app := &appState{
		unit:   string(tokenize.UnitWord),
		format: string(report.FormatText),
	}
	app.evaluateFn = report.Evaluate

	cmd := &cobra.Command{
		Use:           "voxwer",
		Short:         "Score transcriptions against a reference text by word error rate",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolve(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.logger = logging.New(logging.Options{
				Verbose: app.verbose,
				JSON:    app.jsonLogs,
				Quiet:   app.quiet,
				Output:  cmd.ErrOrStderr(),
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runManifest(cmd)
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	bindLoggingFlags(cmd, app)
	bindOutputFlags(cmd, app)
	bindRenderFlags(cmd, app)
	bindTokenFlags(cmd, app)
	bindManifestFlags(cmd, app)

	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newCompareCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

func bindLoggingFlags(cmd *cobra.Command, app *appState) {
	cmd.PersistentFlags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.PersistentFlags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging")
	cmd.PersistentFlags().BoolVar(&app.quiet, "quiet", app.quiet, "Only log warnings and errors")
}

func bindOutputFlags(cmd *cobra.Command, app *appState) {
	cmd.PersistentFlags().BoolVar(&app.noProgress, "no-progress", app.noProgress, "Disable progress indicators")
	cmd.PersistentFlags().BoolVar(&app.noColor, "no-color", app.noColor, "Disable colored output")
	cmd.PersistentFlags().StringVar(&app.format, "format", app.format, "Report format: text|json|yaml")
	cmd.PersistentFlags().BoolVar(&app.summary, "summary", app.summary, "Append a summary table to text reports")
}

func bindRenderFlags(cmd *cobra.Command, app *appState) {
	cmd.PersistentFlags().BoolVar(&app.onlyBad, "only-bad", app.onlyBad, "Highlight every error in red and blank out deleted words")
	cmd.PersistentFlags().BoolVar(&app.elideDeleted, "elide-deleted", app.elideDeleted, "Leave deleted words out of the diff entirely")
	cmd.PersistentFlags().BoolVar(&app.mergeSubstitutions, "merge-substitutions", app.mergeSubstitutions, "Show a deleted word followed by an inserted word as one substitution")
}

func bindTokenFlags(cmd *cobra.Command, app *appState) {
	cmd.PersistentFlags().StringVar(&app.unit, "unit", app.unit, "Token unit: word|char")
	cmd.PersistentFlags().BoolVar(&app.stripPunctuation, "strip-punctuation", app.stripPunctuation, "Strip all punctuation, not only commas")
}

func bindManifestFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().StringVar(&app.configPath, "config", app.configPath, "Manifest file (default: ./voxwer.yaml, then the user config directory)")
	cmd.Flags().StringSliceVar(&app.suites, "suite", app.suites, "Only evaluate the named suites")
	cmd.Flags().IntVar(&app.concurrency, "concurrency", app.concurrency, "Parallel alignments per suite; 0 means one per CPU")
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *appState) progressEnabled() bool {
	if a.noProgress {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// colorEnabled reports whether w is a terminal that should get ANSI colors.
func (a *appState) colorEnabled(w io.Writer) bool {
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// reportOptions builds evaluation options from the command line flags.
func (a *appState) reportOptions(w io.Writer) (report.Options, error) {
	unit, err := tokenize.ParseUnit(a.unit)
	if err != nil {
		return report.Options{}, err
	}

	return report.Options{
		Unit:     unit,
		Tokenize: tokenize.Options{StripPunctuation: a.stripPunctuation},
		Render: render.Options{
			OnlyBad:            a.onlyBad,
			ElideDeleted:       a.elideDeleted,
			MergeSubstitutions: a.mergeSubstitutions,
		},
		Styles:      render.NewStyles(w, a.colorEnabled(w)),
		Concurrency: a.concurrency,
		Logger:      a.log(),
	}, nil
}

func (a *appState) evaluate(ctx context.Context, suite report.Suite, opts report.Options) ([]report.Outcome, error) {
	evaluateFn := a.evaluateFn
	if evaluateFn == nil {
		evaluateFn = report.Evaluate
	}

	stopSpinner := startSpinner(a.progressEnabled(), fmt.Sprintf("Aligning %s", suite.Name))
	outcomes, err := evaluateFn(ctx, suite, opts)
	stopSpinner()
	if err != nil {
		return nil, fmt.Errorf("evaluate suite %q: %w", suite.Name, err)
	}

	for _, o := range outcomes {
		if o.Undefined() {
			a.log().Warn("reference is empty; error rate undefined", zap.String("suite", suite.Name), zap.String("transcription", o.Name))
		}
	}
	return outcomes, nil
}

func (a *appState) writeReport(w io.Writer, suites []report.SuiteResult, styles render.Styles) error {
	format, err := report.ParseFormat(a.format)
	if err != nil {
		return err
	}
	return report.Write(w, format, suites, styles, a.summary)
}
