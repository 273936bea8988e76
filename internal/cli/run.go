package cli

import (
	"fmt"
	"os"

	"github.com/fmueller/voxwer/internal/config"
	"github.com/fmueller/voxwer/internal/render"
	"github.com/fmueller/voxwer/internal/report"
	"github.com/fmueller/voxwer/internal/tokenize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the suites listed in a manifest",
		Long: "Evaluate the suites listed in a voxwer.yaml manifest. Values in the manifest can be\n" +
			"overridden with VOXWER_* environment variables and command line flags.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runManifest(cmd)
		},
	}

	bindManifestFlags(cmd, app)
	return cmd
}

func (a *appState) runManifest(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	path := config.FindManifest(a.configPath, cwd)
	manifest, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	a.log().Debug("manifest loaded", zap.String("path", manifest.Path), zap.Int("suites", len(manifest.Suites)))

	suites, err := selectSuites(manifest, a.suites)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := render.NewStyles(out, a.colorEnabled(out))
	opts := report.Options{
		Unit:     manifest.TokenUnit(),
		Tokenize: tokenize.Options{StripPunctuation: manifest.StripPunctuation},
		Render: render.Options{
			OnlyBad:            manifest.OnlyBad,
			ElideDeleted:       manifest.ElideDeleted,
			MergeSubstitutions: manifest.MergeSubstitutions,
		},
		Styles:      styles,
		Concurrency: manifest.Concurrency,
		Logger:      a.log(),
	}

	results := make([]report.SuiteResult, 0, len(suites))
	for _, suite := range suites {
		loaded, err := report.ReadSuite(suite)
		if err != nil {
			return err
		}

		outcomes, err := a.evaluate(cmd.Context(), loaded, opts)
		if err != nil {
			return err
		}
		a.log().Info("suite evaluated", zap.String("suite", suite.Name), zap.Int("transcriptions", len(outcomes)))
		results = append(results, report.SuiteResult{Name: suite.Name, Unit: opts.Unit, Outcomes: outcomes})
	}

	return a.writeReport(out, results, styles)
}

func selectSuites(manifest *config.Manifest, names []string) ([]config.Suite, error) {
	if len(names) == 0 {
		return manifest.Suites, nil
	}

	selected := make([]config.Suite, 0, len(names))
	for _, name := range names {
		suite, ok := manifest.Suite(name)
		if !ok {
			return nil, fmt.Errorf("unknown suite %q in %s", name, manifest.Path)
		}
		selected = append(selected, suite)
	}
	return selected, nil
}
