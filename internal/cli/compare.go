package cli

import (
	"github.com/fmueller/voxwer/internal/config"
	"github.com/fmueller/voxwer/internal/report"
	"github.com/spf13/cobra"
)

func newCompareCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <reference-file> <transcription-file>...",
		Short: "Compare transcription files against a reference file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := config.Suite{
				Name:      config.NameFromPath(args[0]),
				Reference: args[0],
			}
			for _, path := range args[1:] {
				suite.Transcriptions = append(suite.Transcriptions, config.Transcription{
					Name: config.NameFromPath(path),
					Path: path,
				})
			}

			loaded, err := report.ReadSuite(suite)
			if err != nil {
				return err
			}
			return app.evaluateAndWrite(cmd, loaded)
		},
	}
}

func newDiffCmd(app *appState) *cobra.Command {
	var reference, hypothesis string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare an inline transcription against an inline reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.evaluateAndWrite(cmd, report.Suite{
				Name:      "inline",
				Reference: reference,
				Entries:   []report.Entry{{Name: "hypothesis", Text: hypothesis}},
			})
		},
	}

	cmd.Flags().StringVar(&reference, "ref", "", "Reference text")
	cmd.Flags().StringVar(&hypothesis, "hyp", "", "Transcription text")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("hyp")

	return cmd
}

func (a *appState) evaluateAndWrite(cmd *cobra.Command, suite report.Suite) error {
	out := cmd.OutOrStdout()
	opts, err := a.reportOptions(out)
	if err != nil {
		return err
	}

	outcomes, err := a.evaluate(cmd.Context(), suite, opts)
	if err != nil {
		return err
	}

	return a.writeReport(out, []report.SuiteResult{{Name: suite.Name, Unit: opts.Unit, Outcomes: outcomes}}, opts.Styles)
}
