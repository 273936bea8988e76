package cli

import (
	"fmt"

	"github.com/fmueller/voxwer/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.verbose {
				fmt.Fprintln(cmd.OutOrStdout(), version.Current())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "voxwer v%s\n", version.Resolve())
			return nil
		},
	}
}
