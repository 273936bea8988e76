package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	for _, name := range []string{"verbose", "json", "quiet", "no-progress", "no-color", "format", "summary", "only-bad", "elide-deleted", "merge-substitutions", "unit", "strip-punctuation"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing persistent flag %s", name)
	}
	require.Equal(t, "word", cmd.PersistentFlags().Lookup("unit").DefValue)
	require.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
	require.Equal(t, "false", cmd.PersistentFlags().Lookup("only-bad").DefValue)
	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("suite"))
	require.Equal(t, "0", cmd.Flags().Lookup("concurrency").DefValue)
}

func TestRootHelpParsesSuccessfully(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "run")
	require.Contains(t, out.String(), "compare")
	require.Contains(t, out.String(), "diff")
	require.Contains(t, out.String(), "version")
}

func TestSubcommandHelpParsesSuccessfully(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "run", args: []string{"run", "--help"}, contains: "Evaluate the suites listed in a voxwer.yaml manifest"},
		{name: "compare", args: []string{"compare", "--help"}, contains: "Compare transcription files against a reference file"},
		{name: "diff", args: []string{"diff", "--help"}, contains: "Compare an inline transcription"},
		{name: "version", args: []string{"version", "--help"}, contains: "Print the version number"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := NewRootCmd()
			out := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetErr(out)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			require.Contains(t, out.String(), tt.contains)
		})
	}
}
