package main

import (
	"context"
	"errors"
	"testing"

	"github.com/fmueller/voxwer/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestIsUsageError(t *testing.T) {
	t.Parallel()

	require.True(t, isUsageError(errors.New("unknown command \"bad\" for \"voxwer\"")))
	require.True(t, isUsageError(errors.New("unknown flag: --oops")))
	require.True(t, isUsageError(errors.New("requires at least 2 arg(s), only received 1")))
	require.True(t, isUsageError(errors.New(`required flag(s) "hyp" not set`)))
	require.False(t, isUsageError(errors.New("read reference ref.txt: no such file or directory")))
	require.False(t, isUsageError(nil))
}

func TestHelpHintTarget(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCmd()
	require.Equal(t, "voxwer", helpHintTarget(root, nil))
	require.Equal(t, "voxwer", helpHintTarget(root, []string{"--badflag"}))
	require.Equal(t, "voxwer", helpHintTarget(root, []string{"badcmd"}))
	require.Equal(t, "voxwer compare", helpHintTarget(root, []string{"compare"}))
	require.Equal(t, "voxwer diff", helpHintTarget(root, []string{"diff", "--ref", "a"}))
}

func TestRunExitCodes(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, run(context.Background(), []string{"--no-progress", "diff", "--ref", "a b", "--hyp", "a b", "--format", "json"}))
	require.Equal(t, 1, run(context.Background(), []string{"--no-progress", "diff", "--ref", "a"}))
}
