package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type gitStub struct {
	repo     bool
	tagged   bool
	describe string
	descErr  error
}

func (s gitStub) run(args ...string) (string, error) {
	if !s.repo {
		return "", errors.New("not a git repository")
	}
	if args[0] == "rev-parse" {
		return ".git", nil
	}
	for _, a := range args {
		if a == "--exact-match" {
			if s.tagged {
				return "v0.3.0", nil
			}
			return "", errors.New("no tag")
		}
	}
	return s.describe, s.descErr
}

func TestResolveVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		git  gitStub
		want string
	}{
		{name: "tagged release", base: "0.3.0", git: gitStub{repo: true, tagged: true}, want: "0.3.0"},
		{name: "commits after tag", base: "0.3.0", git: gitStub{repo: true, describe: "v0.3.0-3-gabcdef"}, want: "0.3.0-3-gabcdef"},
		{name: "dirty tree", base: "0.3.0", git: gitStub{repo: true, describe: "v0.3.0-3-gabcdef-dirty"}, want: "0.3.0-3-gabcdef-dirty"},
		{name: "no tags", base: "0.3.0", git: gitStub{repo: true, describe: "abcdef"}, want: "0.3.0-abcdef"},
		{name: "describe fails", base: "0.3.0", git: gitStub{repo: true, descErr: errors.New("boom")}, want: "0.3.0"},
		{name: "not a repo", base: "0.3.0", git: gitStub{}, want: "0.3.0"},
		{name: "empty base", base: "", git: gitStub{}, want: "0.0.0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, resolveVersion(tt.base, tt.git.run))
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	info := Info{Version: "0.3.0", Commit: "abc123", Date: "2026-10-01"}
	require.Equal(t, "voxwer v0.3.0 (commit abc123, built 2026-10-01)", info.String())
}
