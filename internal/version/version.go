package version

import (
	"fmt"
	"os/exec"
	"strings"
)

// Set at build time with -ldflags "-X".
var (
	Version = "0.3.0"
	Commit  = "unknown"
	Date    = "unknown"
)

type gitFunc func(args ...string) (string, error)

type Info struct {
	Version string
	Commit  string
	Date    string
}

func (i Info) String() string {
	return fmt.Sprintf("voxwer v%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}

// Current describes the running binary.
func Current() Info {
	return Info{Version: Resolve(), Commit: Commit, Date: Date}
}

// Resolve returns the version, with a git describe suffix when run from a
// checkout whose HEAD is not a release tag.
func Resolve() string {
	return resolveVersion(Version, runGit)
}

func resolveVersion(base string, git gitFunc) string {
	if base == "" {
		base = "0.0.0"
	}

	if suffix := gitSuffix(base, git); suffix != "" {
		return base + "-" + suffix
	}
	return base
}

func gitSuffix(base string, git gitFunc) string {
	if _, err := git("rev-parse", "--git-dir"); err != nil {
		return ""
	}
	if _, err := git("describe", "--tags", "--exact-match"); err == nil {
		return ""
	}

	desc, err := git("describe", "--tags", "--dirty", "--always")
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(desc, "v"+base+"-")
}

func runGit(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
