package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testManifest = `only_bad: true
suites:
  - name: voila
    reference: voilatest/original.txt
    transcriptions:
      - name: Whisper Turbo
        path: voilatest/whisper-turbo.txt
  - name: erdtree
    reference: erdtree/original.txt
    transcriptions:
      - name: Gemini Flash 002
        path: erdtree/flash-002.txt
`

func manifestDir(t *testing.T) string {
	t.Helper()

	return writeFiles(t, map[string]string{
		"voxwer.yaml":                 testManifest,
		"voilatest/original.txt":      "a b c d",
		"voilatest/whisper-turbo.txt": "a x c",
		"erdtree/original.txt":        "rise tarnished",
		"erdtree/flash-002.txt":       "rise tarnished rise",
	})
}

func TestRunCommandEvaluatesAllSuites(t *testing.T) {
	t.Parallel()

	dir := manifestDir(t)
	stdout, _, err := runCommand(t, []string{"run", "--config", filepath.Join(dir, "voxwer.yaml")})
	require.NoError(t, err)

	want := "Transcription Whisper Turbo:\na  x c \nWord Error Rate: 50.00%\n\n" +
		"===================== erdtree =====================\n\n" +
		"Transcription Gemini Flash 002:\nrise tarnished rise\nWord Error Rate: 50.00%\n\n"
	require.Equal(t, want, stdout)
}

func TestRunCommandFlagsOverrideManifest(t *testing.T) {
	t.Parallel()

	dir := manifestDir(t)
	stdout, _, err := runCommand(t, []string{"run", "--config", filepath.Join(dir, "voxwer.yaml"), "--only-bad=false", "--suite", "voila"})
	require.NoError(t, err)
	require.Equal(t, "Transcription Whisper Turbo:\na b x c d\nWord Error Rate: 50.00%\n\n", stdout)
}

func TestRootRunsManifestByDefault(t *testing.T) {
	t.Parallel()

	dir := manifestDir(t)
	stdout, _, err := runCommand(t, []string{"--config", filepath.Join(dir, "voxwer.yaml"), "--suite", "erdtree", "--summary"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "Transcription Gemini Flash 002:\n"), stdout)
	require.Contains(t, stdout, "Gemini Flash 002")
	require.Contains(t, stdout, "50.00%")
	require.NotContains(t, stdout, "Whisper Turbo")
}

func TestRunCommandUnknownSuite(t *testing.T) {
	t.Parallel()

	dir := manifestDir(t)
	_, _, err := runCommand(t, []string{"run", "--config", filepath.Join(dir, "voxwer.yaml"), "--suite", "nope"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown suite "nope"`)
}
