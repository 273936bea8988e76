package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDirForLinuxWithXDG(t *testing.T) {
	t.Parallel()

	dir, err := DefaultConfigDirFor("linux", "/home/dev", "/tmp/xdg-config")
	require.NoError(t, err)
	require.Equal(t, "/tmp/xdg-config/voxwer", dir)
}

func TestDefaultConfigDirForLinuxWithoutXDG(t *testing.T) {
	t.Parallel()

	dir, err := DefaultConfigDirFor("linux", "/home/dev", "")
	require.NoError(t, err)
	require.Equal(t, "/home/dev/.config/voxwer", dir)
}

func TestDefaultConfigDirForMacOS(t *testing.T) {
	t.Parallel()

	dir, err := DefaultConfigDirFor("darwin", "/Users/dev", "")
	require.NoError(t, err)
	require.Equal(t, "/Users/dev/Library/Application Support/voxwer", dir)
}

func TestDefaultConfigDirForUnsupportedOS(t *testing.T) {
	t.Parallel()

	_, err := DefaultConfigDirFor("windows", "/Users/dev", "")
	require.Error(t, err)
}

func TestDefaultConfigDirRequiresHome(t *testing.T) {
	t.Parallel()

	_, err := DefaultConfigDirFor("linux", "", "")
	require.Error(t, err)
}
