package paths

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_UnderUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	require.Equal(t, filepath.Join("/tmp/xdg-config", "materializer"), AppDataDir())
}

func TestConfigFilePath_UnderHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".materializerrc"), path)
}

func TestLogFilePath_IsUnderAppDataDir(t *testing.T) {
	path := LogFilePath()

	require.Equal(t, "materializer.log", filepath.Base(path))
	require.True(t, strings.HasPrefix(path, AppDataDir()))
	require.NotContains(t, path, "..")
}
