package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/materializer/internal/config"
	"github.com/footprint-tools/materializer/internal/log"
)

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		opts    Options
		want    bool
	}{
		{"auto on terminal", "auto", Options{IsTerminal: true}, true},
		{"auto off terminal", "auto", Options{}, false},
		{"always off terminal", "always", Options{}, true},
		{"never on terminal", "never", Options{IsTerminal: true}, false},
		{"no-color beats always", "always", Options{NoColor: true}, false},
		{"color beats never", "never", Options{ForceColor: true}, true},
		{"no-color beats color", "auto", Options{NoColor: true, ForceColor: true}, false},
		{"unknown means auto", "sometimes", Options{IsTerminal: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, colorEnabled(tt.setting, tt.opts))
		})
	}
}

func TestPagerOverride(t *testing.T) {
	defaults := config.Defaults()
	require.Empty(t, pagerOverride(Options{}, defaults))

	custom := config.Defaults()
	custom["pager"] = "more"
	require.Equal(t, "more", pagerOverride(Options{}, custom))

	require.Equal(t, "cat", pagerOverride(Options{PagerOverride: "cat"}, custom))
}

func TestNew_LoadsConfig(t *testing.T) {
	t.Setenv("MATERIALIZER_METRIC", "")
	dir := t.TempDir()
	path := filepath.Join(dir, ".materializerrc")
	require.NoError(t, os.WriteFile(path, []byte("metric=rgb\n"), 0600))

	application := New(Options{ConfigPath: path, PagerDisabled: true})

	require.NoError(t, application.LoadErr)
	require.Equal(t, "rgb", application.Values["metric"])
	require.Equal(t, path, application.Config.Path())
	require.NotNil(t, application.Output)
	require.NoError(t, Close(application))
}

func TestNew_BrokenConfigKeepsDefaults(t *testing.T) {
	t.Setenv("MATERIALIZER_METRIC", "")
	path := filepath.Join(t.TempDir(), ".materializerrc")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0600))

	application := New(Options{ConfigPath: path})

	require.Error(t, application.LoadErr)
	require.Equal(t, "ciede2000", application.Values["metric"])
}

func TestNew_EnablesLogging(t *testing.T) {
	t.Setenv("MATERIALIZER_ENABLE_LOG", "true")
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "materializer.log")

	application := New(Options{
		ConfigPath: filepath.Join(dir, ".materializerrc"),
		LogPath:    logPath,
	})
	t.Cleanup(func() { _ = Close(application) })

	require.NotNil(t, log.GetLogger())
	log.Info("hello")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "hello")
}
