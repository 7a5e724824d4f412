package app

import (
	"github.com/footprint-tools/materializer/internal/config"
	"github.com/footprint-tools/materializer/internal/log"
	"github.com/footprint-tools/materializer/internal/paths"
	"github.com/footprint-tools/materializer/internal/ui"
	"github.com/footprint-tools/materializer/internal/ui/style"
)

// Version is overridden at build time with -ldflags "-X ...app.Version=".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	ConfigPath string

	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Style options
	IsTerminal bool
	NoColor    bool
	ForceColor bool

	// LogPath defaults to paths.LogFilePath().
	LogPath string
}

// Application holds the wired dependencies shared by every command.
type Application struct {
	Config *config.Provider
	Values config.Values
	Output *ui.Writer

	// LoadErr is set when the config file could not be read; Values then
	// holds defaults and environment overrides only.
	LoadErr error
}

// DefaultOptions returns options reading the user's config file.
func DefaultOptions() (Options, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return Options{}, err
	}
	return Options{ConfigPath: path}, nil
}

// New creates a new Application with all dependencies wired up. It
// initializes the package-level logger and styles as a side effect.
func New(opts Options) *Application {
	provider := config.NewProvider(opts.ConfigPath)
	values, loadErr := provider.Load()

	if values.Bool("enable_log") {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// Logging is best effort; a broken log path must not block commands.
		_ = log.Init(logPath, log.ParseLevel(values["log_level"]))
	}

	style.Init(colorEnabled(values["color"], opts), values)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if pager := pagerOverride(opts, values); pager != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(pager))
	}

	return &Application{
		Config:  provider,
		Values:  values,
		Output:  ui.NewWriter(writerOpts...),
		LoadErr: loadErr,
	}
}

// colorEnabled applies the "color" setting: --no-color always wins, then
// --color. "always" ignores the terminal check and anything else means auto.
func colorEnabled(setting string, opts Options) bool {
	if opts.NoColor {
		return false
	}
	if opts.ForceColor {
		return true
	}
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return opts.IsTerminal
	}
}

// pagerOverride returns the pager to force: --pager first, then a pager
// configured away from the default. An empty result leaves $PAGER in charge.
func pagerOverride(opts Options, values config.Values) string {
	if opts.PagerOverride != "" {
		return opts.PagerOverride
	}
	if key, ok := config.LookupKey("pager"); ok && values["pager"] != key.Default {
		return values["pager"]
	}
	return ""
}

// Close cleans up application resources.
func Close(_ *Application) error {
	return log.Close()
}
