package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "materializer"
	configFileName = ".materializerrc"
	logFileName    = "materializer.log"
)

// AppDataDir returns the application data directory for logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// Falls back to "." when no config directory can be determined.
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// ConfigFilePath returns the path of the user config file, ~/.materializerrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file inside AppDataDir.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}
