package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultLogPath resolves the platform default location of the Teams log
// file. On Windows this is %APPDATA%\Microsoft\Teams\logs.txt; elsewhere
// the same relative path under the user config directory, which is where
// the Linux and macOS Teams clients keep their logs.
func DefaultLogPath() (string, error) {
	if runtime.GOOS == "windows" {
		appdata := os.Getenv("APPDATA")
		if appdata == "" {
			return "", fmt.Errorf("the APPDATA environment variable is not set; pass --log-path explicitly")
		}
		return filepath.Join(appdata, "Microsoft", "Teams", "logs.txt"), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, "Microsoft", "Teams", "logs.txt"), nil
}
