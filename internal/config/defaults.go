package config

// GetDefaults returns the default configuration values. The log path
// defaults to empty because resolving the platform location can fail
// (missing APPDATA on Windows); DefaultLogPath handles it at startup.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log_path":       "",
		"poll_interval":  2.0,
		"use_toast":      true,
		"use_sound":      true,
		"quiet_reset":    false,
		"toast_duration": 5,
	}
}
