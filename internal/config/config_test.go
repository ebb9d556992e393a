// Package config_test tests configuration loading, merging hierarchy, and
// environment variable overrides.
// Related: internal/config/config.go
// Tags: config, loading, merging, env-vars, json, precedence
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that defaults are applied when no config files
// exist. HOME is isolated so a real ~/.teamswatch/config.json on the
// system cannot leak in. NO t.Parallel() due to env changes.
func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.LogPath)
	assert.Equal(t, 2.0, cfg.PollInterval)
	assert.True(t, cfg.UseToast)
	assert.True(t, cfg.UseSound)
	assert.False(t, cfg.QuietReset)
	assert.Equal(t, 5, cfg.ToastDuration)
}

func TestLoad_LocalOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)

	configPath := filepath.Join(tmpDir, "config.json")
	configContent := `{
		"poll_interval": 0.5,
		"quiet_reset": true,
		"toast_duration": 10
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.PollInterval)
	assert.True(t, cfg.QuietReset)
	assert.Equal(t, 10, cfg.ToastDuration)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.UseToast)
}

func TestLoad_GlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)

	globalDir := filepath.Join(tmpDir, ".teamswatch")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalContent := `{"use_sound": false, "poll_interval": 4}`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(globalContent), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.UseSound)
	assert.Equal(t, 4.0, cfg.PollInterval)
}

// Local config wins over global for the same key.
func TestLoad_LocalBeatsGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)

	globalDir := filepath.Join(tmpDir, ".teamswatch")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"),
		[]byte(`{"poll_interval": 4}`), 0644))

	localPath := filepath.Join(tmpDir, "local.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"poll_interval": 1.5}`), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.PollInterval)
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)
	t.Setenv("TEAMSWATCH_POLL_INTERVAL", "3.5")
	t.Setenv("TEAMSWATCH_USE_TOAST", "false")
	t.Setenv("TEAMSWATCH_LOG_PATH", "/var/log/teams.txt")

	localPath := filepath.Join(tmpDir, "local.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"poll_interval": 9}`), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.PollInterval)
	assert.False(t, cfg.UseToast)
	assert.Equal(t, "/var/log/teams.txt", cfg.LogPath)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := map[string]struct {
		content string
	}{
		"zero poll interval":     {content: `{"poll_interval": 0}`},
		"negative poll interval": {content: `{"poll_interval": -1}`},
		"zero toast duration":    {content: `{"toast_duration": 0}`},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("HOME", tmpDir)
			t.Setenv("USERPROFILE", tmpDir)

			localPath := filepath.Join(tmpDir, "config.json")
			require.NoError(t, os.WriteFile(localPath, []byte(tt.content), 0644))

			_, err := Load(localPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)

	localPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{not json`), 0644))

	_, err := Load(localPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load local config")
}

func TestLoad_ExpandsHomeInLogPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("USERPROFILE", tmpDir)

	localPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"log_path": "~/teams/logs.txt"}`), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "teams", "logs.txt"), cfg.LogPath)
}

func TestPollDuration(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		seconds float64
		want    time.Duration
	}{
		"default two seconds": {seconds: 2.0, want: 2 * time.Second},
		"sub second":          {seconds: 0.5, want: 500 * time.Millisecond},
		"fractional":          {seconds: 1.25, want: 1250 * time.Millisecond},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := Configuration{PollInterval: tt.seconds}
			assert.Equal(t, tt.want, cfg.PollDuration())
		})
	}
}

func TestDefaultLogPath(t *testing.T) {
	path, err := DefaultLogPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("Microsoft", "Teams", "logs.txt")),
		"unexpected default log path %q", path)
}
