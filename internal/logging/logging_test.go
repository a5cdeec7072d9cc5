package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/modkeeper/modkeeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T, env map[string]string) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.Load()
	return tmp
}

func logDirFor(t *testing.T) string {
	t.Helper()
	return filepath.Join(config.Get("state_dir", ""), "logs")
}

func lastLine(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	data, err := os.ReadFile(filepath.Join(dir, entries[len(entries)-1].Name()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	return lines[len(lines)-1]
}

func TestFromGlobalConfig(t *testing.T) {
	setupTest(t, map[string]string{
		"MODKEEPER_LOGGING_ENABLED":   "true",
		"MODKEEPER_LOGGING_LEVEL":     "warn",
		"MODKEEPER_LOGGING_MAX_FILES": "5",
	})

	cfg := FromGlobalConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, 5, cfg.MaxFiles)
	assert.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	assert.Equal(t, os.Getpid(), cfg.PID)
}

func TestLevelOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		level string
	}{
		{name: "configured level", env: map[string]string{"MODKEEPER_LOGGING_LEVEL": "warn"}, level: "warn"},
		{name: "debug wins", env: map[string]string{"MODKEEPER_LOGGING_LEVEL": "info", "MODKEEPER_DEBUG": "true"}, level: "debug"},
		{name: "debug beats quiet", env: map[string]string{"MODKEEPER_DEBUG": "1", "MODKEEPER_QUIET": "1"}, level: "debug"},
		{name: "quiet lowers to error", env: map[string]string{"MODKEEPER_QUIET": "yes"}, level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTest(t, tt.env)
			assert.Equal(t, tt.level, FromGlobalConfig().Level)
		})
	}
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t, nil)

	dir, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "state", config.AppName, "logs"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLogDirFallback(t *testing.T) {
	tmp := setupTest(t, nil)
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	config.Set("state_dir", filepath.Join(blocker, "state"))

	dir, err := LogDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dir, os.TempDir()))
	assert.True(t, strings.HasSuffix(dir, filepath.Join(config.AppName, "logs")))
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, nopLogger{}, logger)

	logger.Debug("x")
	logger.With("a", 1).Info("x")
	assert.NoError(t, logger.Shutdown())
}

func TestInitCreatesFile(t *testing.T) {
	setupTest(t, map[string]string{"MODKEEPER_LOGGING_ENABLED": "true"})

	cfg := FromGlobalConfig()
	cfg.Command = "language set"
	logger, err := Init(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	entries, err := os.ReadDir(logDirFor(t))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	assert.True(t, strings.HasPrefix(name, "modkeeper_"))
	assert.Contains(t, name, fmt.Sprintf("_PID%d_", os.Getpid()))
	assert.True(t, strings.HasSuffix(name, "_language_set.log"))

	info, err := os.Stat(filepath.Join(logDirFor(t), name))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoggingWritesJSON(t *testing.T) {
	setupTest(t, map[string]string{"MODKEEPER_LOGGING_ENABLED": "true"})

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	logger.Info("selection changed", "old", "en", "new", "fr")
	require.NoError(t, logger.Shutdown())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lastLine(t, logDirFor(t))), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "selection changed", entry["msg"])
	assert.Equal(t, float64(os.Getpid()), entry["pid"])
	assert.Equal(t, "en", entry["old"])
	assert.Equal(t, "fr", entry["new"])
}

func TestLevelFiltering(t *testing.T) {
	setupTest(t, map[string]string{
		"MODKEEPER_LOGGING_ENABLED": "true",
		"MODKEEPER_LOGGING_LEVEL":   "error",
	})

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Error("kept")
	require.NoError(t, logger.Shutdown())

	line := lastLine(t, logDirFor(t))
	assert.Contains(t, line, `"msg":"kept"`)
	assert.NotContains(t, line, "dropped")
}

func TestWithAddsFields(t *testing.T) {
	setupTest(t, map[string]string{"MODKEEPER_LOGGING_ENABLED": "true"})

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	logger.With("component", "viewmodel").Info("activated")
	require.NoError(t, logger.Shutdown())

	assert.Contains(t, lastLine(t, logDirFor(t)), `"component":"viewmodel"`)
}

func TestRedaction(t *testing.T) {
	setupTest(t, map[string]string{"MODKEEPER_LOGGING_ENABLED": "true"})

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	logger.Info("download", "steam_api_key", "abc", "session_token", "xyz", "mod", "ui")
	require.NoError(t, logger.Shutdown())

	line := lastLine(t, logDirFor(t))
	assert.Contains(t, line, `"steam_api_key":"[REDACTED]"`)
	assert.Contains(t, line, `"session_token":"[REDACTED]"`)
	assert.Contains(t, line, `"mod":"ui"`)
}

func TestRedactorSegments(t *testing.T) {
	r := newRedactor()

	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{name: "upper case", in: []any{"PASSWORD", "x"}, want: []any{"PASSWORD", redacted}},
		{name: "dotted", in: []any{"api.token", "x"}, want: []any{"api.token", redacted}},
		{name: "dashed", in: []any{"api-key", "x"}, want: []any{"api-key", redacted}},
		{name: "no separator", in: []any{"apitoken", "x"}, want: []any{"apitoken", "x"}},
		{name: "prefix word", in: []any{"secretary", "x"}, want: []any{"secretary", "x"}},
		{name: "odd length", in: []any{"auth", "x", "tail"}, want: []any{"auth", redacted, "tail"}},
		{name: "non string key", in: []any{1, "x"}, want: []any{1, "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]any(nil), tt.in...)
			assert.Equal(t, tt.want, r.redact(tt.in))
			assert.Equal(t, in, tt.in, "input must not be modified")
		})
	}
	assert.Empty(t, r.redact(nil))
}

func TestRotation(t *testing.T) {
	setupTest(t, map[string]string{
		"MODKEEPER_LOGGING_ENABLED":   "true",
		"MODKEEPER_LOGGING_MAX_FILES": "2",
	})
	dir, err := LogDir()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("modkeeper_20250101_12000%d_PID999_tui.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		stamp := time.Now().Add(-time.Duration(i+1) * time.Hour)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}
	foreign := filepath.Join(dir, "other.log")
	require.NoError(t, os.WriteFile(foreign, nil, 0600))

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	require.NoError(t, logger.Shutdown())

	_, err = os.Stat(filepath.Join(dir, "modkeeper_20250101_120002_PID999_tui.log"))
	assert.True(t, os.IsNotExist(err), "oldest file should be removed")
	_, err = os.Stat(filepath.Join(dir, "modkeeper_20250101_120000_PID999_tui.log"))
	assert.NoError(t, err)
	_, err = os.Stat(foreign)
	assert.NoError(t, err, "files without the prefix are never rotated")
}

func TestGlobalLogger(t *testing.T) {
	setupTest(t, map[string]string{"MODKEEPER_LOGGING_ENABLED": "true"})

	require.NoError(t, InitGlobal())
	defer ShutdownGlobal()
	require.NoError(t, InitGlobal())

	path := CurrentLogFile()
	require.NotEmpty(t, path)
	Component("bus").Warn("handler failed", "event", "ThemeChanged")
	require.NoError(t, ShutdownGlobal())

	assert.Equal(t, "", CurrentLogFile())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"bus"`)
	assert.IsType(t, nopLogger{}, GetGlobal())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, clog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, clog.InfoLevel, parseLevel("info"))
	assert.Equal(t, clog.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, clog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, clog.InfoLevel, parseLevel("verbose"))
}
