package colors

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	require.NoError(t, err)
	*target = w
	defer func() { *target = old }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return buf.String()
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) record(level, msg string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf("%s %s %v", level, msg, args))
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.record("info", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...any) { l.record("error", msg, args...) }

func TestConsoleOutput(t *testing.T) {
	tests := []struct {
		name   string
		target **os.File
		fn     func(...string)
		want   []string
	}{
		{name: "error", target: &os.Stderr, fn: Error, want: []string{"Error:", Red}},
		{name: "warning", target: &os.Stderr, fn: Warning, want: []string{"Warning:", Yellow}},
		{name: "success", target: &os.Stdout, fn: Success, want: []string{checkmark, Green}},
		{name: "info", target: &os.Stdout, fn: Info, want: []string{Blue}},
		{name: "log info", target: &os.Stderr, fn: LogInfo, want: []string{Blue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, tt.target, func() { tt.fn("mod", "installed") })
			assert.Contains(t, output, "mod installed")
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestDebugIsGated(t *testing.T) {
	defer SetDebug(false)

	SetDebug(false)
	output := capture(t, &os.Stderr, func() { Debug("hidden") })
	assert.Empty(t, output)

	SetDebug(true)
	output = capture(t, &os.Stderr, func() { Debug("shown") })
	assert.Contains(t, output, "Debug:")
	assert.Contains(t, output, "shown")
	assert.True(t, DebugEnabled())
}

func TestLoggerMirror(t *testing.T) {
	l := &recordingLogger{}
	SetLogger(l)
	defer SetLogger(nil)

	capture(t, &os.Stderr, func() {
		Warning("stale selection")
		Error("save failed")
	})

	require.Len(t, l.lines, 2)
	assert.Contains(t, l.lines[0], "warn stale selection")
	assert.Contains(t, l.lines[1], "error save failed")
}

func TestStructuredDebugIsGatedByDebugMode(t *testing.T) {
	EnableStructuredLogging()
	defer EnableStructuredLogging()
	defer SetDebug(false)

	SetDebug(false)
	output := capture(t, &os.Stderr, func() {
		StructuredDebug("bus", "publish", "skipped", nil, "", nil)
	})
	assert.Empty(t, output)

	SetDebug(true)
	output = capture(t, &os.Stderr, func() {
		StructuredDebug("bus", "publish", "written", errors.New("boom"), "42", map[string]interface{}{"event": "LocaleChanged"})
	})
	assert.Contains(t, output, `"level":"debug"`)
	assert.Contains(t, output, `"component":"bus"`)
	assert.Contains(t, output, `"error":"boom"`)
	assert.Contains(t, output, `"event":"LocaleChanged"`)
}

func TestStructuredLoggingCanBeDisabled(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)
	DisableStructuredLogging()
	defer EnableStructuredLogging()

	output := capture(t, &os.Stderr, func() {
		StructuredInfo("tui", "start", "ok", nil, "", nil)
	})
	assert.Empty(t, output)
}

func TestStructuredLogMirrorsToLogger(t *testing.T) {
	l := &recordingLogger{}
	SetLogger(l)
	defer SetLogger(nil)

	StructuredWarn("viewmodel", "select", "rejected", nil, "fr", map[string]interface{}{"b": 2, "a": 1})

	require.Len(t, l.lines, 1)
	assert.Contains(t, l.lines[0], "warn viewmodel.select")
	assert.Contains(t, l.lines[0], "id fr a 1 b 2")
}
