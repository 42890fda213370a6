package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestStageTimer(t *testing.T) {
	var buf bytes.Buffer
	timer := newStageTimer(newLogger(&buf, log.DebugLevel))
	time.Sleep(5 * time.Millisecond)
	timer.lap("read")
	timer.lap("write")
	timer.done("render complete")

	out := buf.String()
	for _, want := range []string{"render complete", "read=", "write=", "total=", "ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("timer output %q should contain %q", out, want)
		}
	}
}

func TestStageTimerQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	timer := newStageTimer(newLogger(&buf, log.InfoLevel))
	timer.lap("read")
	timer.done("render complete")
	if buf.Len() != 0 {
		t.Errorf("timer logged at info level: %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}
