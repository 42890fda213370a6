package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the command logger: "HH:MM:SS.ms" timestamps, prefixed
// with the app name, dropping messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          appName,
		Level:           level,
	})
}

// stageTimer records how long each local step of a command takes, around
// the pipeline's own stage logs. Not safe for concurrent use.
type stageTimer struct {
	logger *log.Logger
	start  time.Time
	last   time.Time
	laps   []any
}

func newStageTimer(l *log.Logger) *stageTimer {
	now := time.Now()
	return &stageTimer{logger: l, start: now, last: now}
}

// lap closes the step that began at the previous lap.
func (s *stageTimer) lap(step string) {
	now := time.Now()
	s.laps = append(s.laps, step, now.Sub(s.last).Round(time.Millisecond))
	s.last = now
}

// done logs msg at debug level with every lap and the total, e.g.
// "render complete read=1ms pipeline=12ms write=0s total=13ms".
func (s *stageTimer) done(msg string) {
	kv := append(s.laps, "total", time.Since(s.start).Round(time.Millisecond))
	s.logger.Debug(msg, kv...)
}
