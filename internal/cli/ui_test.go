package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/blockrender/pkg/pipeline"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 blocks"},
		{1, "1 block"},
		{12, "12 blocks"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "block"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := humanBytes(tt.n); got != tt.want {
			t.Errorf("humanBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSummary(t *testing.T) {
	res := &pipeline.Result{
		Scene: &workspace.Scene{Width: 240, Height: 96.4},
		Stats: pipeline.Stats{
			BlockCount: 3,
			StackCount: 1,
			ParseTime:  1200 * time.Microsecond,
			LayoutTime: 2 * time.Millisecond,
		},
	}

	var buf bytes.Buffer
	newConsole(&buf).summary(res)
	out := buf.String()
	for _, want := range []string{"3 blocks", "1 stack", "240×96 px", "fresh", "parse 1ms", "layout 2ms", "render 0s"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q should contain %q", out, want)
		}
	}

	res.CacheInfo.RenderHit = true
	buf.Reset()
	newConsole(&buf).summary(res)
	out = buf.String()
	if !strings.Contains(out, "cached") {
		t.Errorf("cached summary %q should say so", out)
	}
	if strings.Contains(out, "parse") {
		t.Errorf("cached summary %q should omit stage timings", out)
	}
}

func TestConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	ui := newConsole(&buf)
	ui.ok("Rendered %s", "a.yaml")
	ui.artifact("out/a.svg", 2048)
	ui.field("Cache", "redis")

	out := buf.String()
	for _, want := range []string{"✓ Rendered a.yaml", "out/a.svg", "2.0 KiB", "Cache", "redis"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output %q should contain %q", out, want)
		}
	}
}
