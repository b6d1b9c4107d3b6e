package cli

import (
	"bytes"
	"testing"

	"github.com/brandonbloom/later/internal/config"
)

func TestRenderTask(t *testing.T) {
	p := newPalette(&bytes.Buffer{}, config.ColorNever)

	cases := []struct {
		name  string
		n     int
		task  string
		width int
		want  string
	}{
		{"noTerminal", 1, "a task far longer than any terminal we pretend to have", 0, "1. a task far longer than any terminal we pretend to have"},
		{"fits", 2, "short", 20, "2. short"},
		{"wraps", 1, "abcdefghijklmnopqrstuvwxyz", 20, "1. abcdefghijklmnopq\n   rstuvwxyz"},
		{"wideIndex", 10, "abcdefghijklmnopqrstuvwxyz", 20, "10. abcdefghijklmnop\n    qrstuvwxyz"},
		{"wideRunes", 1, "日本語のタスクです", 13, "1. 日本語のタ\n   スクです"},
		{"tooNarrowToWrap", 1, "abcdefghijklmnopqrstuvwxyz", 8, "1. abcdefghijklmnopqrstuvwxyz"},
		{"empty", 3, "", 20, "3. "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderTask(p, tc.n, tc.task, tc.width); got != tc.want {
				t.Fatalf("renderTask = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPaletteHonorsMode(t *testing.T) {
	var buf bytes.Buffer
	if got := newPalette(&buf, config.ColorNever).good("ok"); got != "ok" {
		t.Fatalf("never: %q", got)
	}
	if got := newPalette(&buf, config.ColorAuto).good("ok"); got != "ok" {
		t.Fatalf("auto on a buffer: %q", got)
	}
	if got := newPalette(&buf, config.ColorAlways).good("ok"); got == "ok" {
		t.Fatalf("always: expected escape codes")
	}
	if terminalWidth(&buf) != 0 {
		t.Fatalf("terminalWidth of a buffer should be 0")
	}
}
