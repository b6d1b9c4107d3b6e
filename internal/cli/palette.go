package cli

import (
	"io"
	"os"

	"github.com/brandonbloom/later/internal/config"
	"github.com/fatih/color"
	"golang.org/x/term"
)

type palette struct {
	fail   func(a ...interface{}) string
	good   func(a ...interface{}) string
	notice func(a ...interface{}) string
	index  func(a ...interface{}) string
	task   func(a ...interface{}) string
}

func newPalette(w io.Writer, mode string) palette {
	enabled := colorEnabled(w, mode)
	style := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		fail:   style(color.FgRed, color.Bold),
		good:   style(color.FgGreen, color.Bold),
		notice: style(color.FgYellow, color.Bold),
		index:  style(color.FgGreen, color.Bold),
		task:   style(color.FgBlue, color.Bold),
	}
}

func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor && writerIsTerminal(w)
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns 0 when w is not a terminal or its size is unknown.
func terminalWidth(w io.Writer) int {
	if !writerIsTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return 0
	}
	return width
}
