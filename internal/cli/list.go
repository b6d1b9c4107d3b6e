package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brandonbloom/later/internal/store"
	"github.com/mattn/go-runewidth"
)

// minWrapWidth is the narrowest text column worth wrapping into.
const minWrapWidth = 10

func runList(ctx context.Context, out io.Writer, p palette, tasks *store.Store, width int) error {
	count := 0
	err := withTraceRegionErr(ctx, "store.list", func() error {
		for task, err := range tasks.Tasks() {
			if err != nil {
				return err
			}
			count++
			fmt.Fprintln(out, renderTask(p, count, task, width))
		}
		return nil
	})
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(out, p.notice("No tasks to print."))
	}
	return nil
}

// renderTask formats one task as "<n>. <text>". When width is positive and
// the line would overflow it, the text wraps with continuation lines
// aligned under the first character of the text.
func renderTask(p palette, n int, task string, width int) string {
	num := strconv.Itoa(n)
	prefix := num + ". "
	avail := width - runewidth.StringWidth(prefix)
	if width <= 0 || avail < minWrapWidth || runewidth.StringWidth(task) <= avail {
		return fmt.Sprintf("%s. %s", p.index(num), p.task(task))
	}

	lines := strings.Split(runewidth.Wrap(task, avail), "\n")
	indent := strings.Repeat(" ", len(prefix))
	var b strings.Builder
	fmt.Fprintf(&b, "%s. %s", p.index(num), p.task(lines[0]))
	for _, line := range lines[1:] {
		fmt.Fprintf(&b, "\n%s%s", indent, p.task(line))
	}
	return b.String()
}
