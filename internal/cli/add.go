package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/brandonbloom/later/internal/store"
)

func runAdd(ctx context.Context, out io.Writer, p palette, tasks *store.Store, task string) error {
	err := withTraceRegionErr(ctx, "store.append", func() error {
		return tasks.Append(task)
	})
	if errors.Is(err, store.ErrMultiline) {
		fmt.Fprintln(out, p.fail("task body should be single-line."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, p.good("Task added!"))
	return nil
}
