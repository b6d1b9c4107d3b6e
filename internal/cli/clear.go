package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/brandonbloom/later/internal/store"
)

func runClear(ctx context.Context, out io.Writer, p palette, tasks *store.Store) error {
	if err := withTraceRegionErr(ctx, "store.clear", tasks.Clear); err != nil {
		return err
	}
	fmt.Fprintln(out, p.good("Cleared tasks."))
	return nil
}
