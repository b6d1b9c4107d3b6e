package cli

import (
	"context"
	"runtime/trace"
)

func withTraceRegionErr(ctx context.Context, name string, fn func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var err error
	trace.WithRegion(ctx, name, func() {
		err = fn()
	})
	return err
}
