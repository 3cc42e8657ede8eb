package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored on ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation when the returned func is deferred
// with a pointer to the operation's named error result.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.WarnContext(ctx, "operation failed",
				slog.String("req_id", reqID), slog.String("op", name),
				slog.Int64("dur_ms", dur.Milliseconds()), slog.Any("err", *errp))
			return
		}
		slog.DebugContext(ctx, "operation done",
			slog.String("req_id", reqID), slog.String("op", name),
			slog.Int64("dur_ms", dur.Milliseconds()))
	}
}
