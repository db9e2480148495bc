package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// TraceID ties together the log lines of one API request or bot update. It is
// also returned to clients as the support id of an error.
type TraceID string

type contextKeyTraceID struct{}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID accepts only ids in the format NewTraceID produces, so a
// client-supplied header cannot inject arbitrary text into the logs.
func ParseTraceID(s string) (TraceID, bool) {
	id, err := xid.FromString(s)
	if err != nil {
		return "", false
	}

	return TraceID(id.String()), true
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
