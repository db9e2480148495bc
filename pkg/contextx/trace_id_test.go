package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pet_market/pkg/contextx"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	generated := contextx.NewTraceID()
	ctx = contextx.WithTraceID(ctx, generated)

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(generated, traceID)
}

func TestParseTraceID(t *testing.T) {
	generated := contextx.NewTraceID()

	testCases := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "Generated", input: generated.String(), ok: true},
		{name: "Empty", input: "", ok: false},
		{name: "Free text", input: "test-trace-id", ok: false},
		{name: "Log injection", input: "9m4e2mr0ui3e8a215n4g\nlevel=ERROR", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			traceID, ok := contextx.ParseTraceID(tc.input)
			rq.Equal(tc.ok, ok)

			if tc.ok {
				rq.Equal(generated, traceID)
			} else {
				rq.Empty(traceID)
			}
		})
	}
}
