package middlewarex

import (
	"net/http"

	"pet_market/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID reuses a well-formed incoming X-Trace-Id and generates one otherwise.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
