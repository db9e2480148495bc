package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"pet_market/pkg/logx"
)

// RequestLogging dumps every request. Requests to quietPaths are logged at
// debug level; the dashboard renderer polls some endpoints every second.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
	quietPaths ...string,
) func(next http.Handler) http.Handler {
	quiet := newPathSet(quietPaths)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, true)

			if logFieldMaxLen != 0 && len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			logger(ctx).Log(
				ctx,
				quiet.level(r),
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

type pathSet map[string]struct{}

func newPathSet(paths []string) pathSet {
	set := make(pathSet, len(paths))
	for _, path := range paths {
		set[path] = struct{}{}
	}

	return set
}

func (s pathSet) level(r *http.Request) slog.Level {
	if _, ok := s[r.URL.Path]; ok {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
