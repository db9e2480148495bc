package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet_market/internal/domain"
	"pet_market/internal/domain/value"
	"pet_market/internal/infrastructure/backend"
	"pet_market/pkg/errcodes"
	"pet_market/pkg/httpx"
)

const analyzeResponse = `[
	{
		"name": "Golden Dragon",
		"rarity": "LEGENDARY",
		"profit": 1500000,
		"profit_without_tax": 1800000,
		"coins_per_xp": 0.25,
		"coins_per_xp_note": " /4 because its not a Mining Pet",
		"low_price": 700000000,
		"high_price": 1050000000,
		"low_uuid": "low-1",
		"high_uuid": "high-1",
		"skill": "Combat",
		"low_day_avg": 690000000,
		"low_week_avg": null,
		"high_day_avg": 1000000000,
		"high_week_avg": "N/A"
	},
	{
		"name": "Rock",
		"tier": "epic",
		"profit": 300,
		"coins_per_xp": 0.01,
		"coins_per_xp_note": null,
		"skill": "Mining",
		"low_uuid": null,
		"high_uuid": "high-2"
	}
]`

func newServer(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := &http.Client{Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport)}

	return backend.NewClient(srv.URL+"/", backend.WithHTTPClient(httpClient))
}

func TestAnalyze(t *testing.T) {
	rq := require.New(t)

	var gotSkill, gotContentType string

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal(http.MethodPost, r.Method)
		rq.Equal("/analyze", r.URL.Path)

		gotContentType = r.Header.Get("Content-Type")
		gotSkill = r.FormValue("skill")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(analyzeResponse))
	})

	items, err := client.Analyze(context.Background(), value.SkillMining)
	rq.NoError(err)
	rq.Equal("Mining", gotSkill)
	rq.Equal("application/x-www-form-urlencoded", gotContentType)
	rq.Len(items, 2)

	dragon := items[0]
	rq.Equal("Golden Dragon", dragon.Name)
	rq.Equal(value.RarityLegendary, dragon.Rarity)
	rq.Equal(value.SkillCombat, dragon.Skill)
	rq.Equal("/4 because its not a Mining Pet", dragon.CoinsPerXPNote)
	rq.Equal("high-1", dragon.HighUUID)
	rq.False(dragon.LowWeekAvg.IsNumeric())
	rq.Equal(value.Placeholder, dragon.LowWeekAvg.String())
	rq.Equal("N/A", dragon.HighWeekAvg.String())

	profit, ok := dragon.Profit.Float()
	rq.True(ok)
	rq.InDelta(1_500_000, profit, 0)

	rock := items[1]
	rq.Equal(value.RarityEpic, rock.Rarity)
	rq.Empty(rock.CoinsPerXPNote)
	rq.Empty(rock.LowUUID)
}

func TestSearch(t *testing.T) {
	rq := require.New(t)

	var gotTerm, gotSkill string

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/search", r.URL.Path)

		gotTerm = r.FormValue("search_term")
		gotSkill = r.FormValue("skill")

		_, _ = w.Write([]byte(`[]`))
	})

	items, err := client.Search(context.Background(), "dragon", value.SkillAll)
	rq.NoError(err)
	rq.Empty(items)
	rq.Equal("dragon", gotTerm)
	rq.Equal("All", gotSkill)
}

func TestFetchFailures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "Malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"not":"a list"`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			client := newServer(t, tc.handler)

			_, err := client.Analyze(context.Background(), value.SkillAll)
			rq.Error(err)
			rq.True(domain.HasCode(err, errcodes.FetchFailed))

			_, err = client.Status(context.Background())
			rq.Error(err)
			rq.True(domain.HasCode(err, errcodes.FetchFailed))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := backend.NewClient(srv.URL).Analyze(context.Background(), value.SkillAll)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.FetchFailed))
}

func TestStatus(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)

	testCases := []struct {
		name     string
		body     string
		last     *time.Time
		next     time.Time
		hasError bool
	}{
		{
			name: "Naive isoformat with microseconds",
			body: `{"last_update":"2024-05-01T12:00:00.123456","next_update":"2024-05-01T12:05:00.123456"}`,
			last: ptr(time.Date(2024, 5, 1, 12, 0, 0, 123456000, loc)),
			next: time.Date(2024, 5, 1, 12, 5, 0, 123456000, loc),
		},
		{
			name: "No last update",
			body: `{"last_update":null,"next_update":"2024-05-01T12:05:00"}`,
			next: time.Date(2024, 5, 1, 12, 5, 0, 0, loc),
		},
		{
			name: "Zoned timestamps",
			body: `{"last_update":"2024-05-01T09:00:00Z","next_update":"2024-05-01T09:05:00Z"}`,
			last: ptr(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
			next: time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC),
		},
		{
			name:     "Garbage timestamp",
			body:     `{"last_update":"yesterday","next_update":"2024-05-01T12:05:00"}`,
			hasError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				rq.Equal(http.MethodGet, r.Method)
				rq.Equal("/timer", r.URL.Path)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := backend.NewClient(srv.URL,
				backend.WithPaths("", "", "/timer"),
				backend.WithLocation(loc),
			)

			status, err := client.Status(context.Background())
			if tc.hasError {
				rq.Error(err)
				rq.True(domain.HasCode(err, errcodes.FetchFailed))

				return
			}

			rq.NoError(err)
			rq.True(tc.next.Equal(status.NextUpdate), "next: %s", status.NextUpdate)

			if tc.last == nil {
				rq.Nil(status.LastUpdate)
			} else {
				rq.NotNil(status.LastUpdate)
				rq.True(tc.last.Equal(*status.LastUpdate), "last: %s", *status.LastUpdate)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
