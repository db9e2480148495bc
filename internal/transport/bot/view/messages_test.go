package view_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"pet_market/internal/domain/entity"
	"pet_market/internal/transport/bot/view"
)

func records(n int) []entity.DisplayRecord {
	result := make([]entity.DisplayRecord, 0, n)
	for i := range n {
		result = append(result, entity.DisplayRecord{Rank: i + 1, Name: fmt.Sprintf("Pet %d", i+1)})
	}

	return result
}

func TestTopPage(t *testing.T) {
	testCases := []struct {
		name         string
		count        int
		page         int
		expectedPage int
		contains     []string
		excludes     []string
	}{
		{name: "First page", count: 12, page: 1, expectedPage: 1, contains: []string{"page 1/3", "Pet 5"}, excludes: []string{"Pet 6"}},
		{name: "Last partial page", count: 12, page: 3, expectedPage: 3, contains: []string{"Pet 11", "Pet 12"}, excludes: []string{"Pet 10<"}},
		{name: "Page past the end", count: 12, page: 9, expectedPage: 3, contains: []string{"page 3/3"}},
		{name: "Empty list", count: 0, page: 1, expectedPage: 1, contains: []string{"page 1/1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			text, page := view.TopPage(records(tc.count), tc.page)
			rq.Equal(tc.expectedPage, page)

			for _, s := range tc.contains {
				rq.Contains(text, s)
			}

			for _, s := range tc.excludes {
				rq.NotContains(text, s)
			}
		})
	}
}

func TestRecordEscapesAndAlerts(t *testing.T) {
	rq := require.New(t)

	text := view.Record(entity.DisplayRecord{
		Rank:             1,
		Name:             "<Dragon>",
		CoinsPerXPNote:   "/4 because its not a Mining Pet",
		Alert:            true,
		DeviationPercent: 7.3,
		High:             entity.PriceTier{Label: "LVL 200", CopyPayload: "/viewauction abc"},
	})

	rq.Contains(text, "&lt;Dragon&gt;")
	rq.Contains(text, "<i>/4 because its not a Mining Pet</i>")
	rq.Contains(text, "+7.3% above")
	rq.Contains(text, "LVL 200")
	rq.Contains(text, "<code>/viewauction abc</code>")
}

func TestCountdown(t *testing.T) {
	rq := require.New(t)

	rq.Equal("⏱ Next update in 1:05", view.Countdown(entity.Countdown{State: entity.ClockCounting, SecondsRemaining: 65}))
	rq.Contains(view.Countdown(entity.Countdown{State: entity.ClockOverdue}), "overdue")
	rq.Contains(view.Countdown(entity.Countdown{}), "unknown")
}

func TestTopCallback(t *testing.T) {
	rq := require.New(t)

	rq.Equal("top_page:3", view.TopCallbackData(3))
	rq.Equal(3, view.ParseTopCallback("top_page:3"))
	rq.Equal(1, view.ParseTopCallback("top_page:x"))
	rq.Equal(1, view.ParseTopCallback("top_page:-2"))
}
