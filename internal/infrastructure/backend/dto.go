package backend

import (
	"fmt"
	"strings"
	"time"

	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/value"
)

// itemSchema is one element of the analyze/search response. Search results
// name the tier "tier", analyze results name it "rarity".
type itemSchema struct {
	Name             string       `json:"name"`
	Rarity           string       `json:"rarity"`
	Tier             string       `json:"tier"`
	Skill            string       `json:"skill"`
	Profit           value.Metric `json:"profit"`
	ProfitWithoutTax value.Metric `json:"profit_without_tax"`
	CoinsPerXP       value.Metric `json:"coins_per_xp"`
	CoinsPerXPNote   *string      `json:"coins_per_xp_note"`
	LowPrice         value.Metric `json:"low_price"`
	HighPrice        value.Metric `json:"high_price"`
	LowDayAvg        value.Metric `json:"low_day_avg"`
	LowWeekAvg       value.Metric `json:"low_week_avg"`
	HighDayAvg       value.Metric `json:"high_day_avg"`
	HighWeekAvg      value.Metric `json:"high_week_avg"`
	LowUUID          *string      `json:"low_uuid"`
	HighUUID         *string      `json:"high_uuid"`
}

func (s itemSchema) toDomain() entity.Item {
	rarity := s.Rarity
	if rarity == "" {
		rarity = s.Tier
	}

	return entity.Item{
		Name:             s.Name,
		Rarity:           value.Rarity(strings.ToUpper(rarity)),
		Skill:            value.Skill(s.Skill),
		Profit:           s.Profit,
		ProfitWithoutTax: s.ProfitWithoutTax,
		CoinsPerXP:       s.CoinsPerXP,
		CoinsPerXPNote:   strings.TrimSpace(deref(s.CoinsPerXPNote)),
		LowPrice:         s.LowPrice,
		HighPrice:        s.HighPrice,
		LowDayAvg:        s.LowDayAvg,
		LowWeekAvg:       s.LowWeekAvg,
		HighDayAvg:       s.HighDayAvg,
		HighWeekAvg:      s.HighWeekAvg,
		LowUUID:          deref(s.LowUUID),
		HighUUID:         deref(s.HighUUID),
	}
}

type statusSchema struct {
	LastUpdate *string `json:"last_update"`
	NextUpdate string  `json:"next_update"`
}

func (s statusSchema) toDomain(loc *time.Location) (entity.Status, error) {
	next, err := parseTimestamp(s.NextUpdate, loc)
	if err != nil {
		return entity.Status{}, fmt.Errorf("next_update: %w", err)
	}

	status := entity.Status{NextUpdate: next}

	if s.LastUpdate != nil && *s.LastUpdate != "" {
		last, err := parseTimestamp(*s.LastUpdate, loc)
		if err != nil {
			return entity.Status{}, fmt.Errorf("last_update: %w", err)
		}

		status.LastUpdate = &last
	}

	return status, nil
}

// isoLocalLayout matches Python's naive isoformat(), with or without microseconds.
const isoLocalLayout = "2006-01-02T15:04:05.999999999"

// parseTimestamp accepts RFC 3339 and zone-less ISO timestamps; the latter are
// read in loc.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(isoLocalLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("time.ParseInLocation: %w", err)
	}

	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
