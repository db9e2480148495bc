package value

import (
	"fmt"
	"slices"
)

// SortField names a numeric item field the result list can be ordered by.
type SortField string

const (
	SortByProfit           SortField = "profit"
	SortByProfitWithoutTax SortField = "profit_without_tax"
	SortByCoinsPerXP       SortField = "coins_per_xp"
	SortByLowPrice         SortField = "low_price"
	SortByHighPrice        SortField = "high_price"
	SortByLowDayAvg        SortField = "low_day_avg"
	SortByLowWeekAvg       SortField = "low_week_avg"
	SortByHighDayAvg       SortField = "high_day_avg"
	SortByHighWeekAvg      SortField = "high_week_avg"
)

// SortFields lists the options; the first one is the default.
func SortFields() []SortField {
	return []SortField{
		SortByProfit,
		SortByProfitWithoutTax,
		SortByCoinsPerXP,
		SortByLowPrice,
		SortByHighPrice,
		SortByLowDayAvg,
		SortByLowWeekAvg,
		SortByHighDayAvg,
		SortByHighWeekAvg,
	}
}

func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if !slices.Contains(SortFields(), f) {
		return "", fmt.Errorf("unknown sort field %q", s)
	}

	return f, nil
}

func (f SortField) String() string {
	return string(f)
}
