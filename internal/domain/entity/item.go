package entity

import "pet_market/internal/domain/value"

// Item is one ranked row as computed by the backend.
type Item struct {
	Name             string       `json:"name"`
	Rarity           value.Rarity `json:"rarity"`
	Skill            value.Skill  `json:"skill"`
	Profit           value.Metric `json:"profit"`
	ProfitWithoutTax value.Metric `json:"profit_without_tax"`
	CoinsPerXP       value.Metric `json:"coins_per_xp"`
	CoinsPerXPNote   string       `json:"coins_per_xp_note,omitempty"`
	LowPrice         value.Metric `json:"low_price"`
	HighPrice        value.Metric `json:"high_price"`
	LowDayAvg        value.Metric `json:"low_day_avg"`
	LowWeekAvg       value.Metric `json:"low_week_avg"`
	HighDayAvg       value.Metric `json:"high_day_avg"`
	HighWeekAvg      value.Metric `json:"high_week_avg"`
	LowUUID          string       `json:"low_uuid"`
	HighUUID         string       `json:"high_uuid"`
}

// Field returns the metric named by f.
func (i Item) Field(f value.SortField) value.Metric {
	switch f {
	case value.SortByProfit:
		return i.Profit
	case value.SortByProfitWithoutTax:
		return i.ProfitWithoutTax
	case value.SortByCoinsPerXP:
		return i.CoinsPerXP
	case value.SortByLowPrice:
		return i.LowPrice
	case value.SortByHighPrice:
		return i.HighPrice
	case value.SortByLowDayAvg:
		return i.LowDayAvg
	case value.SortByLowWeekAvg:
		return i.LowWeekAvg
	case value.SortByHighDayAvg:
		return i.HighDayAvg
	case value.SortByHighWeekAvg:
		return i.HighWeekAvg
	default:
		return value.PlaceholderMetric(value.Placeholder)
	}
}
