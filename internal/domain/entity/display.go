package entity

import "pet_market/internal/domain/value"

// DisplayRecord is a render-ready row. It is rebuilt on every pass and never stored.
type DisplayRecord struct {
	Rank     int          `json:"rank"`
	Name     string       `json:"name"`
	Rarity   value.Rarity `json:"rarity"`
	Skill    value.Skill  `json:"skill"`
	ImageKey string       `json:"imageKey"`

	Profit           string `json:"profit"`
	ProfitWithoutTax string `json:"profitWithoutTax"`
	CoinsPerXP       string `json:"coinsPerXp"`
	CoinsPerXPNote   string `json:"coinsPerXpNote,omitempty"`

	Low  PriceTier `json:"low"`
	High PriceTier `json:"high"`

	DeviationPercent float64 `json:"deviationPercent"`
	Alert            bool    `json:"alert"`
}

// PriceTier is one of the two level columns of a record.
type PriceTier struct {
	Label       string `json:"label"`
	Price       string `json:"price"`
	DayAvg      string `json:"dayAvg"`
	WeekAvg     string `json:"weekAvg"`
	UUID        string `json:"uuid"`
	CopyPayload string `json:"copyPayload"`
}
