// Package display turns ordered items into render-ready records.
package display

import (
	"maps"

	"github.com/shopspring/decimal"

	"pet_market/internal/domain/entity"
	"pet_market/pkg/lox"
)

const DefaultAlertThresholdPercent = 5.0

//nolint:gochecknoglobals
var hundred = decimal.NewFromInt(100)

type Deriver struct {
	labels    map[string]LevelLabels
	threshold decimal.Decimal
}

type Option func(*Deriver)

// WithLevelLabels adds or replaces label overrides by exact item name.
func WithLevelLabels(overrides map[string]LevelLabels) Option {
	return func(d *Deriver) {
		maps.Copy(d.labels, overrides)
	}
}

// WithAlertThreshold sets the inclusive deviation percentage that raises an alert.
func WithAlertThreshold(percent float64) Option {
	return func(d *Deriver) {
		d.threshold = decimal.NewFromFloat(percent)
	}
}

func NewDeriver(opts ...Option) *Deriver {
	d := &Deriver{
		labels:    DefaultLabelOverrides(),
		threshold: decimal.NewFromFloat(DefaultAlertThresholdPercent),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Derive builds one record per item; rank is the 1-based position.
func (d *Deriver) Derive(items []entity.Item) []entity.DisplayRecord {
	return lox.MapIndexed(items, func(item entity.Item, i int) entity.DisplayRecord {
		return d.Record(item, i+1)
	})
}

func (d *Deriver) Record(item entity.Item, rank int) entity.DisplayRecord {
	labels := d.Labels(item.Name)
	deviation, ok := Deviation(item)

	record := entity.DisplayRecord{
		Rank:             rank,
		Name:             item.Name,
		Rarity:           item.Rarity,
		Skill:            item.Skill,
		ImageKey:         ImageKey(item.Name),
		Profit:           FormatPrice(item.Profit, false),
		ProfitWithoutTax: FormatPrice(item.ProfitWithoutTax, false),
		CoinsPerXP:       FormatPrice(item.CoinsPerXP, true),
		CoinsPerXPNote:   item.CoinsPerXPNote,
		Low: entity.PriceTier{
			Label:       labels.Low,
			Price:       FormatPrice(item.LowPrice, false),
			DayAvg:      FormatPrice(item.LowDayAvg, false),
			WeekAvg:     FormatPrice(item.LowWeekAvg, false),
			UUID:        item.LowUUID,
			CopyPayload: CopyPayload(item.LowUUID),
		},
		High: entity.PriceTier{
			Label:       labels.High,
			Price:       FormatPrice(item.HighPrice, false),
			DayAvg:      FormatPrice(item.HighDayAvg, false),
			WeekAvg:     FormatPrice(item.HighWeekAvg, false),
			UUID:        item.HighUUID,
			CopyPayload: CopyPayload(item.HighUUID),
		},
	}

	if ok {
		record.DeviationPercent = deviation.Round(2).InexactFloat64()
		record.Alert = deviation.GreaterThanOrEqual(d.threshold)
	}

	return record
}

func (d *Deriver) Labels(name string) LevelLabels {
	if labels, ok := d.labels[name]; ok {
		return labels
	}

	return DefaultLevelLabels()
}

// Deviation is how far the high tier price sits above its 24h average, in percent.
// ok is false when either value is a placeholder or the average is zero.
func Deviation(item entity.Item) (percent decimal.Decimal, ok bool) {
	price, priceOK := item.HighPrice.Float()
	avg, avgOK := item.HighDayAvg.Float()

	if !priceOK || !avgOK || avg == 0 {
		return decimal.Zero, false
	}

	avgDec := decimal.NewFromFloat(avg)

	return decimal.NewFromFloat(price).Sub(avgDec).Div(avgDec).Mul(hundred), true
}
