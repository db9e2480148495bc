package display

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"pet_market/internal/domain/value"
)

const (
	copyCommand     = "/viewauction "
	assetPathFormat = "/images/pets/%s.png"
)

//nolint:gochecknoglobals
var (
	million      = decimal.NewFromInt(1_000_000)
	thousand     = decimal.NewFromInt(1_000)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// FormatPrice renders a metric for display. Ratios always get one fractional
// digit; other values are abbreviated with k/m suffixes. Halves round away from zero.
func FormatPrice(m value.Metric, isRatio bool) string {
	v, ok := m.Float()
	if !ok {
		return m.String()
	}

	d := decimal.NewFromFloat(v)

	switch {
	case isRatio:
		return d.StringFixed(1)
	case v >= 1e6:
		return strings.TrimSuffix(d.Div(million).StringFixed(1), ".0") + "m"
	case v >= 1e3:
		return strings.TrimSuffix(d.Div(thousand).StringFixed(1), ".0") + "k"
	default:
		return d.StringFixed(0)
	}
}

// ImageKey is the asset lookup key: lower-case with whitespace runs as "_".
func ImageKey(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

func AssetPath(imageKey string) string {
	return fmt.Sprintf(assetPathFormat, imageKey)
}

// CopyPayload is the clipboard text that opens an auction in game.
func CopyPayload(uuid string) string {
	return copyCommand + uuid
}
