package value

import (
	"bytes"
	"fmt"
	"strconv"
)

// Placeholder stands in for a metric the backend could not compute.
const Placeholder = "N/A"

// Metric is a numeric item field that the backend may replace with a textual
// placeholder. The zero value is the number 0.
type Metric struct {
	number float64
	text   string
	isText bool
}

func NewMetric(v float64) Metric {
	return Metric{number: v}
}

func PlaceholderMetric(text string) Metric {
	return Metric{text: text, isText: true}
}

// Float returns the numeric value; ok is false for placeholders.
func (m Metric) Float() (v float64, ok bool) {
	if m.isText {
		return 0, false
	}

	return m.number, true
}

func (m Metric) IsNumeric() bool {
	return !m.isText
}

func (m Metric) String() string {
	if m.isText {
		return m.text
	}

	return strconv.FormatFloat(m.number, 'f', -1, 64)
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if m.isText {
		return []byte(strconv.Quote(m.text)), nil
	}

	return []byte(strconv.FormatFloat(m.number, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts numbers, strings and null (read as Placeholder).
func (m *Metric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*m = PlaceholderMetric(Placeholder)
	case len(data) > 0 && data[0] == '"':
		text, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("strconv.Unquote: %w", err)
		}

		*m = PlaceholderMetric(text)
	default:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("strconv.ParseFloat: %w", err)
		}

		*m = NewMetric(v)
	}

	return nil
}
