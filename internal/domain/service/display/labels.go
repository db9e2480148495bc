package display

import (
	"fmt"
	"strings"

	"pet_market/pkg/lox"
)

// LevelLabels name the two price tiers of an item.
type LevelLabels struct {
	Low  string
	High string
}

func DefaultLevelLabels() LevelLabels {
	return LevelLabels{Low: "LVL 1", High: "LVL 100"}
}

// DefaultLabelOverrides lists items whose tiers are not levels 1 and 100.
func DefaultLabelOverrides() map[string]LevelLabels {
	return map[string]LevelLabels{
		"Golden Dragon": {Low: "LVL 102", High: "LVL 200"},
	}
}

type labelOverride struct {
	name   string
	labels LevelLabels
}

// ParseLabelOverrides reads "Name=Low/High" entries separated by ";",
// e.g. "Golden Dragon=LVL 102/LVL 200".
func ParseLabelOverrides(s string) (map[string]LevelLabels, error) {
	var entries []string

	for _, entry := range strings.Split(s, ";") {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}

	overrides, err := lox.MapErr(entries, parseLabelOverride)
	if err != nil {
		return nil, err
	}

	result := make(map[string]LevelLabels, len(overrides))
	for _, o := range overrides {
		result[o.name] = o.labels
	}

	return result, nil
}

func parseLabelOverride(entry string) (labelOverride, error) {
	name, labels, ok := strings.Cut(entry, "=")
	if !ok {
		return labelOverride{}, fmt.Errorf("label override %q: missing '='", entry)
	}

	low, high, ok := strings.Cut(labels, "/")
	if !ok {
		return labelOverride{}, fmt.Errorf("label override %q: missing '/'", entry)
	}

	name, low, high = strings.TrimSpace(name), strings.TrimSpace(low), strings.TrimSpace(high)
	if name == "" || low == "" || high == "" {
		return labelOverride{}, fmt.Errorf("label override %q: empty part", entry)
	}

	return labelOverride{name: name, labels: LevelLabels{Low: low, High: high}}, nil
}
