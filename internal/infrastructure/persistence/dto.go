package persistence

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// snapshotSchema is the on-disk form of the file preference store.
type snapshotSchema struct {
	Version int           `json:"version"`
	Entries []entrySchema `json:"entries"`
}

type entrySchema struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

const snapshotVersion = 1

func newSnapshotSchema(items map[string]cache.Item) snapshotSchema {
	entries := make([]entrySchema, 0, len(items))

	for key, item := range items {
		raw, ok := item.Object.(string)
		if !ok || item.Expiration == 0 {
			continue
		}

		entries = append(entries, entrySchema{
			Key:       key,
			Value:     raw,
			ExpiresAt: time.Unix(0, item.Expiration).UTC(),
		})
	}

	return snapshotSchema{Version: snapshotVersion, Entries: entries}
}

// live returns the entries that have not expired at now.
func (s snapshotSchema) live(now time.Time) []entrySchema {
	result := make([]entrySchema, 0, len(s.Entries))

	for _, e := range s.Entries {
		if e.ExpiresAt.After(now) {
			result = append(result, e)
		}
	}

	return result
}
