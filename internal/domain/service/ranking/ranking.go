// Package ranking narrows a fetched result set with the user's preferences and
// orders what is left.
package ranking

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/value"
)

type indexedItem struct {
	item     entity.Item
	position int
}

// Apply returns the visible items ordered by prefs.SortBy, highest first.
// Equal values keep their fetch order. The input slice is never modified.
func Apply(items []entity.Item, prefs entity.Preferences) []entity.Item {
	visible := lo.FilterMap(items, func(item entity.Item, i int) (indexedItem, bool) {
		return indexedItem{item: item, position: i}, Includes(item, prefs)
	})

	slices.SortFunc(visible, func(a, b indexedItem) int {
		if c := compareDesc(a.item.Field(prefs.SortBy), b.item.Field(prefs.SortBy)); c != 0 {
			return c
		}

		return cmp.Compare(a.position, b.position)
	})

	return lo.Map(visible, func(v indexedItem, _ int) entity.Item {
		return v.item
	})
}

// Includes is the visibility predicate: skill filter and rarity filter must both pass.
func Includes(item entity.Item, prefs entity.Preferences) bool {
	return prefs.PetSkillFilter.Matches(item.Skill) && prefs.ActiveRarities.Contains(item.Rarity)
}

// compareDesc orders numbers descending and placeholders after every number.
func compareDesc(a, b value.Metric) int {
	av, aok := a.Float()
	bv, bok := b.Float()

	switch {
	case aok && bok:
		return cmp.Compare(bv, av)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return 0
	}
}
