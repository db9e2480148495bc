package value

import (
	"fmt"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Rarity is an item tier. Tiers are ordered from COMMON to MYTHIC.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
	RarityMythic    Rarity = "MYTHIC"
)

const raritySetDelimiter = ","

// Rarities returns the full tier enum in ordinal order.
func Rarities() []Rarity {
	return []Rarity{
		RarityCommon,
		RarityUncommon,
		RarityRare,
		RarityEpic,
		RarityLegendary,
		RarityMythic,
	}
}

func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsKnown() {
		return "", fmt.Errorf("unknown rarity %q", s)
	}

	return r, nil
}

func (r Rarity) String() string {
	return string(r)
}

func (r Rarity) IsKnown() bool {
	return r.Ordinal() >= 0
}

// Ordinal is the tier position, -1 for tiers outside the enum.
func (r Rarity) Ordinal() int {
	return slices.Index(Rarities(), r)
}

// RaritySet is an immutable set of known rarities. The zero value is empty.
type RaritySet struct {
	members map[Rarity]struct{}
}

// NewRaritySet keeps only known tiers.
func NewRaritySet(rarities ...Rarity) RaritySet {
	members := make(map[Rarity]struct{}, len(rarities))

	for _, r := range rarities {
		if r.IsKnown() {
			members[r] = struct{}{}
		}
	}

	return RaritySet{members: members}
}

func AllRarities() RaritySet {
	return NewRaritySet(Rarities()...)
}

// ParseRaritySet reads a delimited list. Unknown tokens and duplicates are dropped.
func ParseRaritySet(s string) RaritySet {
	var rarities []Rarity

	for _, token := range strings.Split(s, raritySetDelimiter) {
		if r, err := ParseRarity(token); err == nil {
			rarities = append(rarities, r)
		}
	}

	return NewRaritySet(rarities...)
}

func (s RaritySet) Contains(r Rarity) bool {
	_, ok := s.members[r]
	return ok
}

func (s RaritySet) Len() int {
	return len(s.members)
}

func (s RaritySet) IsEmpty() bool {
	return len(s.members) == 0
}

// Toggle returns a copy with r added or removed.
func (s RaritySet) Toggle(r Rarity) RaritySet {
	slice := s.Slice()

	if s.Contains(r) {
		slice = slices.DeleteFunc(slice, func(item Rarity) bool { return item == r })
	} else {
		slice = append(slice, r)
	}

	return NewRaritySet(slice...)
}

// Slice returns the members in ordinal order.
func (s RaritySet) Slice() []Rarity {
	result := make([]Rarity, 0, len(s.members))

	for _, r := range Rarities() {
		if s.Contains(r) {
			result = append(result, r)
		}
	}

	return result
}

func (s RaritySet) Equal(other RaritySet) bool {
	return slices.Equal(s.Slice(), other.Slice())
}

// String is the persisted form, e.g. "COMMON,EPIC".
func (s RaritySet) String() string {
	parts := make([]string, 0, len(s.members))
	for _, r := range s.Slice() {
		parts = append(parts, r.String())
	}

	return strings.Join(parts, raritySetDelimiter)
}

func (s RaritySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *RaritySet) UnmarshalJSON(data []byte) error {
	var rarities []string
	if err := json.Unmarshal(data, &rarities); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	*s = ParseRaritySet(strings.Join(rarities, raritySetDelimiter))

	return nil
}
