// Package rest holds the JSON shapes of the local dashboard API.
package rest

type View struct {
	Records     []Record `json:"records"`
	CompactMode bool     `json:"compactMode"`
	Error       string   `json:"error,omitempty"`
}

type Record struct {
	Rank             int       `json:"rank"`
	Name             string    `json:"name"`
	Rarity           string    `json:"rarity"`
	Skill            string    `json:"skill"`
	ImageKey         string    `json:"imageKey"`
	AssetPath        string    `json:"assetPath"`
	Profit           string    `json:"profit"`
	ProfitWithoutTax string    `json:"profitWithoutTax"`
	CoinsPerXP       string    `json:"coinsPerXp"`
	CoinsPerXPNote   string    `json:"coinsPerXpNote,omitempty"`
	Low              PriceTier `json:"low"`
	High             PriceTier `json:"high"`
	DeviationPercent float64   `json:"deviationPercent"`
	Alert            bool      `json:"alert"`
}

type PriceTier struct {
	Label       string `json:"label"`
	Price       string `json:"price"`
	DayAvg      string `json:"dayAvg"`
	WeekAvg     string `json:"weekAvg"`
	UUID        string `json:"uuid"`
	CopyPayload string `json:"copyPayload"`
}

type Preferences struct {
	SelectedSkill  string   `json:"selectedSkill"`
	SortBy         string   `json:"sortBy"`
	PetSkillFilter string   `json:"petSkillFilter"`
	ActiveRarities []string `json:"activeRarities"`
	CompactMode    bool     `json:"compactMode"`
}

// PreferencesPatch changes only the fields that are present.
type PreferencesPatch struct {
	SelectedSkill  *string   `json:"selectedSkill,omitempty" validate:"omitnil,min=1,max=32"`
	SortBy         *string   `json:"sortBy,omitempty" validate:"omitnil,min=1,max=32"`
	PetSkillFilter *string   `json:"petSkillFilter,omitempty" validate:"omitnil,min=1,max=32"`
	ActiveRarities *[]string `json:"activeRarities,omitempty" validate:"omitnil,max=6,dive,min=1,max=16"`
	CompactMode    *bool     `json:"compactMode,omitempty"`
}

type SearchRequest struct {
	SearchTerm string  `json:"searchTerm" validate:"max=100"`
	Skill      *string `json:"skill,omitempty" validate:"omitnil,min=1,max=32"`
}

type CopyRequest struct {
	UUID string `json:"uuid" validate:"required,max=64"`
}

type CopyResponse struct {
	Payload string `json:"payload"`
}

type Countdown struct {
	State            string  `json:"state"`
	LastUpdate       *string `json:"lastUpdate,omitempty"`
	NextUpdate       *string `json:"nextUpdate,omitempty"`
	SecondsRemaining int64   `json:"secondsRemaining"`
	CheckedAt        *string `json:"checkedAt,omitempty"`
}

// Options lists the values the preference fields accept.
type Options struct {
	Skills     []string `json:"skills"`
	SortFields []string `json:"sortFields"`
	Rarities   []string `json:"rarities"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId,omitempty"`
}

type ErrorCode string
