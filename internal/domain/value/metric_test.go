package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pet_market/internal/domain/value"
)

func TestMetricUnmarshalJSON(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		input   string
		numeric bool
		number  float64
		text    string
	}{
		{name: "Integer", input: `1500`, numeric: true, number: 1500, text: "1500"},
		{name: "Fractional", input: ` 12.75 `, numeric: true, number: 12.75, text: "12.75"},
		{name: "Placeholder string", input: `"N/A"`, text: "N/A"},
		{name: "Null", input: `null`, text: value.Placeholder},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var m value.Metric

			rq.NoError(m.UnmarshalJSON([]byte(tc.input)))
			rq.Equal(tc.numeric, m.IsNumeric())
			rq.Equal(tc.text, m.String())

			v, ok := m.Float()
			rq.Equal(tc.numeric, ok)
			rq.InDelta(tc.number, v, 1e-9)
		})
	}

	var m value.Metric
	rq.Error(m.UnmarshalJSON([]byte(`{}`)))
}

func TestMetricMarshalJSON(t *testing.T) {
	rq := require.New(t)

	data, err := value.NewMetric(2.5).MarshalJSON()
	rq.NoError(err)
	rq.Equal(`2.5`, string(data))

	data, err = value.PlaceholderMetric("N/A").MarshalJSON()
	rq.NoError(err)
	rq.Equal(`"N/A"`, string(data))
}

func TestParseSkill(t *testing.T) {
	rq := require.New(t)

	skill, err := value.ParseSkill(" mining ")
	rq.NoError(err)
	rq.Equal(value.SkillMining, skill)

	skill, err = value.ParseSkill("all")
	rq.NoError(err)
	rq.Equal(value.SkillAll, skill)

	_, err = value.ParseSkill("Cooking")
	rq.Error(err)

	rq.True(value.SkillAll.Matches(value.SkillFishing))
	rq.True(value.SkillFishing.Matches(value.SkillFishing))
	rq.False(value.SkillCombat.Matches(value.SkillFishing))
}

func TestParseSortField(t *testing.T) {
	rq := require.New(t)

	f, err := value.ParseSortField("coins_per_xp")
	rq.NoError(err)
	rq.Equal(value.SortByCoinsPerXP, f)

	_, err = value.ParseSortField("name")
	rq.Error(err)

	rq.Equal(value.SortByProfit, value.SortFields()[0])
}
