package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/value"
	"pet_market/internal/infrastructure/persistence"
)

func TestResultRepository(t *testing.T) {
	rq := require.New(t)

	repo := persistence.NewResultRepository()
	rq.NotNil(repo.Current())
	rq.Empty(repo.Current())
	rq.Zero(repo.Len())

	items := []entity.Item{
		{Name: "Bee", Rarity: value.RarityCommon, Profit: value.NewMetric(10)},
		{Name: "Rock", Rarity: value.RarityEpic, Profit: value.NewMetric(20)},
	}

	repo.Replace(items)
	items[0].Name = "Changed"

	current := repo.Current()
	rq.Len(current, 2)
	rq.Equal("Bee", current[0].Name)

	current[1].Name = "Changed"
	rq.Equal("Rock", repo.Current()[1].Name)

	repo.Replace(nil)
	rq.Empty(repo.Current())
}
