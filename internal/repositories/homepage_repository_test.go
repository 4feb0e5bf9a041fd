package repositories

import (
	"testing"

	"devstudio_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePageRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewHomePageRepository(db)

	_, err := repo.Get()
	assert.ErrorIs(t, err, ErrHomePageNotFound)

	require.NoError(t, repo.Upsert(&models.HomePageHero{
		Headline: "We build software",
		CTAText:  "Get in touch",
	}))

	hero, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "We build software", hero.Headline)

	// Повторный Upsert перезаписывает ту же единственную запись
	require.NoError(t, repo.Upsert(&models.HomePageHero{
		Headline: "We build better software",
	}))

	hero, err = repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "We build better software", hero.Headline)

	var count int64
	require.NoError(t, db.Model(&models.HomePageHero{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
