package repositories

import (
	"testing"

	"devstudio_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReviewFixtures(t *testing.T, repo ReviewRepository, userRepo UserRepository, projectRepo ProjectRepository) (*models.User, *models.Project) {
	t.Helper()

	client := newTestUser("Client", "client@test.com")
	require.NoError(t, userRepo.Create(client))

	project := &models.Project{
		ProjectName:    "Corporate site",
		ProjectType:    "website",
		BudgetRange:    "1k_5k",
		ProjectDetails: "Details",
		Status:         models.ProjectStatusCompleted,
		RequestedByID:  client.ID,
	}
	require.NoError(t, projectRepo.Create(project))
	return client, project
}

func TestReviewRepository_CreateAndModerate(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	client, project := seedReviewFixtures(t, repo, NewUserRepository(db), NewProjectRepository(db))

	review := &models.Review{
		ClientID:   client.ID,
		ProjectID:  project.ID,
		Rating:     5,
		ReviewText: "Great work, thank you!",
		Status:     models.ReviewStatusPending,
	}
	require.NoError(t, repo.Create(review))

	exists, err := repo.ExistsForProject(client.ID, project.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// До одобрения отзыв не виден публично
	approved, total, err := repo.FindApproved(10, 0)
	require.NoError(t, err)
	assert.Empty(t, approved)
	assert.Zero(t, total)

	require.NoError(t, repo.UpdateStatus(review.ID, models.ReviewStatusApproved))

	approved, total, err = repo.FindApproved(10, 0)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
	assert.EqualValues(t, 1, total)
}

func TestReviewRepository_AverageRating(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	client, project := seedReviewFixtures(t, repo, NewUserRepository(db), NewProjectRepository(db))

	// Пока одобренных нет - нулевой агрегат
	avg, count, err := repo.AverageRating()
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, count)

	reviews := []*models.Review{
		{ClientID: client.ID, ProjectID: project.ID, Rating: 4, ReviewText: "good", Status: models.ReviewStatusApproved},
		{ClientID: client.ID, ProjectID: project.ID, Rating: 5, ReviewText: "great", Status: models.ReviewStatusApproved},
		{ClientID: client.ID, ProjectID: project.ID, Rating: 1, ReviewText: "bad", Status: models.ReviewStatusRejected},
	}
	for _, r := range reviews {
		require.NoError(t, repo.Create(r))
	}

	// Отклоненный отзыв в среднее не входит
	avg, count, err = repo.AverageRating()
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 0.001)
	assert.EqualValues(t, 2, count)
}
