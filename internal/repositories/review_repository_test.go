package repositories

import (
	"testing"

	"campushire_backend/internal/models"
	"campushire_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReview(jobID, posterID string, rounds ...models.ReviewRound) *models.Review {
	return &models.Review{
		JobID:             jobID,
		OverallExperience: "fine",
		PostedBy:          posterID,
		Rounds:            rounds,
	}
}

func TestReviewRepository_RoundsKeepSubmittedOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReviewRepository()

	owner := testutil.CreateJobholder(t, db, "MIT")
	job := testutil.CreateJob(t, db, owner, "Acme", "10", 0)

	review := newReview(job.ID, owner.ID,
		models.ReviewRound{Position: 0, RoundNumber: 3, Experience: "onsite"},
		models.ReviewRound{Position: 1, RoundNumber: 1, Experience: "phone"},
	)
	require.NoError(t, repo.Create(db, review))

	got, err := repo.FindByID(db, review.ID)
	require.NoError(t, err)
	require.Len(t, got.Rounds, 2)
	assert.Equal(t, 3, got.Rounds[0].RoundNumber)
	assert.Equal(t, 1, got.Rounds[1].RoundNumber)

	_, err = repo.FindByID(db, "missing")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewRepository_UpdateOwnedReplacesRounds(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReviewRepository()

	owner := testutil.CreateJobholder(t, db, "MIT")
	stranger := testutil.CreateJobholder(t, db, "MIT")
	job := testutil.CreateJob(t, db, owner, "Acme", "10", 0)

	review := newReview(job.ID, owner.ID, models.ReviewRound{Position: 0, RoundNumber: 1, Experience: "a"})
	require.NoError(t, repo.Create(db, review))

	rounds := []models.ReviewRound{
		{Position: 0, RoundNumber: 1, Experience: "x"},
		{Position: 1, RoundNumber: 2, Experience: "y"},
	}
	err := repo.UpdateOwned(db, review.ID, stranger.ID, nil, rounds)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	require.NoError(t, repo.UpdateOwned(db, review.ID, owner.ID, map[string]interface{}{"overall_experience": "great"}, rounds))

	got, err := repo.FindByID(db, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "great", got.OverallExperience)
	require.Len(t, got.Rounds, 2)
	assert.Equal(t, "x", got.Rounds[0].Experience)
	assert.Equal(t, "y", got.Rounds[1].Experience)

	// только этапы, без полей
	require.NoError(t, repo.UpdateOwned(db, review.ID, owner.ID, nil, []models.ReviewRound{{RoundNumber: 5, Experience: "z"}}))
	got, err = repo.FindByID(db, review.ID)
	require.NoError(t, err)
	require.Len(t, got.Rounds, 1)
	assert.Equal(t, 5, got.Rounds[0].RoundNumber)
}

func TestReviewAndQuestionRepositories_DeleteByJob(t *testing.T) {
	db := testutil.NewTestDB(t)
	reviews := NewReviewRepository()
	questions := NewQuestionRepository()

	owner := testutil.CreateJobholder(t, db, "MIT")
	job := testutil.CreateJob(t, db, owner, "Acme", "10", 0)
	keep := testutil.CreateJob(t, db, owner, "Globex", "10", 0)

	require.NoError(t, reviews.Create(db, newReview(job.ID, owner.ID, models.ReviewRound{RoundNumber: 1, Experience: "a"})))
	require.NoError(t, reviews.Create(db, newReview(keep.ID, owner.ID, models.ReviewRound{RoundNumber: 1, Experience: "b"})))
	require.NoError(t, questions.Create(db, &models.Question{JobID: job.ID, Type: models.QuestionTypeTechnical, Question: "q", PostedBy: owner.ID}))
	require.NoError(t, questions.Create(db, &models.Question{JobID: keep.ID, Type: models.QuestionTypeTechnical, Question: "q", PostedBy: owner.ID}))

	require.NoError(t, reviews.DeleteByJob(db, job.ID))
	require.NoError(t, questions.DeleteByJob(db, job.ID))

	left, err := reviews.FindByJob(db, job.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	kept, err := reviews.FindByJob(db, keep.ID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Len(t, kept[0].Rounds, 1)

	var rounds int64
	db.Model(&models.ReviewRound{}).Count(&rounds)
	assert.Equal(t, int64(1), rounds)

	qs, err := questions.FindByJob(db, keep.ID)
	require.NoError(t, err)
	assert.Len(t, qs, 1)
}

func TestQuestionRepository_OwnedMutations(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewQuestionRepository()

	owner := testutil.CreateJobholder(t, db, "MIT")
	stranger := testutil.CreateJobholder(t, db, "MIT")
	job := testutil.CreateJob(t, db, owner, "Acme", "10", 0)

	q := &models.Question{JobID: job.ID, Type: models.QuestionTypeTechnical, Question: "What is Go?", PostedBy: owner.ID}
	require.NoError(t, repo.Create(db, q))

	assert.ErrorIs(t, repo.UpdateOwned(db, q.ID, stranger.ID, map[string]interface{}{"answer": "x"}), ErrQuestionNotFound)
	require.NoError(t, repo.UpdateOwned(db, q.ID, owner.ID, map[string]interface{}{"answer": "A language"}))

	got, err := repo.FindByID(db, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "A language", got.Answer)

	assert.ErrorIs(t, repo.DeleteOwned(db, q.ID, stranger.ID), ErrQuestionNotFound)
	require.NoError(t, repo.DeleteOwned(db, q.ID, owner.ID))
	_, err = repo.FindByID(db, q.ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
