package services

import (
	"context"
	"testing"

	"campushire_backend/internal/services/dto"
	"campushire_backend/internal/testutil"
	"campushire_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateKeepsRoundOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := testutil.CreateJobholder(t, env.db, "MIT")
	outsider := testutil.CreateJobholder(t, env.db, "Stanford")
	job := testutil.CreateJob(t, env.db, owner, "Acme", "10", 0)

	req := &dto.CreateReviewRequest{
		JobID: job.ID,
		Rounds: []dto.RoundRequest{
			{RoundNumber: 2, Experience: "system design"},
			{RoundNumber: 2, Experience: "duplicate number is allowed"},
			{RoundNumber: 1, Experience: "phone screen"},
		},
		OverallExperience: "Tough but fair",
	}

	_, err := env.reviews.CreateReview(ctx, env.db, identityOf(outsider), req)
	assert.ErrorIs(t, err, apperrors.ErrCollegeMismatch)

	review, err := env.reviews.CreateReview(ctx, env.db, identityOf(owner), req)
	require.NoError(t, err)
	require.Len(t, review.Rounds, 3)
	assert.Equal(t, "system design", review.Rounds[0].Experience)
	assert.Equal(t, 1, review.Rounds[2].RoundNumber)

	_, err = env.reviews.CreateReview(ctx, env.db, identityOf(owner), &dto.CreateReviewRequest{JobID: job.ID, OverallExperience: "x"})
	assert.Error(t, err)

	list, err := env.reviews.ListJobReviews(ctx, env.db, job.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := testutil.CreateJobholder(t, env.db, "MIT")
	peer := testutil.CreateJobholder(t, env.db, "MIT")
	job := testutil.CreateJob(t, env.db, owner, "Acme", "10", 0)

	review, err := env.reviews.CreateReview(ctx, env.db, identityOf(owner), &dto.CreateReviewRequest{
		JobID:             job.ID,
		Rounds:            []dto.RoundRequest{{RoundNumber: 1, Experience: "a"}},
		OverallExperience: "meh",
	})
	require.NoError(t, err)

	overall := "great"
	update := &dto.UpdateReviewRequest{
		OverallExperience: &overall,
		Rounds:            []dto.RoundRequest{{RoundNumber: 1, Experience: "x"}, {RoundNumber: 2, Experience: "y"}},
	}

	_, err = env.reviews.UpdateReview(ctx, env.db, identityOf(peer), review.ID, update)
	assert.ErrorIs(t, err, apperrors.ErrOwnership("review"))

	updated, err := env.reviews.UpdateReview(ctx, env.db, identityOf(owner), review.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "great", updated.OverallExperience)
	require.Len(t, updated.Rounds, 2)
	assert.Equal(t, "y", updated.Rounds[1].Experience)

	_, err = env.reviews.UpdateReview(ctx, env.db, identityOf(owner), review.ID, &dto.UpdateReviewRequest{Rounds: []dto.RoundRequest{}})
	assert.Error(t, err)

	assert.ErrorIs(t, env.reviews.DeleteReview(ctx, env.db, identityOf(peer), review.ID), apperrors.ErrOwnership("review"))
	require.NoError(t, env.reviews.DeleteReview(ctx, env.db, identityOf(owner), review.ID))

	_, err = env.reviews.GetReview(ctx, env.db, review.ID)
	assert.ErrorIs(t, err, apperrors.ErrReviewNotFound)
}
