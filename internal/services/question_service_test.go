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

func TestQuestionService_CreateRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := testutil.CreateJobholder(t, env.db, "MIT")
	outsider := testutil.CreateJobholder(t, env.db, "Stanford")
	student := testutil.CreateStudent(t, env.db, "MIT")
	job := testutil.CreateJob(t, env.db, owner, "Acme", "10", 0)

	req := &dto.CreateQuestionRequest{JobID: job.ID, Type: "non-technical", Question: "Why us?", Answer: "Because"}

	_, err := env.questions.CreateQuestion(ctx, env.db, identityOf(student), req)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = env.questions.CreateQuestion(ctx, env.db, identityOf(outsider), req)
	assert.ErrorIs(t, err, apperrors.ErrCollegeMismatch)

	missing := *req
	missing.JobID = "missing"
	_, err = env.questions.CreateQuestion(ctx, env.db, identityOf(owner), &missing)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	q, err := env.questions.CreateQuestion(ctx, env.db, identityOf(owner), req)
	require.NoError(t, err)
	assert.Equal(t, "non-technical", q.Type)
	assert.Equal(t, owner.ID, q.PostedBy)

	list, err := env.questions.ListJobQuestions(ctx, env.db, job.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	empty, err := env.questions.ListJobQuestions(ctx, env.db, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestQuestionService_UpdateAndDeleteOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := testutil.CreateJobholder(t, env.db, "MIT")
	peer := testutil.CreateJobholder(t, env.db, "MIT")
	admin := testutil.CreateAdmin(t, env.db)
	job := testutil.CreateJob(t, env.db, owner, "Acme", "10", 0)

	q, err := env.questions.CreateQuestion(ctx, env.db, identityOf(peer), &dto.CreateQuestionRequest{
		JobID: job.ID, Type: "technical", Question: "Explain channels",
	})
	require.NoError(t, err)

	answer := "They pass values between goroutines"
	update := &dto.UpdateQuestionRequest{Answer: &answer}

	_, err = env.questions.UpdateQuestion(ctx, env.db, identityOf(owner), q.ID, update)
	assert.ErrorIs(t, err, apperrors.ErrOwnership("question"))

	updated, err := env.questions.UpdateQuestion(ctx, env.db, identityOf(peer), q.ID, update)
	require.NoError(t, err)
	assert.Equal(t, answer, updated.Answer)
	assert.Equal(t, "Explain channels", updated.Question)

	_, err = env.questions.UpdateQuestion(ctx, env.db, identityOf(peer), q.ID, &dto.UpdateQuestionRequest{})
	assert.Error(t, err)

	// админ не владелец - удалить чужой вопрос не может
	assert.ErrorIs(t, env.questions.DeleteQuestion(ctx, env.db, identityOf(admin), q.ID), apperrors.ErrOwnership("question"))
	require.NoError(t, env.questions.DeleteQuestion(ctx, env.db, identityOf(peer), q.ID))
	assert.ErrorIs(t, env.questions.DeleteQuestion(ctx, env.db, identityOf(peer), q.ID), apperrors.ErrQuestionNotFound)
}
