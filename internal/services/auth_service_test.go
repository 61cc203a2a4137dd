package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"campushire_backend/internal/models"
	"campushire_backend/internal/services/dto"
	"campushire_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, env *testEnv, username, email, role string) *dto.AuthResponse {
	t.Helper()
	resp, err := env.auth.Register(context.Background(), env.db, &dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secret1",
		College:  "MIT",
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_RegisterIssuesVerifiableToken(t *testing.T) {
	env := newTestEnv(t)

	resp := register(t, env, "alice", "Alice@MIT.edu ", "jobholder")
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@mit.edu", resp.User.Email)
	assert.Equal(t, "jobholder", resp.User.Role)
	assert.False(t, resp.User.IsVerified)

	id, err := env.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.UserID)
	assert.Equal(t, models.UserRoleJobholder, id.Role)
	assert.Equal(t, "MIT", id.College)
	assert.Equal(t, "alice", id.Username)
}

func TestAuthService_RegisterLegacyUserRoleIsStudent(t *testing.T) {
	env := newTestEnv(t)
	resp := register(t, env, "bob", "bob@mit.edu", "user")
	assert.Equal(t, "student", resp.User.Role)
}

func TestAuthService_RegisterRejectsAdminRole(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.Register(context.Background(), env.db, &dto.RegisterRequest{
		Username: "root", Email: "root@mit.edu", Password: "secret1", College: "MIT", Role: "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "alice", "alice@mit.edu", "student")

	tests := []struct {
		name     string
		username string
		email    string
		field    string
	}{
		{"same email", "other", "alice@mit.edu", "email"},
		{"same email different case", "other", "ALICE@mit.edu", "email"},
		{"same username", "alice", "new@mit.edu", "username"},
		{"both taken reports email", "alice", "alice@mit.edu", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(context.Background(), env.db, &dto.RegisterRequest{
				Username: tt.username, Email: tt.email, Password: "secret1", College: "MIT", Role: "student",
			})
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
			assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
			assert.Equal(t, map[string]string{"field": tt.field}, appErr.Details)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	registered := register(t, env, "alice", "alice@mit.edu", "student")
	ctx := context.Background()

	resp, err := env.auth.Login(ctx, env.db, &dto.LoginRequest{Email: "alice@mit.edu", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	_, wrongPassword := env.auth.Login(ctx, env.db, &dto.LoginRequest{Email: "alice@mit.edu", Password: "nope"})
	_, unknownEmail := env.auth.Login(ctx, env.db, &dto.LoginRequest{Email: "ghost@mit.edu", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Me(t *testing.T) {
	env := newTestEnv(t)
	registered := register(t, env, "alice", "alice@mit.edu", "student")

	me, err := env.auth.Me(context.Background(), env.db, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)

	_, err = env.auth.Me(context.Background(), env.db, "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAuthService_RegisterPasswordBounds(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "12345"},
		{"longer than bcrypt limit", strings.Repeat("p", 80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(context.Background(), env.db, &dto.RegisterRequest{
				Username: "bob", Email: "bob@mit.edu", Password: tt.password, College: "MIT", Role: "student",
			})
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
			assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
			assert.Contains(t, appErr.Details, "password")
		})
	}

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestAuthService_RegisterRejectsBlankCollege(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), env.db, &dto.RegisterRequest{
		Username: "bob", Email: "bob@mit.edu", Password: "secret1", College: "   ", Role: "student",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Details, "college")
}
