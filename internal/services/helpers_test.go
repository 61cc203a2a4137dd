package services

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/cache"
	"campushire_backend/internal/email"
	"campushire_backend/internal/models"
	"campushire_backend/internal/repositories"
	"campushire_backend/internal/storage"
	"campushire_backend/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingProvider запоминает отправленные письма
type recordingProvider struct {
	mu   sync.Mutex
	sent []email.Email
	fail error
	done chan struct{}
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{done: make(chan struct{}, 10)}
}

func (p *recordingProvider) Send(e *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer func() { p.done <- struct{}{} }()

	if p.fail != nil {
		return p.fail
	}
	p.sent = append(p.sent, *e)
	return nil
}

func (p *recordingProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	return p.Send(&email.Email{To: to, Subject: subject, Body: templateName})
}

func (p *recordingProvider) Validate() error { return nil }

func (p *recordingProvider) Sent() []email.Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]email.Email(nil), p.sent...)
}

func (p *recordingProvider) waitSent(t *testing.T) {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("email was not sent")
	}
}

type testEnv struct {
	db        *gorm.DB
	store     storage.Storage
	mail      *recordingProvider
	redis     *miniredis.Miniredis
	jobCache  *cache.JobListCache
	tokens    *auth.TokenService
	auth      AuthService
	users     UserService
	jobs      JobService
	questions QuestionService
	reviews   ReviewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewTestDB(t)

	store, err := storage.NewStorage(storage.Config{Type: "local", BasePath: t.TempDir(), BaseURL: "/api/v1/files"})
	require.NoError(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	questionRepo := repositories.NewQuestionRepository()
	reviewRepo := repositories.NewReviewRepository()

	mail := newRecordingProvider()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	jobCache := cache.NewJobListCache(rdb, time.Minute)

	return &testEnv{
		db:        db,
		store:     store,
		mail:      mail,
		redis:     mr,
		jobCache:  jobCache,
		tokens:    tokens,
		auth:      NewAuthService(userRepo, tokens),
		users:     NewUserService(userRepo, NewEmailService(mail, "https://campushire.test/login")),
		jobs:      NewJobService(jobRepo, questionRepo, reviewRepo, store, jobCache, GetDefaultUploadConfig()),
		questions: NewQuestionService(questionRepo, jobRepo),
		reviews:   NewReviewService(reviewRepo, jobRepo),
	}
}

func identityOf(u *models.User) *auth.Identity {
	return &auth.Identity{UserID: u.ID, Role: u.Role, College: u.College, Username: u.Username}
}

// fileHeader собирает multipart.FileHeader так, как его отдал бы gin
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="companyImage"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["companyImage"][0]
}

// pngBytes - настоящая PNG картинка w x h
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}
