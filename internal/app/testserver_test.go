package app

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"campushire_backend/internal/config"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/services/dto"
	"campushire_backend/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// TestServer - поднятый httptest сервер с in-memory БД и miniredis
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
	Redis  *miniredis.Miniredis
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
	cfg.JWT.Secret = "integration-secret"
	cfg.JWT.TTLHours = 1
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png"}
	cfg.Redis.TTLSeconds = 60
	cfg.FirstAdminEmail = "Root@CampusHire.test"
	cfg.FirstAdminPassword = "admin-password"
	return cfg
}

// NewTestServer создает сервер; первый админ уже заведен
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := testConfig(t)
	db := testutil.NewTestDB(t)
	require.NoError(t, seedFirstAdmin(db, cfg))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store, err := newStorage(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(SetupRouter(cfg, db, rdb, store))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, DB: db, Config: cfg, Redis: mr}
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody = bytes.NewBufferString(b)
		default:
			jsonBody, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonBody)
		}
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendMultipart отправляет форму; image может быть nil
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, filename string, image []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		part, err := w.CreateFormFile("companyImage", filename)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(resBody)
}

// CreateAndLoginUser регистрирует пользователя через API и возвращает токен
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, email, role, college string) (string, *dto.UserResponse) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "password123",
		College:  college,
		Role:     role,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token, auth.User
}

// LoginAdmin входит первым админом из конфига
func LoginAdmin(t *testing.T, ts *TestServer) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@campushire.test",
		Password: ts.Config.FirstAdminPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &auth))
	return auth.Token
}

func decode(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), body)
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func errorOf(t *testing.T, body string) errorBody {
	t.Helper()
	var e errorBody
	decode(t, body, &e)
	return e
}
