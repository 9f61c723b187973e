package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/service"
	"github.com/wellness/portal/internal/infrastructure/crypto"
	"github.com/wellness/portal/internal/infrastructure/config"
	sqlstore "github.com/wellness/portal/internal/infrastructure/db/sql"
	"github.com/wellness/portal/internal/infrastructure/http/handlers"
)

type memorySessions struct {
	mu sync.Mutex
	m  map[string]domain.Session
}

func (s *memorySessions) Save(_ context.Context, sess *domain.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sess.ID] = *sess
	return nil
}

func (s *memorySessions) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *memorySessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

type fixedClassifier int

func (f fixedClassifier) Predict(context.Context, []float64) (int, error) { return int(f), nil }

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	log := zerolog.Nop()
	db, err := sqlstore.Connect(context.Background(), sqlstore.Config{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { sqlstore.Close(db) })

	hasher, err := crypto.New(cfg.Auth.PasswordHasher)
	require.NoError(t, err)

	authSvc := service.NewAuthService(sqlstore.NewAccountRepository(db), hasher, nil,
		service.AuthOptions{StrictLoginShape: cfg.Auth.StrictLoginShape}, log)
	require.NoError(t, authSvc.EnsureAdmin(context.Background(), "root@gmail.com", "Admin123"))

	return NewRouter(Deps{
		Auth:     authSvc,
		Sessions: service.NewSessionService(&memorySessions{m: map[string]domain.Session{}}, nil, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, log),
		Articles: service.NewArticleService(sqlstore.NewArticleRepository(db), nil, log),
		Wellness: service.NewWellnessService(fixedClassifier(2), log),
		Probes:   map[string]handlers.Pinger{"sqlite": sqlstore.Pinger{DB: db}},
		Registry: prometheus.NewRegistry(),
		Log:      log,
	})
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/auth/login", "", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestRouter_LoginChecksCredentialShape(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		body string
		err  error
	}{
		{`{"email":"old@yahoo.com","password":"Abc123"}`, domain.ErrInvalidEmail},
		{`{"email":"old@gmail.com","password":"abc_123"}`, domain.ErrWeakPassword},
		{`{"email":"","password":"Abc123"}`, domain.ErrEmptyField},
	}
	for _, tc := range cases {
		rec := do(e, http.MethodPost, "/auth/login", "", tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.body)
		assert.Equal(t, tc.err.Error(), errorMessage(t, rec), tc.body)
	}

	rec := do(e, http.MethodPost, "/auth/login", "", `{"email":"nobody@gmail.com","password":"Abc123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domain.ErrInvalidCredentials.Error(), errorMessage(t, rec))
}

func TestRouter_SignupLoginLogout(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/auth/signup", "", `{"email":"alice@gmail.com","password":"Abc123","confirm_password":"Abc123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPost, "/auth/signup", "", `{"email":"alice@gmail.com","password":"Abc123","confirm_password":"Abc123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.ErrEmailTaken.Error(), errorMessage(t, rec))

	rec = do(e, http.MethodPost, "/auth/login", "", `{"email":"alice@gmail.com","password":"Wrong123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, e, "alice@gmail.com", "Abc123")

	rec = do(e, http.MethodGet, "/auth/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)

	rec = do(e, http.MethodPost, "/auth/logout", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_SignupErrorMapping(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		body string
		code int
		err  error
	}{
		{`{"email":"","password":"Abc123","confirm_password":"Abc123"}`, http.StatusBadRequest, domain.ErrEmptyField},
		{`{"email":"a@yahoo.com","password":"Abc123","confirm_password":"Abc123"}`, http.StatusBadRequest, domain.ErrInvalidEmail},
		{`{"email":"a@gmail.com","password":"abc","confirm_password":"abc"}`, http.StatusBadRequest, domain.ErrWeakPassword},
		{`{"email":"a@gmail.com","password":"Abc123","confirm_password":"Abc124"}`, http.StatusBadRequest, domain.ErrPasswordMismatch},
		{`{"email":"a@gmail.com","password":"Abc123","confirm_password":"Abc123","role":"admin"}`, http.StatusForbidden, domain.ErrForbiddenRole},
		{`{"email":"a@gmail.com","password":"Abc123","confirm_password":"Abc123","role":"root"}`, http.StatusBadRequest, domain.ErrInvalidRole},
	}
	for _, tc := range cases {
		rec := do(e, http.MethodPost, "/auth/signup", "", tc.body)
		assert.Equal(t, tc.code, rec.Code, tc.body)
		assert.Equal(t, tc.err.Error(), errorMessage(t, rec), tc.body)
	}
}

func TestRouter_AdminArticles(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated,
		do(e, http.MethodPost, "/auth/signup", "", `{"email":"bob@gmail.com","password":"Abc123","confirm_password":"Abc123"}`).Code)

	userToken := login(t, e, "bob@gmail.com", "Abc123")
	adminToken := login(t, e, "root@gmail.com", "Admin123")
	article := `{"title":"Hydrate","description":"Drink water","image_url":"https://img.example/w.png","link":"https://example.org/w"}`

	rec := do(e, http.MethodPost, "/admin/articles", "", article)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/admin/articles", userToken, article)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPost, "/admin/articles", adminToken, article)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(e, http.MethodPost, "/admin/articles", adminToken, `{"title":"Empty"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/articles", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)

	rec = do(e, http.MethodDelete, fmt.Sprintf("/admin/articles/%d", created.ID), userToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodDelete, fmt.Sprintf("/admin/articles/%d", created.ID), adminToken, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodDelete, fmt.Sprintf("/admin/articles/%d", created.ID), adminToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Wellness(t *testing.T) {
	e := newTestServer(t)
	token := login(t, e, "root@gmail.com", "Admin123")

	rec := do(e, http.MethodPost, "/wellness/bmi", "", `{"height_cm":180,"weight_kg":81}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/wellness/bmi", token, `{"height_cm":180,"weight_kg":81}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bmi":25}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/wellness/bmi", token, `{"height_cm":20,"weight_kg":81}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := `{"age":40,"gender":"Male","height_m":1.8,"weight_kg":90,"alcohol":"Sometimes","vegetables":2,
		"main_meals":3,"water_liters":2,"activity_days":1,"tech_hours":2,"snacking":"Sometimes","transport":"Automobile"}`
	rec = do(e, http.MethodPost, "/wellness/obesity", token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"label":"Overweight Level I"`)
}

func TestRouter_Health(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health", "", "").Code)

	rec := do(e, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sqlite"`)
}
