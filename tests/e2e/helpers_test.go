//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/avashisht/deardiary-backend/internal/adapter/postgres"
	moodrepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/mood"
	noterepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/note"
	"github.com/avashisht/deardiary-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/token"
	userrepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/user"
	authpkg "github.com/avashisht/deardiary-backend/internal/auth"
	"github.com/avashisht/deardiary-backend/internal/config"
	authsvc "github.com/avashisht/deardiary-backend/internal/service/auth"
	journalsvc "github.com/avashisht/deardiary-backend/internal/service/journal"
	moodsvc "github.com/avashisht/deardiary-backend/internal/service/mood"
	"github.com/avashisht/deardiary-backend/internal/transport/middleware"
	"github.com/avashisht/deardiary-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	noteRepo := noterepo.New(pool)
	moodRepo := moodrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:            "test-secret-at-least-32-chars-long!!",
		JWTIssuer:            "test-issuer",
		AccessTokenTTL:       15 * time.Minute,
		RefreshTokenTTL:      720 * time.Hour,
		VerificationTokenTTL: 48 * time.Hour,
		PasswordHashCost:     4,
		LoginRatePerMinute:   1000,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, txm, jwtMgr, authCfg)
	journalService := journalsvc.NewService(logger, noteRepo, config.JournalConfig{
		MaxNoteLength:   10000,
		MaxNotesPerUser: 10000,
	})
	moodService := moodsvc.NewService(logger, moodRepo)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:  logger,
		Auth:    rest.NewAuthHandler(authService, logger),
		Notes:   rest.NewNoteHandler(journalService, logger),
		Moods:   rest.NewMoodHandler(moodService, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
		AuthSvc: authService,
		Limiter: limiter,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		AuthCfg: authCfg,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a JSON request and returns status + decoded body. A nil body
// sends an empty request; an empty token omits the Authorization header.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// uniqueEmail returns an email unlikely to collide across tests sharing the
// database container.
func uniqueEmail(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
}

// registerVerifyLogin walks a fresh user through the whole onboarding flow
// and returns the access and refresh tokens from the login response.
func registerVerifyLogin(t *testing.T, ts *testServer) (accessToken, refreshToken, email string) {
	t.Helper()

	email = uniqueEmail(t)
	password := "correct horse battery"

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	verificationToken, ok := body["verificationToken"].(string)
	require.True(t, ok, "expected verificationToken in register response")
	require.NotEmpty(t, verificationToken)

	status, body = ts.doJSON(t, http.MethodPost, "/auth/verify", "", map[string]any{
		"token": verificationToken,
	})
	require.Equal(t, http.StatusOK, status, "verify: %v", body)

	status, body = ts.doJSON(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, "login: %v", body)

	accessToken, _ = body["accessToken"].(string)
	refreshToken, _ = body["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken, email
}
