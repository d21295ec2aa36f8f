package rest

import (
	"log/slog"
	"net/http"

	"github.com/avashisht/deardiary-backend/internal/config"
	"github.com/avashisht/deardiary-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router needs to assemble the HTTP surface.
type RouterDeps struct {
	Logger  *slog.Logger
	Auth    *AuthHandler
	Notes   *NoteHandler
	Moods   *MoodHandler
	Health  *HealthHandler
	AuthSvc middleware.TokenValidator
	Limiter *middleware.RateLimiter
	CORS    config.CORSConfig
	AuthCfg config.AuthConfig
}

// NewRouter assembles the full HTTP handler: health probes, auth endpoints
// with rate limiting, and the authenticated /api subtree.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	authChain := middleware.Chain(deps.Limiter.Limit(deps.AuthCfg.LoginRatePerMinute))

	mux.Handle("POST /auth/register", authChain(http.HandlerFunc(deps.Auth.Register)))
	mux.Handle("POST /auth/verify", authChain(http.HandlerFunc(deps.Auth.Verify)))
	mux.Handle("POST /auth/login", authChain(http.HandlerFunc(deps.Auth.Login)))
	mux.Handle("POST /auth/refresh", authChain(http.HandlerFunc(deps.Auth.Refresh)))
	mux.Handle("POST /auth/logout", authChain(http.HandlerFunc(deps.Auth.Logout)))

	apiChain := middleware.Chain(middleware.Auth(deps.AuthSvc))

	mux.Handle("POST /api/notes", apiChain(http.HandlerFunc(deps.Notes.Create)))
	mux.Handle("GET /api/notes", apiChain(http.HandlerFunc(deps.Notes.List)))
	mux.Handle("GET /api/notes/{id}", apiChain(http.HandlerFunc(deps.Notes.Get)))
	mux.Handle("PUT /api/notes/{id}", apiChain(http.HandlerFunc(deps.Notes.Update)))
	mux.Handle("DELETE /api/notes/{id}", apiChain(http.HandlerFunc(deps.Notes.Delete)))

	mux.Handle("PUT /api/moods/{date}", apiChain(http.HandlerFunc(deps.Moods.Set)))
	mux.Handle("GET /api/moods", apiChain(http.HandlerFunc(deps.Moods.List)))

	base := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)

	return base(mux)
}
