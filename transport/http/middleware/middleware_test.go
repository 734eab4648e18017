package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/config"
	"vetclinic/infras/jwt"
	"vetclinic/infras/memstore"
	otelMocks "vetclinic/infras/otel/mocks"
	"vetclinic/permissions"
	"vetclinic/shared/constant"
	"vetclinic/transport/http/middleware"
)

const apiKey = "internal-key"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "vetclinic"
	cfg.App.APIKey = apiKey
	cfg.JWT.AccessSecret = "test-secret"

	return cfg
}

// securedRouter mirrors the /v1 wiring with handlers that echo the caller.
func securedRouter(cfg *config.Config) http.Handler {
	authRole := middleware.NewAuthRoleMiddleware(jwt.New(cfg), otelMocks.NewOtel(), permissions.Get(), cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		w.Header().Set("X-User", user)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(group chi.Router) {
		group.Use(authRole.APIKey)
		group.Use(authRole.Auth)
		group.Use(authRole.RBAC)

		group.Route("/visits", func(visits chi.Router) {
			visits.Get("/", echo)
			visits.Patch("/{id}", echo)
		})
	})

	return router
}

func token(t *testing.T, cfg *config.Config, username, role string, ttl time.Duration) string {
	t.Helper()

	signed, err := jwt.New(cfg).GenerateToken(username, role, ttl)
	require.NoError(t, err)

	return "Bearer " + signed
}

func TestAuthAndRBAC(t *testing.T) {
	cfg := testConfig()
	router := securedRouter(cfg)

	tests := []struct {
		name   string
		method string
		path   string
		header map[string]string
		code   int
		user   string
	}{
		{
			name:   "missing token",
			method: http.MethodGet,
			path:   "/v1/visits/",
			code:   http.StatusUnauthorized,
		},
		{
			name:   "malformed header",
			method: http.MethodGet,
			path:   "/v1/visits/",
			header: map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			code:   http.StatusUnauthorized,
		},
		{
			name:   "client lists visits",
			method: http.MethodGet,
			path:   "/v1/visits/",
			header: map[string]string{constant.RequestHeaderAuthorization: token(t, cfg, "alice", constant.RoleClient, time.Hour)},
			code:   http.StatusOK,
			user:   "alice",
		},
		{
			name:   "client cannot finalize",
			method: http.MethodPatch,
			path:   "/v1/visits/visit-1",
			header: map[string]string{constant.RequestHeaderAuthorization: token(t, cfg, "alice", constant.RoleClient, time.Hour)},
			code:   http.StatusForbidden,
		},
		{
			name:   "vet finalizes",
			method: http.MethodPatch,
			path:   "/v1/visits/visit-1",
			header: map[string]string{constant.RequestHeaderAuthorization: token(t, cfg, "dr.who", constant.RoleVet, time.Hour)},
			code:   http.StatusOK,
			user:   "dr.who",
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/visits/",
			header: map[string]string{constant.RequestHeaderAuthorization: token(t, cfg, "alice", constant.RoleClient, -time.Minute)},
			code:   http.StatusUnauthorized,
		},
		{
			name:   "internal api key",
			method: http.MethodPatch,
			path:   "/v1/visits/visit-1",
			header: map[string]string{constant.RequestHeaderAPIKey: apiKey},
			code:   http.StatusOK,
			user:   constant.SystemUser,
		},
		{
			name:   "wrong api key",
			method: http.MethodPatch,
			path:   "/v1/visits/visit-1",
			header: map[string]string{constant.RequestHeaderAPIKey: "guess"},
			code:   http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				request.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.code, recorder.Code)
			assert.Equal(t, tt.user, recorder.Header().Get("X-User"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, memstore.NewCache())

	router := chi.NewRouter()
	router.Use(app.Tracing)
	router.Use(app.RateLimit())
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	call := func(ip string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		request.Header.Set(constant.RequestHeaderForwardedFor, ip+", 10.0.0.1")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		return recorder
	}

	first := call("203.0.113.7")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	assert.Equal(t, http.StatusNoContent, call("203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, call("203.0.113.7").Code)

	assert.Equal(t, http.StatusNoContent, call("198.51.100.4").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := testConfig()
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, memstore.NewCache())

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for range 5 {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
	}
}

func TestCORS(t *testing.T) {
	cfg := testConfig()
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://clinic.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, memstore.NewCache())

	handler := app.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/v1/visits", nil)
	request.Header.Set("Origin", "https://clinic.example")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "https://clinic.example", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracing_EchoesRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), testConfig(), memstore.NewCache())

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(app.Tracing)
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	request.Header.Set(constant.RequestHeaderRequestID, "req-42")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "req-42", recorder.Header().Get(constant.RequestHeaderRequestID))
}
