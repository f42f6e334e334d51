package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"onboarding/internal/adapters/http/health"
	"onboarding/internal/adapters/http/onboarding"
	onboardingMocks "onboarding/internal/adapters/http/onboarding/mocks"
	"onboarding/internal/adapters/i18n"
	"onboarding/internal/adapters/validator"
	"onboarding/internal/config"
	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/validation"
	platformHealth "onboarding/internal/platform/health"
	healthMocks "onboarding/internal/platform/health/mocks"
	"onboarding/internal/platform/logger"
	"onboarding/internal/platform/metrics"
	"onboarding/internal/version"
)

func testHttpConfig() *config.HttpConfig {
	return &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:            "localhost",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     2 * time.Minute,
			ShutdownTimeout: 30 * time.Second,
		},
		RateLimit: config.RateLimitConfig{
			GlobalRequests: 10000,
			GlobalWindow:   time.Minute,
			RequestsPerIP:  1000,
			IPWindow:       time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
			ExposedHeaders: []string{"Content-Language"},
			MaxAge:         86400,
		},
	}
}

type routerFixture struct {
	deps          RouterDependencies
	manager       *onboardingMocks.MockManager
	healthManager *healthMocks.MockManagerInterface
}

// newRouterFixture wires real catalogs, validator and metrics around mocked
// managers.
func newRouterFixture(t testing.TB, cfg *config.HttpConfig) routerFixture {
	t.Helper()
	catalogs, err := i18n.NewEmbedded("es", validation.DefaultPolicy())
	require.NoError(t, err)
	validatorAdapter, err := validator.NewPlaygroundAdapter()
	require.NoError(t, err)
	metricsProvider, err := metrics.NewProvider()
	require.NoError(t, err)

	manager := onboardingMocks.NewMockManager(t)
	healthManager := healthMocks.NewMockManagerInterface(t)

	return routerFixture{
		deps: RouterDependencies{
			Config:   cfg,
			Logger:   logger.NewNop(),
			Catalogs: catalogs,
			OnboardingHandler: onboarding.NewHandler(manager, validatorAdapter, onboarding.Settings{
				Locales:       catalogs.Locales(),
				DefaultLocale: catalogs.Default(),
			}),
			LivenessHandler:  health.NewLivenessHandler("1.0.0"),
			ReadinessHandler: health.NewReadinessHandler(version.BuildInfo{Version: "1.0.0", GitCommit: "abc123"}, healthManager),
			MetricsProvider:  metricsProvider,
		},
		manager:       manager,
		healthManager: healthManager,
	}
}

type RouterTestSuite struct {
	suite.Suite
	fixture routerFixture
	router  http.Handler
}

func (s *RouterTestSuite) SetupTest() {
	s.fixture = newRouterFixture(s.T(), testHttpConfig())
	s.router = NewRouter(s.fixture.deps)
}

func (s *RouterTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) expectHealth(results map[string]platformHealth.CheckResult) {
	s.fixture.healthManager.EXPECT().CheckAll(mock.Anything).Return(results).Once()
}

func (s *RouterTestSuite) TestLiveness() {
	w := s.serve(httptest.NewRequest(http.MethodGet, "/health/live", nil))

	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Equal("application/json", w.Header().Get("Content-Type"))

	var body health.LivenessResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal(health.StatusPass, body.Status)
	s.Assert().Equal("1.0.0", body.Version)
	s.Assert().NotEmpty(body.Uptime)
}

func (s *RouterTestSuite) TestReadiness_Pass() {
	s.expectHealth(map[string]platformHealth.CheckResult{
		"registrations_db": {Status: platformHealth.StatusHealthy, Message: "registration database reachable"},
	})

	w := s.serve(httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	s.Assert().Equal(http.StatusOK, w.Code)

	var body health.ReadinessResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal(health.StatusPass, body.Status)
	s.Assert().Equal("abc123", body.ReleaseID)
	s.Require().Contains(body.Checks, "registrations_db")
	s.Assert().Equal("datastore", body.Checks["registrations_db"][0].ComponentType)
}

func (s *RouterTestSuite) TestReadiness_Fail() {
	s.expectHealth(map[string]platformHealth.CheckResult{
		"registrations_db": {Status: platformHealth.StatusUnhealthy, Error: "dial tcp: i/o timeout"},
	})

	w := s.serve(httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	s.Assert().Equal(http.StatusServiceUnavailable, w.Code)

	var body health.ReadinessResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal(health.StatusFail, body.Status)
	s.Assert().Equal([]string{"Dependency registrations_db is unavailable"}, body.Notes)
}

func (s *RouterTestSuite) TestMetrics() {
	w := s.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Contains(w.Header().Get("Content-Type"), "text/plain")
}

func (s *RouterTestSuite) TestCORS_Preflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/forms", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Accept-Language")

	w := s.serve(req)

	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	s.Assert().Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	s.Assert().Contains(w.Header().Get("Access-Control-Allow-Headers"), "Accept-Language")
}

func (s *RouterTestSuite) TestCORS_ExposesContentLanguage() {
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set("Origin", "https://app.example.com")

	w := s.serve(req)

	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Contains(w.Header().Get("Access-Control-Expose-Headers"), "Content-Language")
}

func (s *RouterTestSuite) TestCORS_RestrictedOrigins() {
	cfg := testHttpConfig()
	cfg.CORS.AllowedOrigins = []string{"https://app.example.com"}
	cfg.CORS.AllowCredentials = true
	s.router = NewRouter(newRouterFixture(s.T(), cfg).deps)

	allowed := httptest.NewRequest(http.MethodOptions, "/api/forms", nil)
	allowed.Header.Set("Origin", "https://app.example.com")
	allowed.Header.Set("Access-Control-Request-Method", http.MethodPost)
	s.Assert().Equal("https://app.example.com", s.serve(allowed).Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodOptions, "/api/forms", nil)
	denied.Header.Set("Origin", "https://evil.example.com")
	denied.Header.Set("Access-Control-Request-Method", http.MethodPost)
	s.Assert().Empty(s.serve(denied).Header().Get("Access-Control-Allow-Origin"))
}

func (s *RouterTestSuite) TestStartForm_NegotiatesLocale() {
	s.fixture.manager.EXPECT().
		StartForm(mock.Anything, form.KindLogin, "en").
		Return(form.New("form-1", form.KindLogin, "en"), nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/forms", strings.NewReader(`{"kind":"login"}`))
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	w := s.serve(req)

	s.Assert().Equal(http.StatusCreated, w.Code)
	s.Assert().Equal("en", w.Header().Get("Content-Language"))

	var view onboarding.FormView
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &view))
	s.Assert().Equal("form-1", view.ID)
	s.Assert().Equal("en", view.Locale)
}

func (s *RouterTestSuite) TestStartForm_RejectsUnknownKind() {
	w := s.serve(httptest.NewRequest(http.MethodPost, "/api/forms", strings.NewReader(`{"kind":"checkout"}`)))

	s.Assert().Equal(http.StatusBadRequest, w.Code)
	s.Assert().Contains(w.Body.String(), "Unknown form kind")
	s.Assert().Contains(w.Body.String(), `"code":"validation_failed"`)
}

func (s *RouterTestSuite) TestGetForm_NotFound() {
	s.fixture.manager.EXPECT().
		GetForm(mock.Anything, "missing").
		Return(nil, form.ErrFormNotFound).
		Once()

	w := s.serve(httptest.NewRequest(http.MethodGet, "/api/forms/missing?lang=es", nil))

	s.Assert().Equal(http.StatusNotFound, w.Code)
	s.Assert().Equal("es", w.Header().Get("Content-Language"))
	s.Assert().JSONEq(`{"error":"Form not found","code":"form_not_found"}`, w.Body.String())
}

func (s *RouterTestSuite) TestSettings() {
	w := s.serve(httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	s.Assert().Equal(http.StatusOK, w.Code)

	var settings onboarding.Settings
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &settings))
	s.Assert().Equal("es", settings.DefaultLocale)
	s.Assert().Contains(settings.Locales, "en")
}

func (s *RouterTestSuite) TestRouting() {
	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"unknown api route", http.MethodGet, "/api/nonexistent", http.StatusNotFound},
		{"root", http.MethodGet, "/", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/health/live", http.StatusMethodNotAllowed},
		{"trailing slash", http.MethodGet, "/health/live/", http.StatusOK},
		{"unknown screen action", http.MethodPost, "/api/screens/nowhere/actions/jump", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Assert().Equal(tt.status, s.serve(httptest.NewRequest(tt.method, tt.path, nil)).Code)
		})
	}
}

func (s *RouterTestSuite) TestMiddleware_RecoversPanics() {
	mux := s.router.(*chi.Mux)
	mux.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	var w *httptest.ResponseRecorder
	s.Require().NotPanics(func() {
		w = s.serve(httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	s.Assert().Equal(http.StatusInternalServerError, w.Code)
}

func (s *RouterTestSuite) TestMiddleware_AssignsRequestID() {
	mux := s.router.(*chi.Mux)
	var requestID string
	mux.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		requestID = middleware.GetReqID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	w := s.serve(httptest.NewRequest(http.MethodGet, "/ping", nil))

	s.Assert().Equal(http.StatusNoContent, w.Code)
	s.Assert().NotEmpty(requestID)
}

func (s *RouterTestSuite) TestRateLimit_PerIP() {
	cfg := testHttpConfig()
	cfg.RateLimit.RequestsPerIP = 1
	cfg.RateLimit.IPWindow = time.Minute
	s.router = NewRouter(newRouterFixture(s.T(), cfg).deps)

	first := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	first.RemoteAddr = "192.168.1.1:12345"
	s.Assert().Equal(http.StatusOK, s.serve(first).Code)

	second := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	second.RemoteAddr = "192.168.1.1:12346"
	s.Assert().Equal(http.StatusTooManyRequests, s.serve(second).Code)

	other := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	other.RemoteAddr = "192.168.1.2:12345"
	s.Assert().Equal(http.StatusOK, s.serve(other).Code)
}

func (s *RouterTestSuite) TestConcurrentRequests() {
	var wg sync.WaitGroup
	codes := make(chan int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- s.serve(httptest.NewRequest(http.MethodGet, "/health/live", nil)).Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		s.Assert().Equal(http.StatusOK, code)
	}
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func BenchmarkRouter(b *testing.B) {
	router := NewRouter(newRouterFixture(b, testHttpConfig()).deps)

	for _, path := range []string{"/health/live", "/metrics", "/api/settings"} {
		b.Run(path, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
			}
		})
	}
}
