package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"onboarding/internal/adapters/effects"
	"onboarding/internal/adapters/http/health"
	"onboarding/internal/adapters/http/onboarding"
	"onboarding/internal/adapters/i18n"
	"onboarding/internal/config"
	"onboarding/internal/platform/logger"
	"onboarding/internal/platform/metrics"
	platformMiddleware "onboarding/internal/platform/middleware"
)

type RouterDependencies struct {
	Config            *config.HttpConfig
	Logger            logger.Logger
	Catalogs          *i18n.Catalogs
	OnboardingHandler *onboarding.Handler
	LivenessHandler   *health.LivenessHandler
	ReadinessHandler  *health.ReadinessHandler
	MetricsProvider   *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.Metrics(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(cfg.RateLimit.GlobalRequests, cfg.RateLimit.GlobalWindow))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerIP, cfg.RateLimit.IPWindow))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	h := deps.OnboardingHandler
	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(i18n.Middleware(deps.Catalogs))
		apiRouter.Use(effects.Middleware)

		apiRouter.Get("/settings", ErrorHandler(h.Settings))
		apiRouter.Get("/route", ErrorHandler(h.ResolveRoute))
		apiRouter.Post("/validate", ErrorHandler(h.Validate))
		apiRouter.Post("/screens/{screen}/actions/{action}", ErrorHandler(h.PerformAction))

		apiRouter.Route("/forms", func(formRouter chi.Router) {
			formRouter.Post("/", ErrorHandler(h.StartForm))
			formRouter.Get("/{id}", ErrorHandler(h.GetForm))
			formRouter.Put("/{id}/fields", ErrorHandler(h.ChangeField))
			formRouter.Post("/{id}/visibility", ErrorHandler(h.ToggleVisibility))
			formRouter.Post("/{id}/submit", ErrorHandler(h.SubmitForm))
		})
	})

	return r
}
