package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"onboarding/internal/adapters/database"
	"onboarding/internal/adapters/effects"
	"onboarding/internal/adapters/health"
	httpAdapter "onboarding/internal/adapters/http"
	healthHttp "onboarding/internal/adapters/http/health"
	onboardingHandler "onboarding/internal/adapters/http/onboarding"
	"onboarding/internal/adapters/i18n"
	metricsAdapter "onboarding/internal/adapters/metrics"
	"onboarding/internal/adapters/repository/memory"
	postgresRepo "onboarding/internal/adapters/repository/postgres"
	"onboarding/internal/adapters/validator"
	"onboarding/internal/config"
	"onboarding/internal/core/domain/notification"
	"onboarding/internal/core/domain/validation"
	"onboarding/internal/core/ports"
	onboardingUseCase "onboarding/internal/core/usecase/onboarding"
	platformHealth "onboarding/internal/platform/health"
	"onboarding/internal/platform/logger"
	"onboarding/internal/platform/metrics"
	"onboarding/internal/version"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
		os.Exit(1)
	}

	cfg, err := config.LoadOnboarding()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	fx.New(appModule(cfg)).Run()
}

func appModule(cfg *config.OnboardingConfig) fx.Option {
	return fx.Options(
		fx.Supply(cfg, &cfg.BaseConfig),
		fx.WithLogger(logger.FxEventLogger),
		platformModule,
		storageModule(cfg),
		domainModule,
		httpModule,
	)
}

var platformModule = fx.Options(
	fx.Provide(config.LoadHttp),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Environment: cfg.Environment,
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),
	fx.Invoke(func(lc fx.Lifecycle, provider *metrics.Provider) {
		lc.Append(fx.Hook{OnStop: provider.Shutdown})
	}),
	fx.Provide(func(cfg *config.OnboardingConfig) (*i18n.Catalogs, error) {
		return i18n.NewEmbedded(cfg.I18n.DefaultLocale, validation.Policy{
			PhoneDigits:       cfg.Validation.PhoneDigits,
			PasswordMinLength: cfg.Validation.PasswordMinLength,
		})
	}),

	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager()
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),
)

// storageModule binds the registration store. Form state always lives in
// memory.
func storageModule(cfg *config.OnboardingConfig) fx.Option {
	forms := fx.Provide(fx.Annotate(
		func() *memory.FormRepository {
			return memory.NewFormRepository(cfg.Storage.FormCapacity)
		},
		fx.As(new(ports.FormRepository)),
	))

	if cfg.UsesPostgres() {
		return fx.Options(
			forms,
			fx.Provide(config.LoadDatabase),
			fx.Provide(database.NewDatabaseLifecycle),
			fx.Provide(fx.Annotate(
				func(db *database.Lifecycle) *postgresRepo.RegistrationRepository {
					return postgresRepo.NewRegistrationRepository(db)
				},
				fx.As(new(ports.RegistrationRepository)),
			)),
			fx.Provide(fx.Annotate(
				func(db *database.Lifecycle) *health.DatabaseChecker {
					return health.NewDatabaseChecker(db, "registrations_db")
				},
				fx.As(new(platformHealth.Checker)),
				fx.ResultTags(`group:"health_checkers"`),
			)),
			fx.Invoke(func(lc fx.Lifecycle, db *database.Lifecycle) {
				db.OnConnect(postgresRepo.Migrate)
				lc.Append(fx.Hook{
					OnStart: db.Start,
					OnStop:  db.Stop,
				})
			}),
		)
	}

	return fx.Options(
		forms,
		fx.Provide(memory.NewRegistrationRepository),
		fx.Provide(func(r *memory.RegistrationRepository) ports.RegistrationRepository {
			return r
		}),
		fx.Provide(fx.Annotate(
			func(r *memory.RegistrationRepository) *health.MemoryChecker {
				return health.NewMemoryChecker(r)
			},
			fx.As(new(platformHealth.Checker)),
			fx.ResultTags(`group:"health_checkers"`),
		)),
	)
}

var domainModule = fx.Options(
	fx.Provide(effects.NewDispatcher),
	fx.Provide(metricsAdapter.NewRecorder),
	fx.Provide(fx.Annotate(
		func(
			cfg *config.OnboardingConfig,
			forms ports.FormRepository,
			registrations ports.RegistrationRepository,
			catalogs *i18n.Catalogs,
			dispatcher *effects.Dispatcher,
			recorder *metricsAdapter.Recorder,
		) *onboardingUseCase.Usecase {
			return onboardingUseCase.NewUsecase(onboardingUseCase.Dependencies{
				Forms:         forms,
				Registrations: registrations,
				Localizer:     catalogs,
				Notifier:      dispatcher,
				Navigator:     dispatcher,
				Recorder:      recorder,
				Toasts: onboardingUseCase.ToastSettings{
					ErrorDuration:   cfg.Toast.ErrorDuration,
					SuccessDuration: cfg.Toast.SuccessDuration,
					Position:        notification.Position(cfg.Toast.Position),
				},
				NewID: uuid.NewString,
			})
		},
		fx.As(new(onboardingHandler.Manager)),
	)),
)

var httpModule = fx.Options(
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(func(cfg *config.OnboardingConfig, catalogs *i18n.Catalogs) onboardingHandler.Settings {
		return onboardingHandler.Settings{
			Locales:           catalogs.Locales(),
			DefaultLocale:     catalogs.Default(),
			SplashDelayMs:     cfg.SplashDelay.Milliseconds(),
			PhoneDigits:       cfg.Validation.PhoneDigits,
			PasswordMinLength: cfg.Validation.PasswordMinLength,
			ToastPosition:     string(cfg.Toast.Position),
		}
	}),
	fx.Provide(onboardingHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Info(), hm)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, catalogs *i18n.Catalogs, onboarding *onboardingHandler.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:            cfg,
			Logger:            log,
			Catalogs:          catalogs,
			OnboardingHandler: onboarding,
			LivenessHandler:   liveness,
			ReadinessHandler:  readiness,
			MetricsProvider:   metrics,
		}
	}),

	fx.Invoke(func(lc fx.Lifecycle, log logger.Logger, cfg *config.OnboardingConfig, httpCfg *config.HttpConfig, srv *httpAdapter.Server) {
		if cfg.IsProduction() && httpCfg.CORS.AllowsAnyOrigin() {
			log.Warn("CORS allows any origin in production", logger.Strings("allowed_origins", httpCfg.CORS.AllowedOrigins))
		}

		info := version.Info()
		log.Info("Starting onboarding service",
			logger.String("version", info.Version),
			logger.String("git_commit", info.GitCommit),
			logger.String("build_time", info.BuildTime),
			logger.String("storage", string(cfg.Storage.Driver)),
			logger.String("default_locale", cfg.I18n.DefaultLocale))
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)
