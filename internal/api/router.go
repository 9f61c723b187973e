package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/wellness/portal/internal/api/handler"
	"github.com/wellness/portal/internal/api/middleware"
	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/ports"
	"github.com/wellness/portal/internal/infrastructure/http/handlers"
)

// Deps holds everything the router needs to build its handlers.
type Deps struct {
	Auth     ports.AuthService
	Sessions ports.SessionService
	Articles ports.ArticleService
	Wellness ports.WellnessService
	// Probes are pinged by /health/ready, keyed by dependency name.
	Probes map[string]handlers.Pinger
	// Registry receives the request metrics and backs /metrics. Nil selects
	// the default Prometheus registry.
	Registry *prometheus.Registry
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "wellness",
		Registerer: registerer(deps.Registry),
	}))

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)
	articleHandler := handler.NewArticleHandler(deps.Articles)
	wellnessHandler := handler.NewWellnessHandler(deps.Wellness)
	authenticated := middleware.Auth(deps.Sessions)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signup/check", authHandler.CheckSignup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authenticated)
	e.GET("/auth/me", authHandler.Me, authenticated)

	// --- Articles: public read, admin write ---
	e.GET("/articles", articleHandler.List)
	admin := e.Group("/admin", authenticated, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/articles", articleHandler.Create)
	admin.DELETE("/articles/:id", articleHandler.Delete)

	// --- Wellness tools ---
	wellness := e.Group("/wellness", authenticated)
	wellness.POST("/bmi", wellnessHandler.BMI)
	wellness.POST("/obesity", wellnessHandler.Obesity)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Probes)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer(deps.Registry),
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return prometheus.DefaultRegisterer
	}
	return reg
}

func gatherer(reg *prometheus.Registry) prometheus.Gatherer {
	if reg == nil {
		return prometheus.DefaultGatherer
	}
	return reg
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
