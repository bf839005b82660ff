package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/adapters/in/ws"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries everything the HTTP surface is built from. RateLimiter,
// Hub, Metrics and Health are optional.
type RouterConfig struct {
	Server         *Server
	Authenticator  *Authenticator
	RateLimiter    *RateLimiter
	Hub            *ws.Hub
	Metrics        *metrics.Metrics
	Health         func(ctx context.Context) error
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter assembles the echo instance: operational endpoints, the generated API
// routes behind rate limiting, authentication and request validation, and /ws.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerDocs(doc); err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	if cfg.RateLimiter != nil {
		e.Use(cfg.RateLimiter.Middleware(skipUnless(isAPIRoute)))
	}
	e.Use(cfg.Authenticator.Middleware(skipUnless(func(c echo.Context) bool {
		return isAPIRoute(c) || c.Path() == "/ws"
	})))
	e.Use(skippable(validator, isAPIRoute))

	e.GET("/health", healthHandler(cfg.Health))
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Hub != nil {
		e.GET("/ws", websocketHandler(cfg.Hub))
	}

	servers.RegisterHandlers(e, cfg.Server)
	return e, nil
}

func isAPIRoute(c echo.Context) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

func skipUnless(applies func(echo.Context) bool) middleware.Skipper {
	return func(c echo.Context) bool {
		return !applies(c)
	}
}

func skippable(mw echo.MiddlewareFunc, applies func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := mw(next)
		return func(c echo.Context) error {
			if !applies(c) {
				return next(c)
			}
			return wrapped(c)
		}
	}
}

func healthHandler(check func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if check != nil {
			if err := check(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	}
}

func websocketHandler(hub *ws.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		actorID, err := actorFrom(c)
		if err != nil {
			return err
		}
		// the upgrader has already written the failure response
		_ = hub.Serve(c.Response(), c.Request(), actorID.String())
		return nil
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "access_log")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				level = slog.LevelWarn
			}
			logger.LogAttrs(c.Request().Context(), level, "Request handled", attrs...)
			return nil
		},
	})
}
