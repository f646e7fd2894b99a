package http

import (
	nethttp "net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/schlosser-auth/internal/application/auth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	AllowOrigins   string
	HTTPMetrics    HTTPRecorder    // nil = sin métricas HTTP
	MetricsHandler nethttp.Handler // nil = sin /metrics
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(requestid.New(requestid.Config{ContextKey: LocalRequestID}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins(deps.AllowOrigins),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if deps.HTTPMetrics != nil {
		app.Use(MetricsMiddleware(deps.HTTPMetrics))
	}
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Get("/api/auth", authHandler.Health)
	app.Post("/api/auth", authHandler.Login)
	app.Post("/api/auth/login", authHandler.Login)
	app.Options("/api/auth", authHandler.Preflight)
	app.All("/api/auth", authHandler.MethodNotAllowed)
}

func allowOrigins(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "*"
	}
	return s
}
