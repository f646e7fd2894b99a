package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/schlosser-auth/internal/application/auth"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/metrics"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/postgres"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/rowsource"
	httpRouter "github.com/jhoicas/schlosser-auth/internal/interfaces/http"
	"github.com/jhoicas/schlosser-auth/pkg/config"
	"github.com/jhoicas/schlosser-auth/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("sheets_source", cfg.Sheets.Source).
		Msg("iniciando aplicación")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	ctx := context.Background()
	rows, err := rowsource.New(ctx, cfg.Sheets)
	if err != nil {
		log.Fatal().Err(err).Msg("fuente de usuarios")
	}

	recorder := metrics.New(cfg.Metrics.Enabled)
	opts := []auth.Option{
		auth.WithLogger(log.Component("auth")),
		auth.WithMetrics(recorder),
	}

	if cfg.Audit.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones de auditoría")
		}
		opts = append(opts, auth.WithAttemptRepository(postgres.NewLoginAttemptRepository(pool)))
		log.Info().Msg("auditoría de logins habilitada")
	}

	authUC := auth.NewAuthUseCase(rows, auth.SheetConfig{
		Source:        cfg.Sheets.Source,
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		SheetName:     cfg.Sheets.UsuariosSheet,
		Timeout:       cfg.Sheets.Timeout(),
	}, opts...)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Schlosser Auth API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		AuthUC:       authUC,
		AllowOrigins: cfg.HTTP.AllowOrigins,
	}
	if prom, ok := recorder.(*metrics.Prometheus); ok {
		deps.HTTPMetrics = prom
		deps.MetricsHandler = prom.Handler()
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
