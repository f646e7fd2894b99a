package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LocalRequestID key de Locals donde requestid deja el ID de la petición.
const LocalRequestID = "requestid"

// GetRequestID devuelve el ID de la petición (después del middleware requestid).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// HTTPRecorder lo que el middleware necesita de la capa de métricas.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware registra método, ruta (patrón, no path concreto) y status de cada petición.
func MetricsMiddleware(rec HTTPRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		rec.RecordHTTPRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
