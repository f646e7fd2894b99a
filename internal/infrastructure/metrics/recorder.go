// Package metrics: métricas Prometheus de logins, lecturas de planilla y HTTP.
// Distingue internamente NotFound / InvalidPassword / AccountInactive para operadores;
// la respuesta al usuario no lo hace.
package metrics

import "time"

// Recorder contrato usado por el caso de uso y el router.
type Recorder interface {
	RecordLogin(result string, duration time.Duration)
	RecordRowFetch(source string, success bool, duration time.Duration)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// New devuelve un recorder Prometheus si enabled, o uno que no hace nada.
func New(enabled bool) Recorder {
	if !enabled {
		return NewNoop()
	}
	return NewPrometheus()
}
