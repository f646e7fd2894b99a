package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Recorder = (*Prometheus)(nil)

// Prometheus recorder con registro propio (no el global), así cada instancia es independiente.
type Prometheus struct {
	registry *prometheus.Registry

	loginTotal      *prometheus.CounterVec
	loginDuration   *prometheus.HistogramVec
	rowFetchTotal   *prometheus.CounterVec
	rowFetchSeconds *prometheus.HistogramVec
	httpTotal       *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewPrometheus registra las métricas en un registro nuevo, junto a los colectores de proceso y Go.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		loginTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_attempts_total",
				Help: "Intentos de login por resultado",
			},
			[]string{"result"}, // success, InvalidInput, EmptyUserStore, AccountInactive, InvalidPassword, NotFound, ...
		),
		loginDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auth_login_duration_seconds",
				Help:    "Duración del login completo, incluida la lectura de la planilla",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		rowFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_user_store_fetch_total",
				Help: "Lecturas de la planilla de usuarios",
			},
			[]string{"source", "result"},
		),
		rowFetchSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auth_user_store_fetch_duration_seconds",
				Help:    "Duración de la lectura de la planilla de usuarios",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"source"},
		),
		httpTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Peticiones HTTP por método, ruta y status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duración de peticiones HTTP",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordLogin cuenta un intento de login con su resultado.
func (p *Prometheus) RecordLogin(result string, d time.Duration) {
	p.loginTotal.WithLabelValues(result).Inc()
	p.loginDuration.WithLabelValues(result).Observe(d.Seconds())
}

// RecordRowFetch cuenta una lectura de la planilla.
func (p *Prometheus) RecordRowFetch(source string, success bool, d time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	p.rowFetchTotal.WithLabelValues(source, result).Inc()
	p.rowFetchSeconds.WithLabelValues(source).Observe(d.Seconds())
}

// RecordHTTPRequest cuenta una petición HTTP ya respondida.
func (p *Prometheus) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	p.httpTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Registry expone el registro (tests, colectores adicionales).
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler sirve el formato de exposición de Prometheus.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
