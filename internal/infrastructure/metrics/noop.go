package metrics

import "time"

var _ Recorder = (*Noop)(nil)

// Noop descarta todas las mediciones (METRICS_ENABLED=false).
type Noop struct{}

// NewNoop construye el recorder vacío.
func NewNoop() *Noop { return &Noop{} }

func (*Noop) RecordLogin(string, time.Duration)                    {}
func (*Noop) RecordRowFetch(string, bool, time.Duration)           {}
func (*Noop) RecordHTTPRequest(string, string, int, time.Duration) {}
