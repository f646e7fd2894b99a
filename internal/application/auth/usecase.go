package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/schlosser-auth/internal/application/dto"
	"github.com/jhoicas/schlosser-auth/internal/domain"
	"github.com/jhoicas/schlosser-auth/internal/domain/credential"
	"github.com/jhoicas/schlosser-auth/internal/domain/entity"
	"github.com/jhoicas/schlosser-auth/internal/domain/repository"
	"github.com/jhoicas/schlosser-auth/pkg/logger"
	"github.com/jhoicas/schlosser-auth/pkg/textnorm"
)

// ResultSuccess etiqueta de un login exitoso en métricas y auditoría.
const ResultSuccess = "success"

// SheetConfig ubicación de la pestaña de usuarios.
type SheetConfig struct {
	Source        string // etiqueta para métricas: "google" o "xlsx"
	SpreadsheetID string
	SheetName     string
	Timeout       time.Duration
}

// MetricsRecorder lo que el caso de uso necesita de la capa de métricas.
type MetricsRecorder interface {
	RecordLogin(result string, duration time.Duration)
	RecordRowFetch(source string, success bool, duration time.Duration)
}

// AuthUseCase login contra la planilla: lee las filas en cada intento y delega
// la decisión en credential. No guarda estado entre llamadas.
type AuthUseCase struct {
	rows     repository.RowSource
	attempts repository.LoginAttemptRepository // nil = auditoría deshabilitada
	metrics  MetricsRecorder
	log      *logger.Logger
	sheet    SheetConfig
	now      func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*AuthUseCase)

// WithAttemptRepository habilita la auditoría de intentos.
func WithAttemptRepository(repo repository.LoginAttemptRepository) Option {
	return func(uc *AuthUseCase) { uc.attempts = repo }
}

// WithMetrics registra métricas de login y de lectura de planilla.
func WithMetrics(m MetricsRecorder) Option {
	return func(uc *AuthUseCase) { uc.metrics = m }
}

// WithLogger reemplaza el logger (por defecto Nop).
func WithLogger(l *logger.Logger) Option {
	return func(uc *AuthUseCase) { uc.log = l }
}

// WithClock fija el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *AuthUseCase) { uc.now = now }
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(rows repository.RowSource, sheet SheetConfig, opts ...Option) *AuthUseCase {
	uc := &AuthUseCase{
		rows:    rows,
		metrics: noopMetrics{},
		log:     logger.Nop(),
		sheet:   sheet,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Login valida la entrada, lee la planilla y resuelve las credenciales.
// Errores: domain.ErrInvalidInput, domain.ErrUserStoreUnavailable, domain.ErrEmptyUserStore,
// domain.ErrAccountInactive, domain.ErrInvalidPassword, domain.ErrUserNotFound.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	start := uc.now()
	login := strings.TrimSpace(in.Login)
	password := strings.TrimSpace(in.Password)
	if login == "" || password == "" {
		uc.finish(ctx, in, start, entity.User{}, credential.NoRow, domain.ErrInvalidInput)
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.fetchRows(ctx)
	if err != nil {
		uc.finish(ctx, in, start, entity.User{}, credential.NoRow, err)
		return nil, err
	}

	user, row, err := credential.Verify(rows, login, password)
	uc.finish(ctx, in, start, user, row, err)
	if err != nil {
		return nil, err
	}
	return dto.NewLoginResponse(user), nil
}

// Columns devuelve el mapa de columnas que se usaría con la planilla actual (diagnóstico).
func (uc *AuthUseCase) Columns(ctx context.Context) (credential.Columns, int, error) {
	rows, err := uc.fetchRows(ctx)
	if err != nil {
		return credential.Columns{}, 0, err
	}
	if len(rows) == 0 {
		return credential.FallbackColumns, 0, nil
	}
	return credential.ResolveColumns(rows[0]), len(rows), nil
}

func (uc *AuthUseCase) fetchRows(ctx context.Context) ([][]any, error) {
	if uc.sheet.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.sheet.Timeout)
		defer cancel()
	}
	start := uc.now()
	rows, err := uc.rows.GetAllRows(ctx, uc.sheet.SpreadsheetID, uc.sheet.SheetName)
	uc.metrics.RecordRowFetch(uc.sheet.Source, err == nil, uc.now().Sub(start))
	if err != nil {
		if !errors.Is(err, domain.ErrUserStoreUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrUserStoreUnavailable, err)
		}
		return nil, err
	}
	return rows, nil
}

// finish registra métricas, log y auditoría del intento. Nunca falla.
func (uc *AuthUseCase) finish(ctx context.Context, in dto.LoginRequest, start time.Time, user entity.User, row int, err error) {
	result := ResultSuccess
	if err != nil {
		result = string(domain.KindOf(err))
	}
	uc.metrics.RecordLogin(result, uc.now().Sub(start))

	var ev *zerolog.Event
	switch domain.KindOf(err) {
	case "":
		ev = uc.log.Info()
	case domain.KindUserStoreUnavailable, domain.KindEmptyUserStore, domain.KindInternal:
		ev = uc.log.Error().Err(err)
	default:
		ev = uc.log.Warn()
	}
	ev.Str("request_id", in.RequestID).
		Str("result", result).
		Int("row", row).
		Str("role", user.Role).
		Msg("login")

	if uc.attempts == nil {
		return
	}
	attempt := &entity.LoginAttempt{
		RequestID: in.RequestID,
		Login:     textnorm.Fold(in.Login),
		Result:    result,
		Row:       row,
		Role:      user.Role,
		RemoteIP:  in.RemoteIP,
		UserAgent: in.UserAgent,
		CreatedAt: start.UTC(),
	}
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if aerr := uc.attempts.Create(auditCtx, attempt); aerr != nil {
		uc.log.Error().Err(aerr).Str("request_id", in.RequestID).Msg("auditoría de login")
	}
}

type noopMetrics struct{}

func (noopMetrics) RecordLogin(string, time.Duration)          {}
func (noopMetrics) RecordRowFetch(string, bool, time.Duration) {}
