package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/schlosser-auth/internal/domain/entity"
	"github.com/jhoicas/schlosser-auth/internal/domain/repository"
)

var _ repository.LoginAttemptRepository = (*LoginAttemptRepo)(nil)

// LoginAttemptRepo implementación de LoginAttemptRepository sobre PostgreSQL (pool o tx).
type LoginAttemptRepo struct {
	q Querier
}

// NewLoginAttemptRepository construye el adaptador de auditoría.
func NewLoginAttemptRepository(q Querier) *LoginAttemptRepo {
	return &LoginAttemptRepo{q: q}
}

// Create persiste un intento de login. Asigna ID y CreatedAt si vienen vacíos.
func (r *LoginAttemptRepo) Create(ctx context.Context, a *entity.LoginAttempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO login_attempts (id, request_id, login, result, matched_row, role, remote_ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, nullIfEmpty(a.RequestID), a.Login, a.Result, nullIfNegative(a.Row), nullIfEmpty(a.Role),
		nullIfEmpty(a.RemoteIP), nullIfEmpty(a.UserAgent), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert login attempt: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos intentos, más recientes primero.
func (r *LoginAttemptRepo) ListRecent(ctx context.Context, limit int) ([]*entity.LoginAttempt, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, request_id, login, result, matched_row, role, remote_ip, user_agent, created_at
		FROM login_attempts ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list login attempts: %w", err)
	}
	defer rows.Close()

	var list []*entity.LoginAttempt
	for rows.Next() {
		var (
			a                                    entity.LoginAttempt
			row                                  *int
			requestID, role, remoteIP, userAgent *string
		)
		if err := rows.Scan(&a.ID, &requestID, &a.Login, &a.Result, &row, &role, &remoteIP, &userAgent, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan login attempt: %w", err)
		}
		a.Row = -1
		if row != nil {
			a.Row = *row
		}
		a.RequestID = deref(requestID)
		a.Role = deref(role)
		a.RemoteIP = deref(remoteIP)
		a.UserAgent = deref(userAgent)
		list = append(list, &a)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
