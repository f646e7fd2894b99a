package repository

import (
	"context"

	"github.com/jhoicas/schlosser-auth/internal/domain/entity"
)

// LoginAttemptRepository define el puerto de persistencia para la auditoría de logins.
type LoginAttemptRepository interface {
	Create(ctx context.Context, attempt *entity.LoginAttempt) error
	ListRecent(ctx context.Context, limit int) ([]*entity.LoginAttempt, error)
}
