package credential

import (
	"strings"

	"github.com/jhoicas/schlosser-auth/internal/domain"
	"github.com/jhoicas/schlosser-auth/internal/domain/entity"
	"github.com/jhoicas/schlosser-auth/pkg/textnorm"
)

// NoRow índice devuelto por Match cuando ninguna fila coincide.
const NoRow = -1

// Match busca la cuenta de login en rows[1:] y valida estado y contraseña.
// La primera fila que coincide decide el resultado: no se sigue buscando aunque
// falle Ativo o Senha. Devuelve el usuario normalizado y el índice de la fila evaluada.
//
// Errores: domain.ErrEmptyUserStore, domain.ErrAccountInactive,
// domain.ErrInvalidPassword, domain.ErrUserNotFound.
func Match(rows [][]any, cols Columns, login, password string) (entity.User, int, error) {
	if len(rows) < 2 {
		return entity.User{}, NoRow, domain.ErrEmptyUserStore
	}

	wantedNorm := textnorm.Fold(login)
	wantedDigits := textnorm.Digits(wantedNorm)

	for r := 1; r < len(rows); r++ {
		row := rows[r]
		name := cell(row, cols.Name)
		rowLogin := cell(row, cols.Login)

		if !matchesLogin(name, rowLogin, wantedNorm, wantedDigits) {
			continue
		}
		if !IsTruthy(cell(row, cols.Active)) {
			return entity.User{}, r, domain.ErrAccountInactive
		}
		if !VerifyPassword(cell(row, cols.Password), password) {
			return entity.User{}, r, domain.ErrInvalidPassword
		}

		rawType := cell(row, cols.Type)
		role := NormalizeRole(rawType)
		submitted := strings.TrimSpace(login)
		return entity.User{
			Name:     firstNonEmpty(name, rowLogin, submitted),
			Login:    firstNonEmpty(rowLogin, name, submitted),
			Role:     role,
			RawType:  rawType,
			HomePath: NormalizeHomePath(role, cell(row, cols.Home)),
		}, r, nil
	}
	return entity.User{}, NoRow, domain.ErrUserNotFound
}

// matchesLogin acepta login por nombre, por columna Login o por teléfono (solo dígitos).
func matchesLogin(name, rowLogin, wantedNorm, wantedDigits string) bool {
	if wantedNorm == "" {
		return false
	}
	foldedLogin := textnorm.Fold(rowLogin)
	if textnorm.Fold(name) == wantedNorm || foldedLogin == wantedNorm {
		return true
	}
	rowDigits := textnorm.Digits(foldedLogin)
	return wantedDigits != "" && rowDigits != "" && wantedDigits == rowDigits
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
