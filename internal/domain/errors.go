package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput         = errors.New("login e password são obrigatórios")
	ErrEmptyUserStore       = errors.New("planilha de usuários vazia")
	ErrAccountInactive      = errors.New("usuário inativo")
	ErrInvalidPassword      = errors.New("senha inválida")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrUserStoreUnavailable = errors.New("planilha de usuários indisponível")
)

// ErrorKind nombre estable de cada fallo, usado en logs, métricas y auditoría.
type ErrorKind string

const (
	KindInvalidInput         ErrorKind = "InvalidInput"
	KindEmptyUserStore       ErrorKind = "EmptyUserStore"
	KindAccountInactive      ErrorKind = "AccountInactive"
	KindInvalidPassword      ErrorKind = "InvalidPassword"
	KindNotFound             ErrorKind = "NotFound"
	KindUserStoreUnavailable ErrorKind = "UserStoreUnavailable"
	KindInternal             ErrorKind = "Internal"
)

// KindOf clasifica err en su ErrorKind. nil devuelve "".
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrEmptyUserStore):
		return KindEmptyUserStore
	case errors.Is(err, ErrAccountInactive):
		return KindAccountInactive
	case errors.Is(err, ErrInvalidPassword):
		return KindInvalidPassword
	case errors.Is(err, ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrUserStoreUnavailable):
		return KindUserStoreUnavailable
	default:
		return KindInternal
	}
}

// IsCredentialFailure indica si el fallo debe mostrarse como "credenciales inválidas"
// sin revelar cuál de las tres causas ocurrió.
func IsCredentialFailure(err error) bool {
	switch KindOf(err) {
	case KindAccountInactive, KindInvalidPassword, KindNotFound:
		return true
	}
	return false
}
