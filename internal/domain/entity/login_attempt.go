package entity

import "time"

// LoginAttempt registro de auditoría de un intento de login.
// Nunca contiene la contraseña enviada.
type LoginAttempt struct {
	ID        string
	RequestID string
	Login     string // login normalizado (Fold)
	Result    string // "success" o el ErrorKind del fallo
	Row       int    // índice de la fila que coincidió; -1 si ninguna
	Role      string
	RemoteIP  string
	UserAgent string
	CreatedAt time.Time
}
