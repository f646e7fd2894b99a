package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"regexp"
	"strings"
)

// sha256Hex una contraseña guardada con exactamente 64 hex se trata como digest SHA-256.
var sha256Hex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// HashPassword devuelve el digest SHA-256 (hex, minúsculas) de password en UTF-8,
// el formato aceptado en la columna Senha.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsHashed indica si stored tiene forma de digest SHA-256.
func IsHashed(stored string) bool {
	return sha256Hex.MatchString(strings.TrimSpace(stored))
}

// VerifyPassword compara la contraseña enviada con la guardada en la planilla.
// Digest SHA-256: compara el hash de submitted sin distinguir mayúsculas.
// Texto plano: compara ambos valores recortados, byte a byte.
func VerifyPassword(stored, submitted string) bool {
	stored = strings.TrimSpace(stored)
	if sha256Hex.MatchString(stored) {
		return constantTimeEqual(strings.ToLower(stored), HashPassword(submitted))
	}
	return constantTimeEqual(stored, strings.TrimSpace(submitted))
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
