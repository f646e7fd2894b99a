package dto

import (
	"encoding/json"
	"strings"

	"github.com/jhoicas/schlosser-auth/internal/domain/credential"
	"github.com/jhoicas/schlosser-auth/internal/domain/entity"
)

// Alias aceptados en el cuerpo del login, en orden de preferencia.
var (
	loginAliases    = []string{"login", "usuario", "user", "phone"}
	passwordAliases = []string{"password", "senha", "pass"}
)

// LoginRequest credenciales enviadas más metadatos de la petición (no vienen del cuerpo).
type LoginRequest struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	RequestID string `json:"-"`
	RemoteIP  string `json:"-"`
	UserAgent string `json:"-"`
}

// ParseLoginRequest lee el cuerpo JSON aceptando alias (usuario/user/phone, senha/pass)
// y valores numéricos. Un cuerpo vacío o inválido se trata como {}.
func ParseLoginRequest(body []byte) LoginRequest {
	var raw map[string]any
	if len(body) == 0 || json.Unmarshal(body, &raw) != nil {
		return LoginRequest{}
	}
	return LoginRequest{
		Login:    firstField(raw, loginAliases),
		Password: firstField(raw, passwordAliases),
	}
}

func firstField(raw map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		if s := strings.TrimSpace(credential.CellString(v)); s != "" {
			return s
		}
	}
	return ""
}

// UserResponse usuario normalizado tal como lo guarda el frontend en su sesión.
type UserResponse struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Role     string `json:"role"`
	Tipo     string `json:"tipo"`
	HomePath string `json:"homePath"`
}

// LoginResponse salida de un login exitoso.
type LoginResponse struct {
	OK   bool         `json:"ok"`
	User UserResponse `json:"user"`
}

// NewLoginResponse arma la respuesta a partir del usuario del dominio.
func NewLoginResponse(u entity.User) *LoginResponse {
	return &LoginResponse{
		OK: true,
		User: UserResponse{
			Name:     u.Name,
			Login:    u.Login,
			Role:     u.Role,
			Tipo:     u.RawType,
			HomePath: u.HomePath,
		},
	}
}
