package credential

import (
	"strings"

	"github.com/jhoicas/schlosser-auth/internal/domain"
	"github.com/jhoicas/schlosser-auth/internal/domain/entity"
)

// Result salida de Authenticate: {ok:true, user} o {ok:false, error}.
type Result struct {
	OK    bool             `json:"ok"`
	User  *entity.User     `json:"user,omitempty"`
	Error domain.ErrorKind `json:"error,omitempty"`
}

// Verify valida la entrada, resuelve las columnas con la fila 0 y ejecuta Match.
// Devuelve domain.ErrInvalidInput si login o password quedan vacíos tras recortar.
func Verify(rows [][]any, login, password string) (entity.User, int, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if login == "" || password == "" {
		return entity.User{}, NoRow, domain.ErrInvalidInput
	}

	var header []any
	if len(rows) > 0 {
		header = rows[0]
	}
	return Match(rows, ResolveColumns(header), login, password)
}

// Authenticate es la operación expuesta a la capa HTTP: misma lógica que Verify
// con el error reducido a su ErrorKind.
func Authenticate(rows [][]any, login, password string) Result {
	user, _, err := Verify(rows, login, password)
	if err != nil {
		return Result{OK: false, Error: domain.KindOf(err)}
	}
	return Result{OK: true, User: &user}
}
