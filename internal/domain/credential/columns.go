package credential

import (
	"strings"

	"github.com/jhoicas/schlosser-auth/pkg/textnorm"
)

// NotFound índice de columna no detectada en la cabecera.
const NotFound = -1

// Columns posición de cada campo lógico dentro de una fila.
type Columns struct {
	Name     int `json:"name"`
	Login    int `json:"login"`
	Password int `json:"password"`
	Type     int `json:"type"`
	Active   int `json:"active"`
	Home     int `json:"home"`
}

// FallbackColumns layout fijo A-F: Nome, Login, Senha, Tipo, Ativo, Home.
var FallbackColumns = Columns{Name: 0, Login: 1, Password: 2, Type: 3, Active: 4, Home: 5}

// ResolveColumns detecta las columnas a partir de la cabecera.
// Si falta alguna columna crítica (login, senha, tipo, ativo) la fila no se
// considera cabecera y se devuelve FallbackColumns completo. Nunca falla.
func ResolveColumns(header []any) Columns {
	folded := make([]string, len(header))
	for i, h := range header {
		folded[i] = textnorm.Fold(CellString(h))
	}

	cols := Columns{
		Name: indexOf(folded, func(h string) bool {
			return h == "usuario" || h == "nome" || strings.Contains(h, "usuario")
		}),
		Login:    indexOf(folded, func(h string) bool { return h == "login" }),
		Password: indexOf(folded, func(h string) bool { return strings.Contains(h, "senha") }),
		Type:     indexOf(folded, func(h string) bool { return strings.Contains(h, "tipo") }),
		Active:   indexOf(folded, func(h string) bool { return strings.Contains(h, "ativo") }),
		Home: indexOf(folded, func(h string) bool {
			return (strings.Contains(h, "app") && strings.Contains(h, "login")) || strings.Contains(h, "home")
		}),
	}

	if cols.Login == NotFound || cols.Password == NotFound || cols.Type == NotFound || cols.Active == NotFound {
		return FallbackColumns
	}
	if cols.Name == NotFound {
		cols.Name = FallbackColumns.Name
	}
	if cols.Home == NotFound {
		cols.Home = FallbackColumns.Home
	}
	return cols
}

func indexOf(headers []string, match func(string) bool) int {
	for i, h := range headers {
		if match(h) {
			return i
		}
	}
	return NotFound
}
