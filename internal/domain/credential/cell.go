package credential

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// CellString convierte un valor de celda sin tipo a string.
// Los números se escriben sin notación exponencial (5511912345678, no 5.511912345678e+12),
// así un teléfono guardado como número sigue coincidiendo por dígitos.
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return ""
		}
		return decimal.NewFromFloat(val).String()
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ""
		}
		return decimal.NewFromFloat32(val).String()
	case json.Number:
		return val.String()
	default:
		return cast.ToString(val)
	}
}

// cell lee la columna idx de row; fuera de rango devuelve "".
func cell(row []any, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(CellString(row[idx]))
}
