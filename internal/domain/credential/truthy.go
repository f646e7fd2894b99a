package credential

import "github.com/jhoicas/schlosser-auth/pkg/textnorm"

// truthy valores aceptados en la columna Ativo (unión de todas las variantes de la planilla).
var truthy = map[string]struct{}{
	"true":       {},
	"1":          {},
	"sim":        {},
	"yes":        {},
	"y":          {},
	"verdadeiro": {},
	"s":          {},
	"ativo":      {},
	"ok":         {},
	"x":          {},
	"✅":          {},
}

// IsTruthy indica si el valor de la columna Ativo habilita la cuenta.
func IsTruthy(v string) bool {
	_, ok := truthy[textnorm.Fold(v)]
	return ok
}
