package credential

import (
	"strings"

	"github.com/jhoicas/schlosser-auth/internal/domain/entity"
	"github.com/jhoicas/schlosser-auth/pkg/textnorm"
)

// roleRule regla de clasificación del texto libre de Tipo. Se evalúan en orden, la primera gana.
type roleRule struct {
	role  string
	match func(tipo string) bool
}

var roleRules = []roleRule{
	{entity.RoleAdmin, func(s string) bool { return s == "admin" }},
	{entity.RoleGestorComercial, func(s string) bool { return strings.Contains(s, "gestor") }},
	{entity.RoleRepresentantePJ, func(s string) bool { return strings.Contains(s, "representante") }},
	{entity.RoleVendedor, func(s string) bool { return strings.Contains(s, "vendedor") }},
	{entity.RoleClienteB2B, func(s string) bool { return strings.Contains(s, "cliente") && strings.Contains(s, "b2b") }},
	{entity.RoleClienteB2C, func(s string) bool { return strings.Contains(s, "cliente") && strings.Contains(s, "b2c") }},
	{entity.RoleCliente, func(s string) bool { return strings.Contains(s, "cliente") }},
}

// defaultHomes destino post-login por rol cuando la planilla no trae uno.
var defaultHomes = map[string]string{
	entity.RoleAdmin:           "/admin",
	entity.RoleGestorComercial: "/gestorcomercial",
	entity.RoleVendedor:        "/vendedor",
	entity.RoleRepresentantePJ: "/vendedor",
	entity.RoleClienteB2B:      "/cliente_b2b",
	entity.RoleClienteB2C:      "/cliente_b2c",
	entity.RoleCliente:         "/cliente",
}

// NormalizeRole convierte el texto libre de la columna Tipo en un rol canónico.
// Sin regla aplicable devuelve el slug del texto, o "public" si está vacío.
func NormalizeRole(rawType string) string {
	tipo := textnorm.Fold(rawType)
	for _, r := range roleRules {
		if r.match(tipo) {
			return r.role
		}
	}
	if slug := textnorm.Slugify(tipo); slug != "" {
		return slug
	}
	return entity.RolePublic
}

// NormalizeHomePath elige el destino post-login. Un path de la planilla que empiece
// con "/" siempre gana; si no, se usa el default del rol o "/login".
func NormalizeHomePath(role, rawHome string) string {
	if home := strings.TrimSpace(rawHome); strings.HasPrefix(home, "/") {
		return home
	}
	if home, ok := defaultHomes[role]; ok {
		return home
	}
	return entity.HomeLogin
}
