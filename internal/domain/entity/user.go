package entity

// Roles canónicos derivados de la columna "Tipo" de la planilla.
const (
	RoleAdmin           = "admin"
	RoleGestorComercial = "gestorcomercial"
	RoleRepresentantePJ = "representantepj"
	RoleVendedor        = "vendedor"
	RoleClienteB2B      = "cliente_b2b"
	RoleClienteB2C      = "cliente_b2c"
	RoleCliente         = "cliente"
	RolePublic          = "public"
)

// HomeLogin destino por defecto cuando el rol no tiene home conocido: obliga a reautenticar.
const HomeLogin = "/login"

// User usuario normalizado tras un login exitoso. Se construye una vez y no se modifica;
// la persistencia de la sesión es responsabilidad del llamador.
type User struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Role     string `json:"role"`
	RawType  string `json:"tipo"`     // texto libre original de la columna Tipo
	HomePath string `json:"homePath"` // siempre comienza con "/"
}
