package dto

// ErrorResponse cuerpo de error HTTP. "error" conserva el nombre que ya consume el frontend.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

// HealthResponse respuesta de GET /api/auth.
type HealthResponse struct {
	OK     bool   `json:"ok"`
	Method string `json:"method"`
	Route  string `json:"route"`
}
