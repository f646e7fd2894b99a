package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/schlosser-auth/internal/application/auth"
	"github.com/jhoicas/schlosser-auth/internal/application/dto"
	"github.com/jhoicas/schlosser-auth/internal/domain"
)

// Mensaje único para inactivo, password incorrecta y no encontrado: no se revela cuál fue.
const msgInvalidCredentials = "credenciais inválidas"

// AuthHandler maneja el login contra la planilla.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Health godoc
// @Summary      Verificar ruta de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/auth [get]
func (h *AuthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{OK: true, Method: fiber.MethodGet, Route: "/api/auth"})
}

// Login godoc
// @Summary      Iniciar sesión con la planilla USUARIOS
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "login (o usuario/user/phone) y password (o senha/pass)"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in := dto.ParseLoginRequest(c.Body())
	in.RequestID = GetRequestID(c)
	in.RemoteIP = c.IP()
	in.UserAgent = c.Get(fiber.HeaderUserAgent)

	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		status, body := authError(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(out)
}

// MethodNotAllowed responde 405 para métodos distintos de GET/POST/OPTIONS.
func (h *AuthHandler) MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, "GET, POST, OPTIONS")
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed"})
}

// Preflight responde OPTIONS sin cuerpo cuando no es un preflight CORS completo.
func (h *AuthHandler) Preflight(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// authError traduce un error de dominio a status y cuerpo HTTP.
func authError(err error) (int, dto.ErrorResponse) {
	switch {
	case domain.IsCredentialFailure(err):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msgInvalidCredentials}
	case domain.KindOf(err) == domain.KindInvalidInput:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrInvalidInput.Error()}
	case domain.KindOf(err) == domain.KindEmptyUserStore:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "EMPTY_USER_STORE", Message: domain.ErrEmptyUserStore.Error()}
	case domain.KindOf(err) == domain.KindUserStoreUnavailable:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "USER_STORE_UNAVAILABLE", Message: domain.ErrUserStoreUnavailable.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"}
	}
}
