package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/schlosser-auth/internal/application/auth"
	"github.com/jhoicas/schlosser-auth/internal/domain/credential"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/schlosser-auth/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type staticRows struct {
	rows [][]any
	err  error
}

func (s staticRows) GetAllRows(context.Context, string, string) ([][]any, error) {
	return s.rows, s.err
}

var usuarios = [][]any{
	{"Nome", "Login", "Senha", "Tipo", "Ativo", "Home"},
	{"Ana", "ana1", "1234", "Vendedor", "sim", ""},
	{"Bia", "bia", credential.HashPassword("senha123"), "Cliente B2B", "não", ""},
	{"Carla", "5511912345678", "pw", "Admin", "x", "/painel"},
}

// buildTestApp construye una aplicación Fiber mínima con el router real y una planilla fija.
func buildTestApp(src staticRows, rec *metrics.Prometheus) *fiber.App {
	app := fiber.New()
	uc := auth.NewAuthUseCase(src, auth.SheetConfig{Source: "test", SpreadsheetID: "id", SheetName: "USUARIOS", Timeout: time.Second})
	deps := apphttp.RouterDeps{AuthUC: uc, AllowOrigins: "*"}
	if rec != nil {
		deps.HTTPMetrics = rec
		deps.MetricsHandler = rec.Handler()
	}
	apphttp.Router(app, deps)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth", `{"login":"ana1","password":"1234"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "la respuesta debe incluir user")
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "ana1", user["login"])
	assert.Equal(t, "vendedor", user["role"])
	assert.Equal(t, "Vendedor", user["tipo"])
	assert.Equal(t, "/vendedor", user["homePath"])
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestLogin_AliasYTelefono(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", `{"phone":"+55 (11) 91234-5678","senha":"pw"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, "/painel", user["homePath"])
}

// Inactivo, password incorrecta y no encontrado responden exactamente igual.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)
	bodies := []string{
		`{"login":"bia","password":"senha123"}`, // inactivo
		`{"login":"ana1","password":"errada"}`,  // password
		`{"login":"nadie","password":"x"}`,      // no encontrado
	}

	var first map[string]any
	for i, b := range bodies {
		resp, body := doJSON(t, app, http.MethodPost, "/api/auth", b)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, b)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "UNAUTHORIZED", body["code"])
		if i == 0 {
			first = body
			continue
		}
		assert.Equal(t, first, body, "el cuerpo no debe revelar la causa")
	}
}

func TestLogin_EntradaInvalida_400(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)

	for _, b := range []string{"", "no-json", `{"login":"ana1"}`, `{"password":"1234"}`} {
		resp, body := doJSON(t, app, http.MethodPost, "/api/auth", b)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, b)
		assert.Equal(t, "VALIDATION", body["code"])
	}
}

func TestLogin_PlanillaVacia_500(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios[:1]}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth", `{"login":"ana1","password":"1234"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "EMPTY_USER_STORE", body["code"])
}

func TestLogin_PlanillaIndisponible_500(t *testing.T) {
	app := buildTestApp(staticRows{err: errors.New("quota exceeded")}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth", `{"login":"ana1","password":"1234"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "USER_STORE_UNAVAILABLE", body["code"])
	assert.NotContains(t, body["error"], "quota", "el detalle interno no se expone")
}

// ──────────────────────────────────────────────────────────────────────────────
// Otros métodos
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_GET(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/api/auth", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "GET", body["method"])
	assert.Equal(t, "/api/auth", body["route"])
}

func TestMetodoNoPermitido_405(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/auth", "")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method not allowed", body["error"])
}

func TestPreflightCORS(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/auth", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestOptionsSinPreflight_200(t *testing.T) {
	app := buildTestApp(staticRows{rows: usuarios}, nil)

	resp, _ := doJSON(t, app, http.MethodOptions, "/api/auth", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestMetrics_ExponeContadoresHTTP(t *testing.T) {
	rec := metrics.NewPrometheus()
	app := buildTestApp(staticRows{rows: usuarios}, rec)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth", `{"login":"ana1","password":"errada"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mresp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer mresp.Body.Close()
	raw, _ := io.ReadAll(mresp.Body)

	assert.Equal(t, http.StatusOK, mresp.StatusCode)
	assert.Contains(t, string(raw), `http_requests_total{method="POST",route="/api/auth",status="401"} 1`)
}
