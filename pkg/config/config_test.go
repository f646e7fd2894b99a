package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/schlosser-auth/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := config.FromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "schlosser-auth", cfg.App.Name)
	assert.Equal(t, config.SourceGoogle, cfg.Sheets.Source)
	assert.Equal(t, "USUARIOS", cfg.Sheets.UsuariosSheet)
	assert.Equal(t, 10*time.Second, cfg.Sheets.Timeout())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "*", cfg.HTTP.AllowOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Audit.Enabled)
}

func TestFromViper_ValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("SHEETS_SOURCE", "XLSX")
	v.Set("SPREADSHEET_ID", "./usuarios.xlsx")
	v.Set("SHEETS_TIMEOUT_SECONDS", "3")
	v.Set("AUDIT_ENABLED", "true")
	v.Set("DB_PORT", "no-es-numero")

	cfg := config.FromViper(v)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.SourceXLSX, cfg.Sheets.Source)
	assert.Equal(t, 3*time.Second, cfg.Sheets.Timeout())
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, 5432, cfg.DB.Port, "un puerto inválido conserva el default")
	require.NoError(t, cfg.Validate())
}

func TestValidate_GoogleSinCredenciales(t *testing.T) {
	v := viper.New()
	v.Set("SPREADSHEET_ID", "1AbC")

	err := config.FromViper(v).Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SERVICE_ACCOUNT")
}

func TestValidate_FuenteDesconocida(t *testing.T) {
	v := viper.New()
	v.Set("SHEETS_SOURCE", "csv")

	err := config.FromViper(v).Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHEETS_SOURCE")
	assert.Contains(t, err.Error(), "SPREADSHEET_ID")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "auth", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/auth?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", db.ConnectionString())
}
