package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Fuentes de filas soportadas.
const (
	SourceGoogle = "google"
	SourceXLSX   = "xlsx"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Sheets  SheetsConfig
	DB      DBConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	LogLevel       string
	SwaggerEnabled bool
}

// SheetsConfig origen de la planilla de usuarios.
type SheetsConfig struct {
	Source             string // "google" o "xlsx"
	SpreadsheetID      string // ID de Google Sheets, o ruta del .xlsx si Source = "xlsx"
	UsuariosSheet      string
	ServiceAccountJSON string // JSON inline de la service account
	ServiceAccountFile string // ruta al JSON de la service account
	TimeoutSeconds     int
}

// Timeout tiempo máximo para leer la planilla en cada login.
func (c SheetsConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DBConfig configuración de PostgreSQL (solo para auditoría de logins).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AuditConfig persistencia de intentos de login.
type AuditConfig struct {
	Enabled bool
}

// MetricsConfig exposición de métricas Prometheus en /metrics.
type MetricsConfig struct {
	Enabled bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	AllowOrigins string // lista separada por comas para CORS
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SPREADSHEET_ID, USUARIOS_SHEET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v), nil
}

// FromViper construye la Config a partir de una instancia ya cargada (útil en tests y CLI).
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "schlosser-auth"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			SwaggerEnabled: getBool(v, "SWAGGER_ENABLED", false),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 8080),
			AllowOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
		},
		Sheets: SheetsConfig{
			Source:             strings.ToLower(getString(v, "SHEETS_SOURCE", SourceGoogle)),
			SpreadsheetID:      getString(v, "SPREADSHEET_ID", ""),
			UsuariosSheet:      getString(v, "USUARIOS_SHEET", "USUARIOS"),
			ServiceAccountJSON: getString(v, "GOOGLE_SERVICE_ACCOUNT_JSON", ""),
			ServiceAccountFile: getString(v, "GOOGLE_SERVICE_ACCOUNT_FILE", ""),
			TimeoutSeconds:     getInt(v, "SHEETS_TIMEOUT_SECONDS", 10),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "schlosser_auth"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Audit: AuditConfig{
			Enabled: getBool(v, "AUDIT_ENABLED", false),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
	}
}

// Validate revisa que la fuente de usuarios esté completa.
func (c *Config) Validate() error {
	var problems []string
	switch c.Sheets.Source {
	case SourceGoogle:
		if c.Sheets.ServiceAccountJSON == "" && c.Sheets.ServiceAccountFile == "" {
			problems = append(problems, "GOOGLE_SERVICE_ACCOUNT_JSON o GOOGLE_SERVICE_ACCOUNT_FILE es requerido")
		}
	case SourceXLSX:
	default:
		problems = append(problems, fmt.Sprintf("SHEETS_SOURCE desconocido: %q", c.Sheets.Source))
	}
	if c.Sheets.SpreadsheetID == "" {
		problems = append(problems, "SPREADSHEET_ID es requerido")
	}
	if c.Sheets.UsuariosSheet == "" {
		problems = append(problems, "USUARIOS_SHEET no puede estar vacío")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
