package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Log      LogConfig
	Cetustek CetustekConfig
	HTTP     HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// CetustekConfig credenciales y endpoint del WS de factura electrónica.
type CetustekConfig struct {
	Endpoint    string
	RentID      string
	SiteCode    string
	APIPassword string
	// Timeout plazo que el llamador (CLI / gateway) impone a cada operación. 0 = sin plazo.
	Timeout time.Duration
}

// ClientConfig convierte a la configuración del cliente.
func (c CetustekConfig) ClientConfig() cetustek.Config {
	return cetustek.Config{
		Endpoint:    c.Endpoint,
		RentID:      c.RentID,
		SiteCode:    c.SiteCode,
		APIPassword: c.APIPassword,
	}
}

// Validate informa de las credenciales ausentes.
func (c CetustekConfig) Validate() error {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, "CETUSTEK_ENDPOINT")
	}
	if c.RentID == "" {
		missing = append(missing, "CETUSTEK_RENT_ID")
	}
	if c.SiteCode == "" {
		missing = append(missing, "CETUSTEK_SITE_CODE")
	}
	if c.APIPassword == "" {
		missing = append(missing, "CETUSTEK_API_PASSWORD")
	}
	if len(missing) > 0 {
		return errors.New("config: faltan " + strings.Join(missing, ", "))
	}
	return nil
}

// HTTPConfig configuración del gateway HTTP.
type HTTPConfig struct {
	Host string
	Port int

	// JWTSecret protege /api con Bearer tokens; vacío = gateway sin autenticación.
	JWTSecret string
	JWTIssuer string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, CETUSTEK_RENT_ID, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "cetustek"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Cetustek: CetustekConfig{
			Endpoint:    getString(v, "CETUSTEK_ENDPOINT", cetustek.DefaultEndpoint),
			RentID:      getString(v, "CETUSTEK_RENT_ID", ""),
			SiteCode:    getString(v, "CETUSTEK_SITE_CODE", ""),
			APIPassword: getString(v, "CETUSTEK_API_PASSWORD", ""),
			Timeout:     time.Duration(getInt(v, "CETUSTEK_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),

			JWTSecret: getString(v, "JWT_SECRET", ""),
			JWTIssuer: getString(v, "JWT_ISSUER", "cetustek-gateway"),
		},
	}

	if cfg.Cetustek.Timeout < 0 {
		return nil, fmt.Errorf("config: CETUSTEK_TIMEOUT_SECONDS no puede ser negativo")
	}
	return cfg, nil
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
