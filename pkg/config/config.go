package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App AppConfig
	API APIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del backend REST de suministros.
type APIConfig struct {
	BaseURL   string // ej. http://localhost:8000
	Timeout   int    // segundos por petición HTTP
	TokenPath string // archivo donde se persiste el token de acceso
}

// HTTPTimeout devuelve el timeout como time.Duration.
func (c APIConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, TOKEN_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "suministros-cli"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:   getString(v, "API_BASE_URL", "http://localhost:8000"),
			Timeout:   getInt(v, "API_TIMEOUT_SECONDS", 15),
			TokenPath: getString(v, "TOKEN_PATH", defaultTokenPath()),
		},
	}

	return cfg, nil
}

// defaultTokenPath devuelve ~/.suministros/token, o un archivo relativo si no hay HOME.
func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".suministros_token"
	}
	return filepath.Join(home, ".suministros", "token")
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
