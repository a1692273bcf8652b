package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Store  StoreConfig
	Retry  RetryConfig
	Issuer IssuerConfig
	Export ExportConfig
	CLI    CLIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP del gateway.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig store REST remoto dueño de todos los registros.
type StoreConfig struct {
	BaseURL string // ej. https://crm.example.com (sin /api)
	Timeout time.Duration
}

// RetryConfig relectura acotada después de una escritura.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

// IssuerConfig identidad del emisor impresa en cada cotización.
// Las listas (dirección, términos) se separan con "|" en la variable de entorno.
type IssuerConfig struct {
	Name          string
	AddressLines  []string
	Email         string
	Website       string
	BankAccount   string
	BankIFSC      string
	BankMICR      string
	Terms         []string
	LogoPath      string // vacío = imagen embebida
	StampPath     string
	BankImagePath string
}

// ExportConfig destino de los PDF exportados desde la CLI.
type ExportConfig struct {
	Dir string
}

// CLIConfig opciones propias de quotectl.
type CLIConfig struct {
	CredentialFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_BASE_URL, ISSUER_NAME, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "cotizador-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			BaseURL: strings.TrimRight(getString(v, "STORE_BASE_URL", "http://localhost:5000"), "/"),
			Timeout: time.Duration(getInt(v, "STORE_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts: getInt(v, "RETRY_MAX_ATTEMPTS", 3),
			Delay:       time.Duration(getInt(v, "RETRY_DELAY_MS", 1000)) * time.Millisecond,
		},
		Issuer: IssuerConfig{
			Name:          getString(v, "ISSUER_NAME", "Webbiify Infotech"),
			AddressLines:  getList(v, "ISSUER_ADDRESS", []string{"Barabanki", "Lucknow U.P. 225001"}),
			Email:         getString(v, "ISSUER_EMAIL", "info@webbiify.com"),
			Website:       getString(v, "ISSUER_WEBSITE", "www.webbiify.com"),
			BankAccount:   getString(v, "ISSUER_BANK_ACCOUNT", ""),
			BankIFSC:      getString(v, "ISSUER_BANK_IFSC", ""),
			BankMICR:      getString(v, "ISSUER_BANK_MICR", ""),
			Terms:         getList(v, "ISSUER_TERMS", []string{"Payment due within 30 days.", "All services subject to terms at www.webbiify.com."}),
			LogoPath:      getString(v, "ISSUER_LOGO_PATH", ""),
			StampPath:     getString(v, "ISSUER_STAMP_PATH", ""),
			BankImagePath: getString(v, "ISSUER_BANK_IMAGE_PATH", ""),
		},
		Export: ExportConfig{
			Dir: getString(v, "EXPORT_DIR", "."),
		},
		CLI: CLIConfig{
			CredentialFile: getString(v, "QUOTECTL_CREDENTIAL_FILE", defaultCredentialFile()),
		},
	}

	if cfg.Store.BaseURL == "" {
		return nil, fmt.Errorf("config: STORE_BASE_URL vacío")
	}
	if cfg.Retry.MaxAttempts < 1 {
		return nil, fmt.Errorf("config: RETRY_MAX_ATTEMPTS debe ser >= 1")
	}
	return cfg, nil
}

func defaultCredentialFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".quotectl-token"
	}
	return filepath.Join(dir, "quotectl", "token")
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

func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	var out []string
	for _, part := range strings.Split(v.GetString(key), "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
