package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config reúne toda la configuración del servicio.
// Orden de carga: archivo TOML (CONFIG_FILE, opcional) -> .env -> variables de entorno.
type Config struct {
	Port    string `toml:"port"`
	AppName string `toml:"app_name"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	Storage StorageConfig `toml:"storage"`
	Auth    AuthConfig    `toml:"auth"`
	Redis   RedisConfig   `toml:"redis"`

	Community CommunityConfig `toml:"community"`

	// Zona horaria usada para "hoy" cuando el cliente no manda ?tz=
	DefaultTimezone string `toml:"default_timezone"`

	Odin  RemoteConfig `toml:"odin"`
	Plans RemoteConfig `toml:"plans"`
}

// StorageConfig usa el patrón tagged union: Driver decide qué campos aplican.
type StorageConfig struct {
	Driver     string `toml:"driver"`                // "memory", "postgres" o "sqlite"
	DSN        string `toml:"dsn,omitempty"`         // solo postgres
	SQLitePath string `toml:"sqlite_path,omitempty"` // solo sqlite
}

type AuthConfig struct {
	JWTSecret  string        `toml:"jwt_secret"`
	SessionTTL time.Duration `toml:"session_ttl"`

	// DevAuth habilita el header X-Debug-User-ID (nunca en producción).
	DevAuth bool `toml:"dev_auth"`

	AdminEmails     []string `toml:"admin_emails"`
	ModeratorEmails []string `toml:"moderator_emails"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type CommunityConfig struct {
	ModerationEnabled bool `toml:"moderation_enabled"`
	DedupLikes        bool `toml:"dedup_likes"`
}

type RemoteConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Default devuelve una configuración apta para desarrollo local.
// DefaultJWTSecret solo sirve con DEV_AUTH=true.
const DefaultJWTSecret = "dev-secret-change-me"

func Default() *Config {
	return &Config{
		Port:      "8080",
		AppName:   "pet-care-hub",
		LogLevel:  "info",
		LogFormat: "text",
		Storage: StorageConfig{
			Driver:     StorageMemory,
			SQLitePath: "pet-care-hub.db",
		},
		Auth: AuthConfig{
			JWTSecret:  DefaultJWTSecret,
			SessionTTL: 24 * time.Hour,
		},
		DefaultTimezone: "UTC",
	}
}

// Load arma la configuración final y la valida.
func Load() (*Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		fromFile, err := ReadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fromFile
	}

	// .env es opcional (dev); si no existe seguimos con el entorno real.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.AppName = getEnv("APP_NAME", cfg.AppName)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	cfg.Storage.Driver = getEnv("STORAGE", cfg.Storage.Driver)
	cfg.Storage.DSN = getEnv("DB_DSN", cfg.Storage.DSN)
	cfg.Storage.SQLitePath = getEnv("SQLITE_PATH", cfg.Storage.SQLitePath)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.SessionTTL = getEnvAsDuration("SESSION_TTL", cfg.Auth.SessionTTL)
	cfg.Auth.DevAuth = getEnvAsBool("DEV_AUTH", cfg.Auth.DevAuth)
	cfg.Auth.AdminEmails = getEnvAsList("ADMIN_EMAILS", cfg.Auth.AdminEmails)
	cfg.Auth.ModeratorEmails = getEnvAsList("MODERATOR_EMAILS", cfg.Auth.ModeratorEmails)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.Community.ModerationEnabled = getEnvAsBool("MODERATION_ENABLED", cfg.Community.ModerationEnabled)
	cfg.Community.DedupLikes = getEnvAsBool("DEDUP_LIKES", cfg.Community.DedupLikes)

	cfg.DefaultTimezone = getEnv("DEFAULT_TIMEZONE", cfg.DefaultTimezone)

	cfg.Odin.BaseURL = getEnv("ODIN_BASE_URL", cfg.Odin.BaseURL)
	cfg.Odin.APIKey = getEnv("ODIN_API_KEY", cfg.Odin.APIKey)
	cfg.Plans.BaseURL = getEnv("PLANS_BASE_URL", cfg.Plans.BaseURL)
	cfg.Plans.APIKey = getEnv("PLANS_API_KEY", cfg.Plans.APIKey)
}

// Validate revisa combinaciones inválidas antes de levantar nada.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("DB_DSN is required when STORAGE=postgres")
		}
	case StorageSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return errors.New("SQLITE_PATH is required when STORAGE=sqlite")
		}
	default:
		return fmt.Errorf("unsupported storage driver: %q", c.Storage.Driver)
	}

	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.JWTSecret == DefaultJWTSecret && !c.Auth.DevAuth {
		return errors.New("JWT_SECRET must be changed when DEV_AUTH is off")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("DEFAULT_TIMEZONE: %w", err)
	}
	return nil
}

// Location resuelve DefaultTimezone (vacío = UTC).
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.DefaultTimezone)
	if tz == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}

// Read decodifica un Config TOML partiendo de los defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Write codifica el Config como TOML.
func Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Init escribe un archivo nuevo; falla si ya existe.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvAsBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// getEnvAsList lee CSV: "a@x.com, b@x.com".
func getEnvAsList(key string, fallback []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
