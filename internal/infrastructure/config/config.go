package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	developmentOrigin = "http://localhost:3000"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"APP_ENV,   default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSAllowedOrigins is the comma-separated allow-list of browser origins.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=https://calva-corro-system.vercel.app,https://calva-corro-system-8f1vj9lxk-lucasmontiel358-4941s-projects.vercel.app"`

	Mongo MongoConfig
	Redis RedisConfig
	Drive DriveConfig
	Auth  AuthConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=legal_records"`
}

// RedisConfig configures the optional lock backend. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,   default=0"`
	LockTTL  time.Duration `env:"LOCK_TTL,   default=10s"`
	// ConnectTimeout bounds the startup ping retries.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT, default=5s"`
}

type DriveConfig struct {
	CredentialsJSON string `env:"GCREDENTIALS"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	RootFolderID    string `env:"DRIVE_ROOT_FOLDER_ID, default=1Xdb39qfZIbdPLQdg7xfh353QVeI7eQCA"`
	OthersFolder    string `env:"DRIVE_OTHERS_FOLDER,  default=OtrosArchivos"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"JWT_TTL,       default=24h"`
	// Required enforces bearer tokens on every record route.
	Required bool `env:"AUTH_REQUIRED, default=false"`
	// EnableUsersOnCreate stores new users enabled instead of disabled.
	EnableUsersOnCreate bool `env:"USERS_ENABLED_ON_CREATE, default=false"`
}

// Load reads a local .env file when present and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.Required && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: AUTH_REQUIRED needs JWT_SECRET")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), EnvProduction)
}

// AllowedOrigins returns the CORS allow-list, adding the local front-end
// origin outside production.
func (c *Config) AllowedOrigins() []string {
	out := make([]string, 0, len(c.CORSAllowedOrigins)+1)
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if !c.IsProduction() {
		out = append(out, developmentOrigin)
	}
	return out
}
