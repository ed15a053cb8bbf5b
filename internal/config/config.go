package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultUploadRoot     = "static/uploads"
	DefaultMaxUploadBytes = 16 << 20
	DefaultDatabaseURL    = "file:comunidade.db"
	DefaultJWTSecret      = "changeme"
)

var ErrDefaultSecret = errors.New("JWT_SECRET não definido: segredo padrão recusado em modo release")

// Config é montada uma única vez no start e repassada aos componentes
// via construtor. Não deve ser alterada depois de Load.
type Config struct {
	DBUrl      string
	DBDebug    bool
	JWTSecret  string
	ServerPort string

	UploadRoot     string
	MaxUploadBytes int64

	RedisURL        string
	LoginRatePerMin int

	AllowSignup bool
	SeedAdmin   bool
	CORSOrigins []string
}

func Load() *Config {
	return &Config{
		DBUrl:      getEnv("DATABASE_URL", DefaultDatabaseURL),
		DBDebug:    getEnvBool("DB_DEBUG", false),
		JWTSecret:  getEnv("JWT_SECRET", DefaultJWTSecret),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		UploadRoot:     getEnv("UPLOAD_ROOT", DefaultUploadRoot),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),

		RedisURL:        getEnv("REDIS_URL", ""),
		LoginRatePerMin: int(getEnvInt64("LOGIN_RATE_PER_MIN", 10)),

		AllowSignup: getEnvBool("ALLOW_SIGNUP", false),
		SeedAdmin:   getEnvBool("SEED_ADMIN", false),
		CORSOrigins: getEnvList("CORS_ORIGINS"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// separado por vírgula; vazio libera qualquer origem
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// aceita "1", "true", "yes"
func getEnvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// UsesSQLite indica se DATABASE_URL aponta para um arquivo local
// em vez de um servidor postgres.
func (c *Config) UsesSQLite() bool {
	lower := strings.ToLower(c.DBUrl)
	return !strings.HasPrefix(lower, "postgres://") &&
		!strings.HasPrefix(lower, "postgresql://") &&
		!strings.Contains(lower, "host=")
}

func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// CheckSecret recusa o segredo padrão fora do modo de desenvolvimento.
func (c *Config) CheckSecret(release bool) error {
	if release && c.UsesDefaultSecret() {
		return ErrDefaultSecret
	}
	return nil
}
