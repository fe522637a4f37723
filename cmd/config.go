package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"ordertracking/internal/adapters/out/postgres"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBLockTimeout     time.Duration
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	OrderCancelAfterConfirm    bool
	PendingOrderTTL            time.Duration
	PendingOrderExpirySchedule string
}

// LoadConfig reads the configuration from the environment. Variables found in
// envFiles are added first without overriding the real environment; missing
// files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	r := envReader{}
	cfg := Config{
		HTTPPort: r.String("HTTP_PORT", "8080"),
		LogLevel: r.String("LOG_LEVEL", "info"),

		DBHost:            r.String("DB_HOST", "localhost"),
		DBPort:            r.String("DB_PORT", "5432"),
		DBUser:            r.String("DB_USER", "postgres"),
		DBPassword:        r.String("DB_PASSWORD", ""),
		DBName:            r.String("DB_NAME", "ordertracking"),
		DBSslMode:         r.String("DB_SSLMODE", "disable"),
		DBLockTimeout:     r.Duration("DB_LOCK_TIMEOUT", 5*time.Second),
		DBMaxOpenConns:    r.Int("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    r.Int("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: r.Duration("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		OrderCancelAfterConfirm:    r.Bool("ORDER_CANCEL_AFTER_CONFIRM", true),
		PendingOrderTTL:            r.Duration("PENDING_ORDER_TTL", 0),
		PendingOrderExpirySchedule: r.String("PENDING_ORDER_EXPIRY_SCHEDULE", "0 * * * * *"),
	}

	if cfg.DBLockTimeout < 0 {
		r.fail("DB_LOCK_TIMEOUT", errors.New("must not be negative"))
	}
	if cfg.PendingOrderTTL < 0 {
		r.fail("PENDING_ORDER_TTL", errors.New("must not be negative"))
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN builds a keyword/value connection string accepted by both pgx and lib/pq.
func (c Config) DSN() string {
	parts := []string{
		"host=" + quoteDSN(c.DBHost),
		"port=" + quoteDSN(c.DBPort),
		"user=" + quoteDSN(c.DBUser),
		"dbname=" + quoteDSN(c.DBName),
		"sslmode=" + quoteDSN(c.DBSslMode),
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+quoteDSN(c.DBPassword))
	}
	return strings.Join(parts, " ")
}

func (c Config) Pool() postgres.PoolConfig {
	return postgres.PoolConfig{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

func (c Config) CancellationPolicy() order.CancellationPolicy {
	return order.CancellationPolicy{AllowAfterConfirm: c.OrderCancelAfterConfirm}
}

// SlogLevel parses LogLevel, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func quoteDSN(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return "'" + value + "'"
}

type envReader struct {
	errs []error
}

func (r *envReader) fail(key string, cause error) {
	r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, cause))
}

func (r *envReader) String(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (r *envReader) Int(key string, fallback int) int {
	raw := r.String(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func (r *envReader) Bool(key string, fallback bool) bool {
	raw := r.String(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func (r *envReader) Duration(key string, fallback time.Duration) time.Duration {
	raw := r.String(key, "")
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}
