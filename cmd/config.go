package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"orderpanel/internal/adapters/out/sqlstore"
	"orderpanel/internal/core/application/auth"
	"orderpanel/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerNone     = "none"
)

type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr         string
	SessionTTL        time.Duration
	AdminPasswordHash string

	EventBroker           string
	KafkaBrokers          []string
	KafkaOrderEventsTopic string
	RabbitMQURL           string
	RabbitMQQueue         string
	OutboxRelaySchedule   string

	LogLevel    string
	LogFormat   string
	SeedCatalog bool
}

// LoadConfig reads the environment after loading envFile into it. A missing
// envFile is fine; variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	ttl, err := durationVariable("SESSION_TTL", auth.DefaultSessionTTL)
	if err != nil {
		return Config{}, err
	}
	seed, err := boolVariable("SEED_CATALOG", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:              variable("HTTP_PORT", "8080"),
		DBDriver:              variable("DB_DRIVER", sqlstore.DriverPostgres),
		DBHost:                variable("DB_HOST", "localhost"),
		DBPort:                variable("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		RedisAddr:             variable("REDIS_ADDR", "localhost:6379"),
		SessionTTL:            ttl,
		AdminPasswordHash:     os.Getenv("ADMIN_PASSWORD_HASH"),
		EventBroker:           strings.ToLower(variable("EVENT_BROKER", BrokerNone)),
		KafkaBrokers:          listVariable("KAFKA_BROKERS"),
		KafkaOrderEventsTopic: variable("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),
		RabbitMQURL:           os.Getenv("RABBITMQ_URL"),
		RabbitMQQueue:         variable("RABBITMQ_QUEUE", "order_events"),
		OutboxRelaySchedule:   variable("OUTBOX_RELAY_SCHEDULE", jobs.DefaultOutboxRelaySchedule),
		LogLevel:              variable("LOG_LEVEL", "info"),
		LogFormat:             variable("LOG_FORMAT", "text"),
		SeedCatalog:           seed,
	}, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []error

	switch c.DBDriver {
	case sqlstore.DriverPostgres, sqlstore.DriverMySQL:
	default:
		problems = append(problems, fmt.Errorf("DB_DRIVER %q is not one of postgres, mysql", c.DBDriver))
	}
	if c.DBName == "" {
		problems = append(problems, errors.New("DB_NAME is required"))
	}

	switch c.EventBroker {
	case BrokerNone:
	case BrokerKafka:
		if len(c.KafkaBrokers) == 0 {
			problems = append(problems, errors.New("KAFKA_BROKERS is required when EVENT_BROKER=kafka"))
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			problems = append(problems, errors.New("RABBITMQ_URL is required when EVENT_BROKER=rabbitmq"))
		}
	default:
		problems = append(problems, fmt.Errorf("EVENT_BROKER %q is not one of kafka, rabbitmq, none", c.EventBroker))
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// Database converts the DB_* settings for sqlstore.Open.
func (c Config) Database() sqlstore.Config {
	return sqlstore.Config{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// NewLogger builds the process logger: JSON when LOG_FORMAT=json, text
// otherwise.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func variable(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func listVariable(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func boolVariable(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
