package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// App carries the process-level knobs. Backing stores are optional:
// the server runs fully in-memory when no postgres/redis/kafka env
// is present.
type App struct {
	Port           string
	RateLimitRPS   float64
	RateLimitBurst int
	PaymentDelay   time.Duration
	KitchenTopic   string
}

// Load reads .env if present and resolves the app config from the
// environment.
func Load() App {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment")
	}

	return App{
		Port:           getEnv("PORT", "5000"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
		PaymentDelay:   getEnvDuration("PAYMENT_DELAY", 1500*time.Millisecond),
		KitchenTopic:   getEnv("KAFKA_KITCHEN_TOPIC", "kitchen-tickets"),
	}
}

// InitPostgres opens the order archive database. Returns nil when
// DB_HOST is unset.
func InitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil
	}
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	if err = db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// InitRedis connects the session cache. Returns nil when REDIS_HOST
// is unset.
func InitRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + os.Getenv("REDIS_PORT"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to connect to redis")
	}
	return client
}

// NewKafkaWriter builds the kitchen ticket writer. Returns nil when
// KAFKA_BROKER is unset.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
