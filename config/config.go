package config

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	LogLevel zerolog.Level
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// DBConfig is enabled only when DB_HOST is set.
type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

func (c DBConfig) ConnString() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=disable"
}

type RedisConfig struct {
	Host string
	Port string
	TTL  time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// Load reads .env when present and then the process environment. With no
// variables set every side channel stays disabled.
func Load() *Config {
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(getEnv("MENU_LOG_LEVEL", "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	ttl, err := time.ParseDuration(getEnv("MENU_REDIS_TTL", "24h"))
	if err != nil {
		ttl = 24 * time.Hour
	}

	return &Config{
		LogLevel: level,
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "restaurant"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Redis: RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: getEnv("REDIS_PORT", "6379"),
			TTL:  ttl,
		},
		Kafka: KafkaConfig{
			Brokers: splitBrokers(os.Getenv("KAFKA_BROKER")),
			Topic:   getEnv("KAFKA_TOPIC", "menu-events"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitBrokers(csv string) []string {
	var brokers []string
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func MustInitPostgres(cfg DBConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	return client
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}
