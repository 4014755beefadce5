package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MENU_LOG_LEVEL", "MENU_REDIS_TTL", "DB_HOST", "REDIS_HOST", "KAFKA_BROKER", "KAFKA_TOPIC"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.DB.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "menu-events", cfg.Kafka.Topic)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MENU_LOG_LEVEL", "debug")
	t.Setenv("MENU_REDIS_TTL", "90m")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "menus")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("KAFKA_BROKER", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_TOPIC", "diner-events")

	cfg := Load()

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "host=db port=6543 user=chef password=secret dbname=menus sslmode=disable", cfg.DB.ConnString())
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, 90*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "diner-events", cfg.Kafka.Topic)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MENU_LOG_LEVEL", "loud")
	t.Setenv("MENU_REDIS_TTL", "forever")

	cfg := Load()

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(KafkaConfig{Brokers: []string{"k1:9092"}, Topic: "menu-events"})

	assert.Equal(t, "menu-events", w.Topic)
	assert.Equal(t, "k1:9092", w.Addr.String())
}
