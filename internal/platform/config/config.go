package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. The engine core takes no
// configuration of its own; everything here belongs to the adapters wired
// around it (HTTP, catalog store, event log, auth).
type Server struct {
	Addr string

	// PostgresDSN selects the durable skill catalog and event outbox.
	// Empty means in-memory stores (dev mode).
	PostgresDSN string

	// Redis fronts the skill catalog with a read-through cache when set.
	Redis RedisConfig

	// Kafka publishes recorded domain events when brokers are set.
	Kafka KafkaConfig

	JWTSigningKey string

	// DiceSeed fixes the percentile roller for reproducible dev runs.
	// Zero means seed from entropy.
	DiceSeed int64
}

// RedisConfig captures the catalog cache settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	TTL          time.Duration
}

// KafkaConfig captures the event publisher settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("EDAEMON_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var seed int64
	if raw := os.Getenv("EDAEMON_DICE_SEED"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seed = parsed
		}
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}
	topic := os.Getenv("KAFKA_EVENTS_TOPIC")
	if topic == "" {
		topic = "edaemon.skill-test-events"
	}

	return Server{
		Addr:        addr,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			TTL:          5 * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		JWTSigningKey: jwtSigningKey,
		DiceSeed:      seed,
	}
}
