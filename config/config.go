package config

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type App struct {
	// Storefront surface
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// Remote food-ordering API
	BackendURL string `envconfig:"BACKEND_URL" default:"https://foodwebsite-4tj7.onrender.com"`
	// Persistent client state
	RedisAddr   string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	StorePrefix string `envconfig:"STORE_PREFIX" default:"storefront"`
	// Event stream (optional; empty broker disables publishing)
	KafkaBroker string `envconfig:"KAFKA_BROKER"`
	EventsTopic string `envconfig:"EVENTS_TOPIC" default:"storefront-events"`
	// Admin access to category management
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

func Load() (App, error) {
	_ = godotenv.Load()
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
