package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	LogLevel        string
	DatabaseURL     string
	DatabaseName    string
	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int
	NumWorkers      int
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DatabaseName:    getEnv("DATABASE_NAME", "phonestore"),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:   getEnv("RABBITMQ_QUEUE", "warehouse_orders"),
		ChannelPoolSize: getEnvAsInt("CHANNEL_POOL_SIZE", 10),
		NumWorkers:      getEnvAsInt("NUM_WORKERS", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
