package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Event drivers.
const (
	EventsNone  = "none"
	EventsRedis = "redis"
	EventsKafka = "kafka"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule/limiter format, e.g. "5-M"

	EventsDriver string
	RedisURL     string
	RedisChannel string
	KafkaBrokers []string
	KafkaTopic   string

	CurrencySeedFile string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", StoragePostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "fiscal-balance")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("EVENTS_DRIVER", EventsNone)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_CHANNEL", "fiscal_balance.journals")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_TOPIC", "fiscal_balance.journals")
	viper.SetDefault("CURRENCY_SEED_FILE", "configs/currencies.yaml")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		StorageDriver:    strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:    viper.GetBool("RUN_MIGRATIONS"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		LoginRateLimit:   viper.GetString("LOGIN_RATE_LIMIT"),
		EventsDriver:     strings.ToLower(strings.TrimSpace(viper.GetString("EVENTS_DRIVER"))),
		RedisURL:         viper.GetString("REDIS_URL"),
		RedisChannel:     viper.GetString("REDIS_CHANNEL"),
		KafkaTopic:       viper.GetString("KAFKA_TOPIC"),
		CurrencySeedFile: viper.GetString("CURRENCY_SEED_FILE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
		log.Println("Warning: STORAGE_DRIVER=memory, ledger data is lost on restart.")
	default:
		log.Printf("Warning: unknown STORAGE_DRIVER '%s'. Defaulting to %s.\n", cfg.StorageDriver, StoragePostgres)
		cfg.StorageDriver = StoragePostgres
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.KafkaBrokers = splitList(viper.GetString("KAFKA_BROKERS"))

	switch cfg.EventsDriver {
	case EventsNone, EventsRedis:
	case EventsKafka:
		if len(cfg.KafkaBrokers) == 0 {
			log.Println("Warning: EVENTS_DRIVER=kafka but KAFKA_BROKERS is empty. Journal events are disabled.")
			cfg.EventsDriver = EventsNone
		}
	default:
		log.Printf("Warning: unknown EVENTS_DRIVER '%s'. Journal events are disabled.\n", cfg.EventsDriver)
		cfg.EventsDriver = EventsNone
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
