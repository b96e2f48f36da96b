package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the geo service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port for the HTTP API and monitoring endpoints.
// - ProviderType: The geocoding provider to use (mock, google, nominatim).
// - APIKey: The API key for the geocoding provider (required for Google).
// - RateLimit: Requests per second allowed against the provider.
// - Workers: The number of concurrent workers locating orders.
// - Interval: The duration between order polls.
// - Store: Location deliveries are measured from.
// - DeliveryRadiusKm: Largest distance the store delivers to.
// - CacheTTL: Lifetime of cached geocoding results.
// - Redis: Geocoding cache settings; an empty address disables the cache.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env              string
	Port             int
	ProviderType     string
	APIKey           string
	RateLimit        int
	Workers          int
	Interval         time.Duration
	Store            StoreConfig
	DeliveryRadiusKm float64
	CacheTTL         time.Duration
	Redis            RedisConfig
	Database         PostgresConfig
}

// StoreConfig is the location of the dispatching store.
type StoreConfig struct {
	Latitude  float64
	Longitude float64
}

// RedisConfig holds the connection details of the geocoding cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

var defaults = map[string]string{
	"FRESHOZ_ENV_FILE":           ".env",
	"FRESHOZ_ENV":                "production",
	"FRESHOZ_PORT":               "8080",
	"FRESHOZ_PROVIDER_TYPE":      "mock",
	"FRESHOZ_RATE_LIMIT":         "50",
	"FRESHOZ_WORKERS":            "4",
	"FRESHOZ_INTERVAL":           "1m",
	"FRESHOZ_STORE_LAT":          "34.0522",
	"FRESHOZ_STORE_LON":          "-118.2437",
	"FRESHOZ_DELIVERY_RADIUS_KM": "10",
	"FRESHOZ_CACHE_TTL":          "720h",
	"REDIS_DB":                   "0",
	"DB_PORT":                    "5432",
}

// MustLoad loads the configuration from the environment and an optional .env file.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	env := viper.New()
	env.AutomaticEnv()
	for key, value := range defaults {
		env.SetDefault(key, value)
	}

	// Variables already present in the environment win over the file.
	_ = godotenv.Load(env.GetString("FRESHOZ_ENV_FILE"))

	interval, err := time.ParseDuration(env.GetString("FRESHOZ_INTERVAL"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	cacheTTL, err := time.ParseDuration(env.GetString("FRESHOZ_CACHE_TTL"))
	if err != nil {
		panic("failed to parse cache ttl from configuration")
	}

	port, err := strconv.Atoi(env.GetString("FRESHOZ_PORT"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	workers, err := strconv.Atoi(env.GetString("FRESHOZ_WORKERS"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	rateLimit, err := strconv.Atoi(env.GetString("FRESHOZ_RATE_LIMIT"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer types")
	}

	redisDB, err := strconv.Atoi(env.GetString("REDIS_DB"))
	if err != nil {
		panic("failed to parse redis db from configuration, must be an integer types")
	}

	store := mustParseStore(env)

	radius, err := strconv.ParseFloat(env.GetString("FRESHOZ_DELIVERY_RADIUS_KM"), 64)
	if err != nil || !(radius >= 0) {
		panic("failed to parse delivery radius from configuration")
	}

	return &Config{
		Env:              env.GetString("FRESHOZ_ENV"),
		Port:             port,
		ProviderType:     env.GetString("FRESHOZ_PROVIDER_TYPE"),
		APIKey:           env.GetString("FRESHOZ_PROVIDER_KEY"),
		RateLimit:        rateLimit,
		Workers:          workers,
		Interval:         interval,
		Store:            store,
		DeliveryRadiusKm: radius,
		CacheTTL:         cacheTTL,
		Redis: RedisConfig{
			Addr:     env.GetString("REDIS_ADDR"),
			Password: env.GetString("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Database: PostgresConfig{
			Host:     env.GetString("DB_HOST"),
			Port:     env.GetString("DB_PORT"),
			User:     env.GetString("DB_USERNAME"),
			Password: env.GetString("DB_PASSWORD"),
			Name:     env.GetString("DB_NAME"),
		},
	}
}

func mustParseStore(env *viper.Viper) StoreConfig {
	const maxLat, maxLon = 90, 180

	lat, err := strconv.ParseFloat(env.GetString("FRESHOZ_STORE_LAT"), 64)
	if err != nil || !(lat >= -maxLat && lat <= maxLat) {
		panic("failed to parse store latitude from configuration")
	}

	lon, err := strconv.ParseFloat(env.GetString("FRESHOZ_STORE_LON"), 64)
	if err != nil || !(lon >= -maxLon && lon <= maxLon) {
		panic("failed to parse store longitude from configuration")
	}

	return StoreConfig{Latitude: lat, Longitude: lon}
}
