package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	// StorePhone is the WhatsApp number order summaries are handed off to.
	StorePhone string
	// AMQPURL enables order event publication when set.
	AMQPURL       string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("OZERA_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	storePhone := os.Getenv("STORE_PHONE")
	if storePhone == "" {
		storePhone = "201271772724"
	}

	return Config{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		StorePhone:    storePhone,
		AMQPURL:       os.Getenv("AMQP_URL"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}
