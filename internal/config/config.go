package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	JWTSecret     string
	CORSOrigins   string
	ForecastYear  int // Tahmin hedef yılı (planlama dönemi)
	ForecastMonth int // Tahmin hedef ayı (1-12)
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=celikhane port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		ForecastYear:  getEnvInt("FORECAST_YEAR", 2024),
		ForecastMonth: getEnvInt("FORECAST_MONTH", 9),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.ForecastMonth < 1 || cfg.ForecastMonth > 12 {
		log.Fatalf("[FATAL] FORECAST_MONTH geçersiz: %d (1-12 arası olmalı)", cfg.ForecastMonth)
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=celikhane port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[FATAL] %s sayı olmalı: %q", key, v)
	}
	return n
}
