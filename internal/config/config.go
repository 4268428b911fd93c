package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	GinMode        string
	TLSCertFile    string
	TLSKeyFile     string
	MaxUploadBytes int64
	QueryDelay     time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

type Env interface {
	Getenv(key string) string
}

type osEnv struct{}

func (osEnv) Getenv(key string) string { return os.Getenv(key) }

func LoadConfig() (Config, error) {
	// A missing .env is fine; process env vars still apply.
	_ = godotenv.Load()
	return LoadConfigFromEnv(osEnv{})
}

func LoadConfigFromEnv(env Env) (Config, error) {
	cfg := Config{
		Port:           8080,
		GinMode:        "release",
		MaxUploadBytes: 10 << 20,
		RateLimitRPS:   50,
		RateLimitBurst: 100,
	}

	if raw := env.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT")
		}
		cfg.Port = port
	}

	if raw := env.Getenv("GIN_MODE"); raw != "" {
		cfg.GinMode = raw
	}

	cfg.TLSCertFile = env.Getenv("TLS_CERT_FILE")
	cfg.TLSKeyFile = env.Getenv("TLS_KEY_FILE")

	if raw := env.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_UPLOAD_BYTES")
		}
		cfg.MaxUploadBytes = n
	}

	if raw := env.Getenv("QUERY_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("invalid QUERY_DELAY_MS")
		}
		cfg.QueryDelay = time.Duration(ms) * time.Millisecond
	}

	if raw := env.Getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS")
		}
		cfg.RateLimitRPS = rps
	}

	if raw := env.Getenv("RATE_LIMIT_BURST"); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil || burst <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST")
		}
		cfg.RateLimitBurst = burst
	}

	return cfg, nil
}
