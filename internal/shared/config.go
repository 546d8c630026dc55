package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SeedPath       string
	SeedWorkers    int
	NLPBase        string // empty -> in-process scorer/extractor
	NLPKey         string
	NLPRPS         int
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

func Load() Config {
	// .env is a dev convenience; absence is fine.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8000"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		SeedPath:       env("SEED_PATH", "data/reviews.csv"),
		SeedWorkers:    atoi("SEED_WORKERS", 8),
		NLPBase:        env("NLP_BASE_URL", ""),
		NLPKey:         env("NLP_API_KEY", ""),
		NLPRPS:         atoi("NLP_RPS", 5),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	if c.NLPBase != "" && c.NLPKey == "" {
		log.Warn().Msg("NLP_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
