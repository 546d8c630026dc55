package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	server "reviewpulse/internal/adapters/http_server"
	"reviewpulse/internal/adapters/nlpapi"
	"reviewpulse/internal/adapters/observability"
	redisad "reviewpulse/internal/adapters/redis"
	"reviewpulse/internal/app"
	"reviewpulse/internal/domain"
	"reviewpulse/internal/nlp"
	"reviewpulse/internal/seed"
	"reviewpulse/internal/shared"
	"reviewpulse/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// enrichment capabilities: remote service when configured,
	// in-process providers otherwise
	var (
		scorer    domain.SentimentScorer
		extractor domain.LexicalFeatureExtractor
	)
	if cfg.NLPBase != "" {
		client, err := nlpapi.New(cfg.NLPBase, cfg.NLPKey, cfg.NLPRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize NLP client")
		}
		scorer, extractor = client, client
		log.Info().Str("base", cfg.NLPBase).Msg("using remote NLP service")
	} else {
		scorer, extractor = nlp.NewScorer(), nlp.NewExtractor()
	}

	// store + seed
	store := memory.New()
	if _, err := os.Stat(cfg.SeedPath); err != nil {
		log.Warn().Str("path", cfg.SeedPath).Msg("seed file not found, starting empty")
	} else {
		rs, err := seed.Load(context.Background(), cfg.SeedPath, scorer, cfg.SeedWorkers)
		if err != nil {
			log.Fatal().Err(err).Msg("seed load failed")
		}
		store.Seed(rs)
		log.Info().Int("reviews", len(rs)).Msg("seed loaded")
	}

	// optional query-result cache
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("query cache enabled")
	}

	// services
	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	ing := app.NewIngestionService(store, scorer, extractor)

	// http
	srv := server.New(cfg.RequestTimeout)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Ing: ing})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
