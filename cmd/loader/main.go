// Command loader bulk-posts a CSV of reviews to a running API. Rows go
// over the flat form-encoded shape, so the server validates and
// enriches them exactly like live submissions.
package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"reviewpulse/internal/adapters/observability"
	"reviewpulse/internal/seed"
	"reviewpulse/internal/shared"
)

func main() {
	var (
		target  = flag.String("target", "http://localhost:8000/", "API endpoint to post reviews to")
		path    = flag.String("csv", "data/reviews.csv", "CSV file with ReviewBody, Location, Timestamp columns")
		workers = flag.Int("workers", 8, "concurrent posts")
		rps     = flag.Int("rps", 20, "posts per second")
	)
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Str("path", *path).Msg("open csv failed")
	}
	rows, err := seed.Parse(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("parse csv failed")
	}
	log.Info().Int("rows", len(rows)).Str("target", *target).Msg("loader starting")

	ctx := context.Background()
	hc := &http.Client{Timeout: 20 * time.Second}
	rl := rate.NewLimiter(rate.Limit(*rps), *rps)
	sem := semaphore.NewWeighted(int64(*workers))
	var wg sync.WaitGroup

	var mu sync.Mutex
	posted, failed := 0, 0

	for i, row := range rows {
		if err := rl.Wait(ctx); err != nil {
			log.Fatal().Err(err).Msg("rate limiter failed")
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(i int, row seed.Row) {
			defer wg.Done()
			defer sem.Release(1)

			form := url.Values{
				"Location":   {row.Location},
				"ReviewBody": {row.Body},
			}
			resp, err := hc.Post(*target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
			if err != nil {
				log.Warn().Int("row", i).Err(err).Msg("post failed")
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusCreated {
				log.Warn().Int("row", i).Int("status", resp.StatusCode).Msg("post rejected")
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			posted++
			mu.Unlock()
		}(i, row)
	}

	wg.Wait()
	log.Info().Int("posted", posted).Int("failed", failed).Msg("loader completed")
}
