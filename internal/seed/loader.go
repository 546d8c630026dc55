// Package seed pre-populates the review store from a CSV export before
// the server starts accepting traffic. Every row is enriched with
// sentiment exactly like a POSTed record; timestamps are trusted from
// the file, ids are generated.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"reviewpulse/internal/adapters/observability"
	"reviewpulse/internal/domain"
)

// Load reads the CSV at path and returns enriched records in file
// order. Scoring runs on up to workers goroutines; the first scorer
// error aborts the load.
//
// Required columns: ReviewBody, Location, Timestamp. Extra columns are
// ignored. Rows with an empty body are skipped with a warning; the
// original pipeline trusted its export, so locations are NOT checked
// against the valid-location set here.
func Load(ctx context.Context, path string, scorer domain.SentimentScorer, workers int) ([]domain.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = 4
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	out := make([]domain.Review, len(rows))
	var mu sync.Mutex
	var firstErr error

	for i, row := range rows {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, row Row) {
			defer wg.Done()
			defer sem.Release(1)

			sent, serr := scorer.Score(ctx, row.Body)
			if serr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("score seed row %d: %w", i, serr)
				}
				mu.Unlock()
				return
			}
			out[i] = domain.Review{
				ID:        uuid.NewString(),
				Body:      row.Body,
				Location:  row.Location,
				CreatedAt: row.Timestamp,
				Sentiment: sent,
			}
			observability.ObserveIngest("seed")
		}(i, row)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// Row is one seed record before enrichment.
type Row struct {
	Body, Location, Timestamp string
}

// Parse reads the CSV header and rows, skipping rows without a body.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read seed header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"ReviewBody", "Location", "Timestamp"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("seed file missing column %q", required)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read seed row: %w", err)
		}
		row := Row{
			Body:      field(rec, cols["ReviewBody"]),
			Location:  field(rec, cols["Location"]),
			Timestamp: field(rec, cols["Timestamp"]),
		}
		if row.Body == "" {
			log.Warn().Int("line", line).Msg("skipping seed row without body")
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}
