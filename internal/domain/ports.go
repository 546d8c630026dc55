package domain

import "context"

// ReviewStore holds the authoritative, insertion-ordered collection of
// reviews for the lifetime of the process. Append-only; no update or
// delete. Version increases by one per append, which makes it usable
// as a cache-key component for read paths.
type ReviewStore interface {
	Append(r Review)
	All() []Review
	Len() int
	Version() uint64
}

// SentimentScorer computes the polarity profile of a review body.
type SentimentScorer interface {
	Score(ctx context.Context, text string) (Sentiment, error)
}

// LexicalFeatures is what the extractor derives from free text: a
// best-effort location guess (empty when nothing matched) and the
// adjective-noun pairs found in the body, in order of appearance.
type LexicalFeatures struct {
	GuessedLocation string
	AdjNounPairs    []AdjNounPair
}

// LexicalFeatureExtractor derives lexical features from a review body.
type LexicalFeatureExtractor interface {
	Extract(ctx context.Context, text string) (LexicalFeatures, error)
}

// Cache is a read-through cache for query results.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ReviewQuery carries the raw filter values from the query string.
// Empty string means "no filter". Dates use DateLayout.
type ReviewQuery struct {
	Location  string
	StartDate string
	EndDate   string
}
