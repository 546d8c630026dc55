package app

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"reviewpulse/internal/domain"
)

// IngestionService normalizes one external submission into the
// canonical record, enriches it, and appends it to the store.
//
// Two payload shapes are accepted, tried in order: the structured JSON
// shape ({"review_body": ...}), then the flat form-urlencoded shape
// (Location=...&ReviewBody=...). They carry different trust rules: the
// structured path derives the location from the text, the flat path
// requires a caller-declared member of the valid-location set.
type IngestionService struct {
	store     domain.ReviewStore
	scorer    domain.SentimentScorer
	extractor domain.LexicalFeatureExtractor
	validate  *validator.Validate
	now       func() time.Time
}

func NewIngestionService(st domain.ReviewStore, sc domain.SentimentScorer, ex domain.LexicalFeatureExtractor) *IngestionService {
	return &IngestionService{
		store:     st,
		scorer:    sc,
		extractor: ex,
		validate:  validator.New(),
		now:       time.Now,
	}
}

type structuredPayload struct {
	ReviewBody string `json:"review_body" validate:"required"`
	// Client-declared identity and timing are ignored on purpose;
	// id and created_at are always server-assigned.
}

type formPayload struct {
	Location   string `validate:"required"`
	ReviewBody string `validate:"required"`
}

// Ingest parses, validates, enriches, and stores one submission.
// Nothing is appended on any failure path.
func (s *IngestionService) Ingest(ctx context.Context, body []byte) (domain.Review, error) {
	if json.Valid(body) {
		var sp structuredPayload
		if err := json.Unmarshal(body, &sp); err == nil {
			return s.ingestStructured(ctx, sp)
		}
	}

	vals, err := url.ParseQuery(string(body))
	if err != nil {
		return domain.Review{}, domain.ErrMalformedPayload
	}
	return s.ingestForm(ctx, formPayload{
		Location:   vals.Get("Location"),
		ReviewBody: vals.Get("ReviewBody"),
	})
}

func (s *IngestionService) ingestStructured(ctx context.Context, p structuredPayload) (domain.Review, error) {
	if err := s.validate.Struct(p); err != nil {
		return domain.Review{}, &domain.ValidationError{Msg: "Missing review_body in request"}
	}

	r := s.newRecord(p.ReviewBody)
	sent, err := s.scorer.Score(ctx, p.ReviewBody)
	if err != nil {
		return domain.Review{}, &domain.EnrichmentError{Op: "sentiment", Err: err}
	}
	r.Sentiment = sent

	feats, err := s.extractor.Extract(ctx, p.ReviewBody)
	if err != nil {
		return domain.Review{}, &domain.EnrichmentError{Op: "lexical", Err: err}
	}
	// The structured path never trusts a declared location; both the
	// Location field and its explicit derived twin come from the text.
	r.Location = feats.GuessedLocation
	r.DerivedLocation = feats.GuessedLocation
	r.AdjNounPairs = feats.AdjNounPairs

	s.store.Append(r)
	return r, nil
}

func (s *IngestionService) ingestForm(ctx context.Context, p formPayload) (domain.Review, error) {
	if err := s.validate.Struct(p); err != nil {
		return domain.Review{}, &domain.ValidationError{Msg: "Missing Location or ReviewBody in request"}
	}
	if !domain.IsValidLocation(p.Location) {
		return domain.Review{}, &domain.ValidationError{Msg: "Invalid Location"}
	}

	r := s.newRecord(p.ReviewBody)
	r.Location = p.Location
	sent, err := s.scorer.Score(ctx, p.ReviewBody)
	if err != nil {
		return domain.Review{}, &domain.EnrichmentError{Op: "sentiment", Err: err}
	}
	r.Sentiment = sent

	s.store.Append(r)
	return r, nil
}

func (s *IngestionService) newRecord(body string) domain.Review {
	return domain.Review{
		ID:        uuid.NewString(),
		Body:      body,
		CreatedAt: s.now().Format(domain.TimestampLayout),
	}
}
