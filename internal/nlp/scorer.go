// Package nlp provides the in-process enrichment capabilities: a
// lexicon-based polarity scorer and a lexical feature extractor. Both
// are deterministic, dependency-free, and safe for concurrent use; the
// service can swap them for a remote NLP backend without touching the
// ingestion pipeline.
package nlp

import (
	"context"
	"math"
	"strings"
	"unicode"

	"reviewpulse/internal/domain"
)

// Scorer rates text with a valence lexicon. Scores follow the VADER
// conventions: compound in [-1, 1], and neg/neu/pos proportions that
// sum to ~1 over the sentiment-bearing mass of the text.
type Scorer struct{}

func NewScorer() *Scorer { return &Scorer{} }

const (
	negationDampener = -0.74 // a negated word keeps most of its (flipped) weight
	negationScope    = 3     // tokens to look back for a negation
	normalizeAlpha   = 15    // compound normalization constant
)

func (s *Scorer) Score(_ context.Context, text string) (domain.Sentiment, error) {
	tokens := tokenize(text)

	var sum, posSum, negSum float64
	var neuCount int
	for i, tok := range tokens {
		v, ok := valence[tok]
		if !ok {
			if !isBooster(tok) && !isNegation(tok) {
				neuCount++
			}
			continue
		}
		v = applyBooster(tokens, i, v)
		if negated(tokens, i) {
			v *= negationDampener
		}
		sum += v
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += -v + 1
		default:
			neuCount++
		}
	}

	// Exclamation marks amplify whatever polarity is already there.
	if n := strings.Count(text, "!"); n > 0 && sum != 0 {
		if n > 4 {
			n = 4
		}
		amp := float64(n) * 0.292
		if sum < 0 {
			amp = -amp
		}
		sum += amp
	}

	total := posSum + negSum + float64(neuCount)
	out := domain.Sentiment{Neutral: 1}
	if total > 0 {
		out.Positive = round3(posSum / total)
		out.Negative = round3(negSum / total)
		out.Neutral = round3(float64(neuCount) / total)
	}
	out.Compound = round4(sum / math.Sqrt(sum*sum+normalizeAlpha))
	return out, nil
}

// negated reports whether any of the few tokens before position i is
// a negation.
func negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationScope; j-- {
		if isNegation(tokens[j]) {
			return true
		}
	}
	return false
}

func applyBooster(tokens []string, i int, v float64) float64 {
	if i == 0 {
		return v
	}
	b, ok := boosters[tokens[i-1]]
	if !ok {
		return v
	}
	if v < 0 {
		b = -b
	}
	return v + b
}

func isNegation(tok string) bool { _, ok := negations[tok]; return ok }
func isBooster(tok string) bool  { _, ok := boosters[tok]; return ok }

// tokenize lowercases and splits on anything that is not a letter,
// digit, or apostrophe. Apostrophes survive so contractions match the
// negation set.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func round3(f float64) float64 { return math.Round(f*1000) / 1000 }
func round4(f float64) float64 { return math.Round(f*10000) / 10000 }
