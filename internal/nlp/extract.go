package nlp

import (
	"context"
	"strings"

	"reviewpulse/internal/domain"
)

// Extractor derives a location guess and adjective-noun pairs from
// review text. Tagging is heuristic (closed adjective list plus
// suffix rules) rather than a trained POS model; for short customer
// reviews that trade-off holds up well.
type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(_ context.Context, text string) (domain.LexicalFeatures, error) {
	return domain.LexicalFeatures{
		GuessedLocation: guessLocation(text),
		AdjNounPairs:    adjNounPairs(text),
	}, nil
}

// guessLocation returns the first valid location whose city name
// appears in the text, scanning the enumeration in its fixed order so
// repeated calls agree.
func guessLocation(text string) string {
	lower := strings.ToLower(text)
	for _, loc := range domain.ValidLocations {
		city := loc
		if i := strings.IndexByte(loc, ','); i > 0 {
			city = loc[:i]
		}
		if strings.Contains(lower, strings.ToLower(city)) {
			return loc
		}
	}
	return ""
}

// adjNounPairs walks the token stream and emits every adjective that
// is immediately followed by a noun-looking token.
func adjNounPairs(text string) []domain.AdjNounPair {
	tokens := tokenize(text)
	var pairs []domain.AdjNounPair
	for i := 0; i+1 < len(tokens); i++ {
		if isAdjective(tokens[i]) && isNounish(tokens[i+1]) {
			pairs = append(pairs, domain.AdjNounPair{tokens[i], tokens[i+1]})
		}
	}
	return pairs
}

func isAdjective(tok string) bool {
	if _, ok := stopwords[tok]; ok {
		return false
	}
	if _, ok := adjectives[tok]; ok {
		return true
	}
	for _, suf := range adjectiveSuffixes {
		if len(tok) > len(suf)+2 && strings.HasSuffix(tok, suf) {
			return true
		}
	}
	return false
}

// isNounish accepts anything content-bearing that did not classify as
// an adjective.
func isNounish(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	if _, ok := stopwords[tok]; ok {
		return false
	}
	return !isAdjective(tok)
}

// Deliberately short: broader endings like "-ant" or "-al" tag too
// many plain nouns (restaurant, hospital) as adjectives.
var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "less", "ish"}

// adjectives covers high-frequency review adjectives the suffix rules
// miss. Overlaps heavily with the valence lexicon on purpose.
var adjectives = map[string]struct{}{
	"amazing": {}, "awesome": {}, "bad": {}, "best": {}, "better": {},
	"big": {}, "cheap": {}, "clean": {}, "cold": {}, "comfortable": {},
	"dirty": {}, "excellent": {}, "expensive": {}, "fast": {}, "fine": {},
	"fresh": {}, "friendly": {}, "good": {}, "great": {}, "happy": {},
	"hot": {}, "huge": {}, "large": {}, "late": {}, "long": {},
	"lovely": {}, "mediocre": {}, "messy": {}, "new": {}, "nice": {},
	"noisy": {}, "old": {}, "perfect": {}, "poor": {}, "quick": {},
	"quiet": {}, "rude": {}, "slow": {}, "small": {}, "superb": {},
	"tasty": {}, "terrible": {}, "tiny": {}, "warm": {}, "wonderful": {},
	"worst": {}, "wrong": {},
}

var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "but": {},
	"by": {}, "can": {}, "did": {}, "do": {}, "does": {}, "for": {},
	"from": {}, "had": {}, "has": {}, "have": {}, "he": {}, "her": {},
	"here": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "just": {},
	"me": {}, "more": {}, "most": {}, "my": {}, "of": {}, "on": {},
	"once": {}, "only": {}, "or": {}, "our": {}, "out": {}, "over": {},
	"she": {}, "so": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "to": {}, "too": {}, "under": {},
	"until": {}, "up": {}, "was": {}, "we": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"why": {}, "will": {}, "with": {}, "would": {}, "you": {}, "your": {},
}
