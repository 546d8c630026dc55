package domain

// Wire formats shared by ingestion, seed loading, and date filtering.
// TimestampLayout is also the stored form of Review.CreatedAt.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Sentiment is the polarity profile attached to every stored review.
// Compound is normalized to [-1, 1].
type Sentiment struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// AdjNounPair marshals as a two-element array: ["adjective", "noun"].
type AdjNounPair [2]string

// Review is the canonical record all ingestion paths converge to.
// DerivedLocation and AdjNounPairs are populated on the structured
// (JSON) ingestion path only.
type Review struct {
	ID              string        `json:"ReviewId"`
	Body            string        `json:"ReviewBody"`
	Location        string        `json:"Location,omitempty"`
	CreatedAt       string        `json:"Timestamp"`
	Sentiment       Sentiment     `json:"sentiment"`
	DerivedLocation string        `json:"derived_location,omitempty"`
	AdjNounPairs    []AdjNounPair `json:"adj_noun_pairs,omitempty"`
}

// ValidLocations is the closed set of declared locations the service
// accepts. Order matters only for deterministic location guessing.
var ValidLocations = []string{
	"Albuquerque, New Mexico",
	"Carlsbad, California",
	"Chula Vista, California",
	"Colorado Springs, Colorado",
	"Denver, Colorado",
	"El Cajon, California",
	"El Paso, Texas",
	"Escondido, California",
	"Fresno, California",
	"La Mesa, California",
	"Las Vegas, Nevada",
	"Los Angeles, California",
	"Oceanside, California",
	"Phoenix, Arizona",
	"Sacramento, California",
	"Salt Lake City, Utah",
	"San Diego, California",
	"Tucson, Arizona",
}

var validLocationSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ValidLocations))
	for _, l := range ValidLocations {
		m[l] = struct{}{}
	}
	return m
}()

func IsValidLocation(s string) bool {
	_, ok := validLocationSet[s]
	return ok
}
