package nlp_test

import (
	"context"
	"testing"

	"reviewpulse/internal/nlp"
)

func TestScore_PositiveText(t *testing.T) {
	s := nlp.NewScorer()
	got, err := s.Score(context.Background(), "Great service!")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Compound <= 0 {
		t.Fatalf("compound = %v, want > 0", got.Compound)
	}
	if got.Positive <= 0 {
		t.Fatalf("pos = %v, want > 0", got.Positive)
	}
}

func TestScore_NegativeText(t *testing.T) {
	s := nlp.NewScorer()
	got, err := s.Score(context.Background(), "Terrible food and rude staff.")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Compound >= 0 {
		t.Fatalf("compound = %v, want < 0", got.Compound)
	}
}

func TestScore_NegationFlips(t *testing.T) {
	s := nlp.NewScorer()
	plain, _ := s.Score(context.Background(), "The room was good.")
	negated, _ := s.Score(context.Background(), "The room was not good.")
	if plain.Compound <= 0 {
		t.Fatalf("plain compound = %v, want > 0", plain.Compound)
	}
	if negated.Compound >= 0 {
		t.Fatalf("negated compound = %v, want < 0", negated.Compound)
	}
}

func TestScore_CompoundStaysInRange(t *testing.T) {
	s := nlp.NewScorer()
	texts := []string{
		"",
		"meh",
		"best best best best best amazing wonderful excellent!!!!",
		"worst worst worst horrible terrible awful disgusting!!!!",
	}
	for _, txt := range texts {
		got, err := s.Score(context.Background(), txt)
		if err != nil {
			t.Fatalf("err for %q: %v", txt, err)
		}
		if got.Compound < -1 || got.Compound > 1 {
			t.Fatalf("compound %v out of range for %q", got.Compound, txt)
		}
	}
}

func TestScore_BoosterAmplifies(t *testing.T) {
	s := nlp.NewScorer()
	plain, _ := s.Score(context.Background(), "good")
	boosted, _ := s.Score(context.Background(), "very good")
	if boosted.Compound <= plain.Compound {
		t.Fatalf("boosted %v <= plain %v", boosted.Compound, plain.Compound)
	}
}

func TestExtract_AdjNounPairs(t *testing.T) {
	e := nlp.NewExtractor()
	got, err := e.Extract(context.Background(), "Wonderful staff and a spacious room.")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := [][2]string{{"wonderful", "staff"}, {"spacious", "room"}}
	if len(got.AdjNounPairs) != len(want) {
		t.Fatalf("pairs = %v, want %v", got.AdjNounPairs, want)
	}
	for i, p := range got.AdjNounPairs {
		if p[0] != want[i][0] || p[1] != want[i][1] {
			t.Fatalf("pair %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestExtract_LocationGuess(t *testing.T) {
	e := nlp.NewExtractor()
	got, err := e.Extract(context.Background(), "Stayed downtown in Denver last week, loved it.")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.GuessedLocation != "Denver, Colorado" {
		t.Fatalf("location = %q, want Denver, Colorado", got.GuessedLocation)
	}

	got, _ = e.Extract(context.Background(), "No city mentioned here.")
	if got.GuessedLocation != "" {
		t.Fatalf("location = %q, want empty", got.GuessedLocation)
	}
}
