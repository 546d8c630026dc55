package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "reviewpulse/internal/adapters/redis"
	"reviewpulse/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_RoundTrip(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	in := []domain.Review{{
		ID:        "r1",
		Body:      "Lovely room",
		Location:  "Denver, Colorado",
		CreatedAt: "2020-06-01 09:00:00",
		Sentiment: domain.Sentiment{Positive: 0.7, Compound: 0.64},
	}}
	if err := c.Set(ctx, "reviews:1:||", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.Review
	ok, err := c.Get(ctx, "reviews:1:||", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].ID != "r1" || out[0].Sentiment.Compound != 0.64 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	var out []domain.Review
	ok, err := c.Get(ctx, "nope", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}

	if err := c.Set(ctx, "k", []domain.Review{{ID: "x"}}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "k", &out)
	if ok {
		t.Fatal("expected miss after del")
	}
}
