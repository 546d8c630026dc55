package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	server "reviewpulse/internal/adapters/http_server"
	"reviewpulse/internal/app"
	"reviewpulse/internal/domain"
	"reviewpulse/internal/nlp"
	"reviewpulse/internal/storage/memory"
)

func newTestServer(st *memory.Store) *httptest.Server {
	srv := server.New(15 * time.Second)
	srv.MountHandlers(&server.Handlers{
		Q:   app.NewQueryService(st, nil, 0),
		Ing: app.NewIngestionService(st, nlp.NewScorer(), nlp.NewExtractor()),
	})
	return httptest.NewServer(srv.Mux())
}

func postForm(t *testing.T, ts *httptest.Server, form url.Values) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp, body
}

func TestPostForm_CreatesEnrichedReview(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	resp, body := postForm(t, ts, url.Values{
		"Location":   {"San Diego, California"},
		"ReviewBody": {"Great service!"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	id, _ := body["ReviewId"].(string)
	if id == "" {
		t.Fatalf("missing ReviewId: %v", body)
	}
	tsStr, _ := body["Timestamp"].(string)
	if _, err := time.Parse(domain.TimestampLayout, tsStr); err != nil {
		t.Fatalf("Timestamp %q: %v", tsStr, err)
	}
	sent, _ := body["sentiment"].(map[string]any)
	if sent == nil {
		t.Fatalf("missing sentiment: %v", body)
	}
	if c, _ := sent["compound"].(float64); c <= 0 {
		t.Fatalf("compound = %v, want > 0", sent["compound"])
	}
	if _, present := body["error"]; present {
		t.Fatal("success response must not carry an error key")
	}
}

func TestPostForm_MissingLocation(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	resp, body := postForm(t, ts, url.Values{"ReviewBody": {"x"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["error"] != "Missing Location or ReviewBody in request" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestPostForm_InvalidLocation(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	resp, body := postForm(t, ts, url.Values{"Location": {"Nowhere"}, "ReviewBody": {"x"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["error"] != "Invalid Location" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestPostJSON_StructuredPath(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	payload := `{"review_body": "Wonderful tacos in San Diego", "review_id": "spoof", "timestamp": "1999-01-01"}`
	resp, err := http.Post(ts.URL+"/", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ReviewId"] == "spoof" || body["ReviewId"] == "" {
		t.Fatalf("ReviewId = %v", body["ReviewId"])
	}
	if body["derived_location"] != "San Diego, California" {
		t.Fatalf("derived_location = %v", body["derived_location"])
	}
	if body["Location"] != "San Diego, California" {
		t.Fatalf("Location = %v", body["Location"])
	}
}

func TestPost_MissingJSONBodyField(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/", "application/json", strings.NewReader(`{"ReviewBody": "x"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] == "" || body["error"] == nil {
		t.Fatalf("missing error body: %v", body)
	}
}

func TestGet_FilterEndToEnd(t *testing.T) {
	st := memory.New()
	st.Seed([]domain.Review{
		{ID: "match", Body: "ok", Location: "Denver, Colorado", CreatedAt: "2020-06-01 09:00:00", Sentiment: domain.Sentiment{Compound: 0.2}},
		{ID: "other", Body: "ok", Location: "Phoenix, Arizona", CreatedAt: "2020-06-01 09:00:00", Sentiment: domain.Sentiment{Compound: 0.9}},
	})
	ts := newTestServer(st)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/?location=" + url.QueryEscape("Denver, Colorado") + "&start_date=2020-01-01&end_date=2020-12-31")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	var out []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0]["ReviewId"] != "match" {
		t.Fatalf("got %v", out)
	}
}

func TestGet_SortedByCompoundDesc(t *testing.T) {
	st := memory.New()
	st.Seed([]domain.Review{
		{ID: "mid", Location: "Denver, Colorado", CreatedAt: "2020-06-01 09:00:00", Sentiment: domain.Sentiment{Compound: 0.1}},
		{ID: "top", Location: "Denver, Colorado", CreatedAt: "2020-06-02 09:00:00", Sentiment: domain.Sentiment{Compound: 0.8}},
		{ID: "bottom", Location: "Denver, Colorado", CreatedAt: "2020-06-03 09:00:00", Sentiment: domain.Sentiment{Compound: -0.4}},
	})
	ts := newTestServer(st)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var out []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"top", "mid", "bottom"}
	for i, w := range want {
		if out[i]["ReviewId"] != w {
			t.Fatalf("pos %d = %v, want %s", i, out[i]["ReviewId"], w)
		}
	}
}

func TestGet_InvalidDateFilter(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/?start_date=junk")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGet_EmptyStoreReturnsArray(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var out []any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out == nil {
		t.Fatal("empty store must serialize as [], not null")
	}
}

func TestUnsupportedMethod(t *testing.T) {
	ts := newTestServer(memory.New())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}
