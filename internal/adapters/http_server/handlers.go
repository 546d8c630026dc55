package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"reviewpulse/internal/adapters/observability"
	"reviewpulse/internal/app"
	"reviewpulse/internal/domain"
)

// Clients post bodies of a few hundred bytes; anything near this limit
// is garbage or abuse.
const maxBodyBytes = 1 << 20

type Handlers struct {
	Q   *app.QueryService
	Ing *app.IngestionService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.listReviews)
	s.mux.Post("/", h.createReview)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	qp := r.URL.Query()
	q := domain.ReviewQuery{
		Location:  qp.Get("location"),
		StartDate: qp.Get("start_date"),
		EndDate:   qp.Get("end_date"),
	}

	out, err := h.Q.List(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("list reviews failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	rec, err := h.Ing.Ingest(r.Context(), body)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Msg)
		case errors.Is(err, domain.ErrMalformedPayload):
			writeError(w, http.StatusBadRequest, domain.ErrMalformedPayload.Error())
		default:
			// Enrichment or other infrastructure failure; never a 400.
			log.Error().Err(err).Msg("ingest failed")
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	path := "form"
	if json.Valid(body) {
		path = "structured"
	}
	observability.ObserveIngest(path)
	writeJSON(w, http.StatusCreated, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
