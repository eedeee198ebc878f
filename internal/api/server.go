// Package api serves the catalog comparison reports as JSON.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"catalogcmp/internal/cache"
	"catalogcmp/internal/dataset"
	"catalogcmp/internal/insight"
	"catalogcmp/internal/observability"
)

type Server struct {
	Data     *dataset.Dataset
	Cache    cache.Cache
	CacheTTL time.Duration
	Narrator *insight.Narrator
	Log      zerolog.Logger
}

// Router builds the HTTP handler with every route mounted.
func (s *Server) Router(timeout time.Duration) http.Handler {
	if s.Cache == nil {
		s.Cache = cache.Nop{}
	}
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))
	r.Use(s.countRequests)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"catalogcmp"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/sources", s.sources)
		r.Get("/overview", s.overview)
		r.Get("/summary", s.summary)
		r.Get("/distribution/price", s.priceDistribution)
		r.Get("/distribution/rating", s.ratingDistribution)
		r.Get("/rating-by-price", s.ratingByPrice)
		r.Get("/brands", s.brands)
		r.Get("/brands/{brand}", s.brand)
		r.Get("/products", s.products)
		r.Get("/insight", s.insight)
	})
	return r
}

// countRequests increments api_requests_total with the matched route pattern.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		observability.APIRequests.WithLabelValues(route).Inc()
	})
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg, details string) {
	if status >= http.StatusInternalServerError {
		s.Log.Error().Int("status", status).Str("details", details).Msg(msg)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg, Details: details})
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// cached answers from the report cache when possible, otherwise renders build()
// and stores it. Keys start with the dataset fingerprint and include the
// canonical query string.
func (s *Server) cached(w http.ResponseWriter, r *http.Request, build func(ctx context.Context) (any, error)) {
	ctx := r.Context()
	key := cache.Key(s.Data.Fingerprint, r.URL.Path, r.URL.Query().Encode())

	body, err := s.Cache.Get(ctx, key)
	switch {
	case err == nil:
		observability.CacheLookups.WithLabelValues("hit").Inc()
		writeJSON(w, body)
		return
	case errors.Is(err, cache.ErrCacheMiss):
		observability.CacheLookups.WithLabelValues("miss").Inc()
	default:
		observability.CacheLookups.WithLabelValues("error").Inc()
		s.Log.Warn().Err(err).Str("key", key).Msg("report cache read failed")
	}

	v, err := build(ctx)
	if err != nil {
		s.writeBuildError(w, err)
		return
	}
	body, err = json.Marshal(v)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "encode response", err.Error())
		return
	}
	if err := s.Cache.Set(ctx, key, body, s.CacheTTL); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
	writeJSON(w, body)
}
