package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalogcmp/internal/analytics"
	"catalogcmp/internal/insight"
	"catalogcmp/internal/model"
	"catalogcmp/internal/showcase"
)

// badRequest marks a build error caused by request parameters.
type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }
func (b badRequest) Unwrap() error { return b.err }

func (s *Server) writeBuildError(w http.ResponseWriter, err error) {
	var br badRequest
	switch {
	case errors.As(err, &br):
		s.writeError(w, http.StatusBadRequest, "invalid request", br.Error())
	case errors.Is(err, analytics.ErrBrandNotCommon):
		s.writeError(w, http.StatusNotFound, "brand not found in both sources", err.Error())
	case errors.Is(err, insight.ErrDisabled):
		s.writeError(w, http.StatusServiceUnavailable, "insight is not configured", "set OPENAI_API_KEY")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		s.writeError(w, http.StatusGatewayTimeout, "request timed out", err.Error())
	default:
		s.writeError(w, http.StatusBadGateway, "upstream failure", err.Error())
	}
}

type sourceInfo struct {
	Source model.Source `json:"source"`
	Label  string       `json:"label"`
}

type sourcesResponse struct {
	Fingerprint string               `json:"fingerprint"`
	Sources     []sourceInfo         `json:"sources"`
	Reports     []loadReportResponse `json:"reports"`
}

type loadReportResponse struct {
	Source         model.Source `json:"source"`
	Label          string       `json:"label"`
	RowsRead       int          `json:"rows_read"`
	RowsKept       int          `json:"rows_kept"`
	RowsDropped    int          `json:"rows_dropped"`
	NullRatings    int          `json:"null_ratings"`
	NullReviews    int          `json:"null_reviews"`
	MissingColumns []string     `json:"missing_columns"`
}

func (s *Server) sources(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		resp := sourcesResponse{Fingerprint: s.Data.Fingerprint}
		for _, src := range model.Sources {
			resp.Sources = append(resp.Sources, sourceInfo{Source: src, Label: s.Data.Label(src)})
		}
		for _, rep := range s.Data.Reports {
			missing := rep.MissingColumns
			if missing == nil {
				missing = []string{}
			}
			resp.Reports = append(resp.Reports, loadReportResponse{
				Source:         rep.Source,
				Label:          rep.Label,
				RowsRead:       rep.RowsRead,
				RowsKept:       rep.RowsKept,
				RowsDropped:    rep.RowsDropped,
				NullRatings:    rep.NullRatings,
				NullReviews:    rep.NullReviews,
				MissingColumns: missing,
			})
		}
		return resp, nil
	})
}

func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		return analytics.BuildOverview(s.Data.Table), nil
	})
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		g, err := analytics.ParseGroupBy(r.URL.Query().Get("group"))
		if err != nil {
			return nil, badRequest{err}
		}
		rows, err := analytics.Aggregate(s.Data.Table, g)
		if err != nil {
			return nil, badRequest{err}
		}
		if rows == nil {
			rows = []analytics.GroupSummary{}
		}
		return struct {
			Group analytics.GroupBy        `json:"group"`
			Rows  []analytics.GroupSummary `json:"rows"`
		}{g, rows}, nil
	})
}

type distributionResponse struct {
	Bins []analytics.Bin             `json:"bins"`
	Rows []analytics.DistributionRow `json:"rows"`
}

func (s *Server) priceDistribution(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		t := s.Data.Table
		b := analytics.PriceBinningFor(t)
		return distributionResponse{Bins: b.Bins, Rows: analytics.PriceDistribution(t)}, nil
	})
}

func (s *Server) ratingDistribution(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		t := s.Data.Table
		return distributionResponse{Bins: analytics.RatingBinning().Bins, Rows: analytics.RatingDistribution(t)}, nil
	})
}

func (s *Server) ratingByPrice(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		return analytics.RatingByPrice(s.Data.Table), nil
	})
}

func (s *Server) brands(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		return analytics.ListBrands(s.Data.Table), nil
	})
}

func (s *Server) brand(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		name := chi.URLParam(r, "brand")
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		return analytics.CompareBrand(s.Data.Table, name)
	})
}

func (s *Server) products(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(context.Context) (any, error) {
		q, err := parseGalleryQuery(r.URL.Query())
		if err != nil {
			return nil, badRequest{err}
		}
		return showcase.Build(s.Data.Table, q), nil
	})
}

// parseGalleryQuery reads source, skin, hair, min_price and max_price. skin and
// hair may repeat or hold comma-separated tokens.
func parseGalleryQuery(v url.Values) (showcase.Query, error) {
	q := showcase.Query{
		Source:    model.SourceA,
		SkinTypes: splitTokens(v["skin"]),
		HairTypes: splitTokens(v["hair"]),
	}
	if src := v.Get("source"); src != "" {
		q.Source = model.Source(strings.ToUpper(src))
		if !q.Source.Valid() {
			return q, fmt.Errorf("unknown source %q (want A or B)", src)
		}
	}
	var err error
	if q.MinPrice, err = optionalFloat(v, "min_price"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = optionalFloat(v, "max_price"); err != nil {
		return q, err
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return q, fmt.Errorf("min_price %g is above max_price %g", *q.MinPrice, *q.MaxPrice)
	}
	return q, nil
}

func splitTokens(values []string) []string {
	var out []string
	for _, v := range values {
		for _, tok := range strings.Split(v, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

func optionalFloat(v url.Values, key string) (*float64, error) {
	raw := v.Get(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a number", key, raw)
	}
	return &f, nil
}

func (s *Server) insight(w http.ResponseWriter, r *http.Request) {
	if !s.Narrator.Enabled() {
		s.writeBuildError(w, insight.ErrDisabled)
		return
	}
	s.cached(w, r, func(ctx context.Context) (any, error) {
		text, err := s.Narrator.Summarize(ctx, analytics.BuildOverview(s.Data.Table), s.Data.Labels)
		if err != nil {
			return nil, err
		}
		return struct {
			Insight string `json:"insight"`
		}{text}, nil
	})
}
