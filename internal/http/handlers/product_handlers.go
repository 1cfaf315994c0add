package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/catalog"
)

// Step1Handler godoc
// @Summary List complete products
// @Description Returns every upstream product that has all twelve fields set, with snake_case keys.
// @Tags products
// @Produce json
// @Success 200 {array} models.OutputRecord
// @Failure 500 {object} ErrorResponse
// @Router /step1 [get]
func (s *Server) Step1Handler(w http.ResponseWriter, r *http.Request) {
	s.serveProducts(w, r, catalog.Step1)
}

// Step2Handler godoc
// @Summary List complete products in a release date range
// @Tags products
// @Produce json
// @Param release_date_start query string false "Earliest release date, inclusive (YYYY-MM-DD)"
// @Param release_date_end query string false "Latest release date, inclusive (YYYY-MM-DD)"
// @Success 200 {array} models.OutputRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /step2 [get]
func (s *Server) Step2Handler(w http.ResponseWriter, r *http.Request) {
	s.serveProducts(w, r, catalog.Step2)
}

// Step3Handler godoc
// @Summary List complete products filtered by release date and brand
// @Tags products
// @Produce json
// @Param release_date_start query string false "Earliest release date, inclusive (YYYY-MM-DD)"
// @Param release_date_end query string false "Latest release date, inclusive (YYYY-MM-DD)"
// @Param brands query string false "Comma-separated brand names, matched exactly"
// @Success 200 {array} models.OutputRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /step3 [get]
func (s *Server) Step3Handler(w http.ResponseWriter, r *http.Request) {
	s.serveProducts(w, r, catalog.Step3)
}

// Step4Handler godoc
// @Summary Filter and paginate complete products
// @Tags products
// @Produce json
// @Param release_date_start query string false "Earliest release date, inclusive (YYYY-MM-DD)"
// @Param release_date_end query string false "Latest release date, inclusive (YYYY-MM-DD)"
// @Param brands query string false "Comma-separated brand names, matched exactly"
// @Param page_size query int true "Page size"
// @Param page_number query int true "Page number, starting at 1"
// @Success 200 {array} models.OutputRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /step4 [get]
func (s *Server) Step4Handler(w http.ResponseWriter, r *http.Request) {
	s.serveProducts(w, r, catalog.Step4)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"}); err != nil {
		s.logger.Error("failed to write response", slog.Any("error", err))
	}
}

// serveProducts validates the query before the upstream is called.
func (s *Server) serveProducts(w http.ResponseWriter, r *http.Request, stages catalog.StageSet) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)

	filter, err := catalog.Parse(queryParams(r, stages), stages)
	if err != nil {
		s.logger.DebugContext(ctx, "invalid query",
			slog.String("request_id", requestID),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		if err := writeError(w, http.StatusBadRequest, err.Error(), ""); err != nil {
			s.logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		}
		return
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch products",
			slog.String("request_id", requestID),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		if err := writeError(w, http.StatusInternalServerError, fetchFailedMessage, err.Error()); err != nil {
			s.logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		}
		return
	}

	result := catalog.Apply(products, filter)
	s.logger.DebugContext(ctx, "products served",
		slog.String("request_id", requestID),
		slog.String("stages", stages.String()),
		slog.Int("upstream_count", len(products)),
		slog.Int("result_count", len(result)),
	)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		s.logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
