package http_server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
	"github.com/dayanaadylkhanova/measurements-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// rootEndpoints is the fixed directory served at "/".
var rootEndpoints = map[string]string{
	"measurements": "/api/v1/measurements",
	"tests":        "/api/v1/tests",
	"countries":    "/api/v1/countries",
	"health":       "/health",
}

func (s *Server) handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endpoints := make(map[string]string, len(rootEndpoints))
		for k, v := range rootEndpoints {
			endpoints[k] = v
		}
		writeJSON(w, http.StatusOK, entity.RootResponse{
			Message:   "OONI Data Processing API",
			Version:   s.version,
			Endpoints: endpoints,
		})
	}
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, entity.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
	}
}

func (s *Server) handleMeasurements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := intParam(r, "limit", service.DefaultLimit, 1, service.MaxLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		offset, err := intParam(r, "offset", 0, 0, math.MaxInt)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		qs := r.URL.Query()
		body, err := s.ooni.GetMeasurements(r.Context(), entity.MeasurementQuery{
			TestName: qs.Get("test_name"),
			ProbeCC:  qs.Get("probe_cc"),
			Since:    qs.Get("since"),
			Until:    qs.Get("until"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			s.fail(w, r, "measurements", err)
			return
		}
		writeRaw(w, body)
	}
}

func (s *Server) handleMeasurementDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := s.ooni.GetMeasurementDetails(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			s.fail(w, r, "measurement", err)
			return
		}
		writeRaw(w, body)
	}
}

func (s *Server) handleTests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, entity.TestsResponse{Tests: s.ooni.GetTestNames(r.Context())})
	}
}

func (s *Server) handleCountries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, entity.CountriesResponse{Countries: s.ooni.GetCountries(r.Context())})
	}
}

// fail is the single place where adapter errors become HTTP responses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.log.Error("upstream",
		zap.String("op", op),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching %s: %s", op, err.Error()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, entity.ErrorResponse{Detail: detail})
}
