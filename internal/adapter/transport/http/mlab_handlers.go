package http_server

import (
	"net/http"

	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
	"github.com/dayanaadylkhanova/measurements-api/internal/service"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleNDTMeasurements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseNDTQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		res, err := s.mlab.GetNDTMeasurements(r.Context(), q)
		if err != nil {
			s.fail(w, r, "NDT measurements", err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) handleNDTMeasurement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		row, err := s.mlab.GetMeasurementByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			s.fail(w, r, "NDT measurement", err)
			return
		}
		writeJSON(w, http.StatusOK, row)
	}
}

func (s *Server) handleNDTCountries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := intParam(r, "limit", service.DefaultLimit, 1, service.MaxLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, entity.PerformanceCountriesResponse{
			Countries: s.mlab.GetAvailableCountries(r.Context(), limit),
		})
	}
}

func (s *Server) handleNDTStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err := dateParam(r, "start_date")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		end, err := dateParam(r, "end_date")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		stats, err := s.mlab.GetStatistics(r.Context(), entity.StatsQuery{
			StartDate:   start,
			EndDate:     end,
			CountryCode: r.URL.Query().Get("country_code"),
		})
		if err != nil {
			s.fail(w, r, "statistics", err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func parseNDTQuery(r *http.Request) (entity.NDTQuery, error) {
	var q entity.NDTQuery
	var err error
	if q.StartDate, err = dateParam(r, "start_date"); err != nil {
		return q, err
	}
	if q.EndDate, err = dateParam(r, "end_date"); err != nil {
		return q, err
	}
	if q.MinDownload, err = floatParam(r, "min_download"); err != nil {
		return q, err
	}
	if q.MaxDownload, err = floatParam(r, "max_download"); err != nil {
		return q, err
	}
	if q.Limit, err = intParam(r, "limit", service.DefaultLimit, 1, service.MaxLimit); err != nil {
		return q, err
	}
	q.CountryCode = r.URL.Query().Get("country_code")
	return q, nil
}
