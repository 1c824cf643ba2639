package http_server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dayanaadylkhanova/measurements-api/internal/metrics"
	"github.com/dayanaadylkhanova/measurements-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Config struct {
	Addr        string
	Version     string
	CORSOrigins []string
}

type Server struct {
	log     *zap.Logger
	addr    string
	version string
	ooni    service.CensorshipPort
	mlab    service.PerformancePort
	httpSrv *http.Server
}

// NewServer wires the route table. mlab may be nil, in which case the /api/v1/mlab
// routes are not mounted.
func NewServer(log *zap.Logger, cfg Config, ooni service.CensorshipPort, mlab service.PerformancePort) *Server {
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	s := &Server{log: log, addr: cfg.Addr, version: cfg.Version, ooni: ooni, mlab: mlab}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", s.handleRoot())
	r.Get("/health", s.handleHealth())
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/measurements", s.handleMeasurements())
		r.Get("/measurements/{id}", s.handleMeasurementDetails())
		r.Get("/tests", s.handleTests())
		r.Get("/countries", s.handleCountries())

		if s.mlab != nil {
			r.Route("/mlab", func(r chi.Router) {
				r.Get("/measurements", s.handleNDTMeasurements())
				r.Get("/measurements/{id}", s.handleNDTMeasurement())
				r.Get("/countries", s.handleNDTCountries())
				r.Get("/statistics", s.handleNDTStatistics())
			})
		}
	})

	s.httpSrv = &http.Server{Addr: cfg.Addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	return s
}

func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr), zap.Bool("mlab_routes", s.mlab != nil))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", route),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}
