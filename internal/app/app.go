package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dayanaadylkhanova/measurements-api/internal/adapter/mlab"
	"github.com/dayanaadylkhanova/measurements-api/internal/adapter/ooni"
	http_server "github.com/dayanaadylkhanova/measurements-api/internal/adapter/transport/http"
	"github.com/dayanaadylkhanova/measurements-api/internal/metrics"
	"github.com/dayanaadylkhanova/measurements-api/internal/service"
	"github.com/dayanaadylkhanova/measurements-api/pkg/config"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	ooni       *ooni.Client
	mlabRunner *mlab.BigQueryRunner
	server     *http_server.Server
	metricsSrv *http.Server
}

func New(ctx context.Context, cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	if info == nil {
		info = &AppInfo{}
	}

	// 1) OONI client
	oc := ooni.NewClient(cfg.OONIBaseURL, cfg.OONITimeout, log.Named("ooni"))

	// 2) M-Lab client, only when enabled. Connect never fails; see BigQueryRunner.
	var perf service.PerformancePort
	var runner *mlab.BigQueryRunner
	if cfg.MLabEnabled {
		runner = mlab.Connect(ctx, mlab.ConnectConfig{
			ProjectID:       cfg.GCPProject,
			CredentialsFile: cfg.CredentialsFile,
		}, log.Named("mlab"))
		perf = mlab.NewClient(runner, log.Named("mlab"))
	}

	// 3) HTTP server
	version := info.Release
	if version == "" || version == "dev" {
		version = "1.0.0"
	}
	srv := http_server.NewServer(log, http_server.Config{
		Addr:        cfg.ListenAddr,
		Version:     version,
		CORSOrigins: cfg.CORSOrigins,
	}, oc, perf)

	a := &App{
		cfg:        cfg,
		info:       info,
		log:        log,
		ooni:       oc,
		mlabRunner: runner,
		server:     srv,
	}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		a.metricsSrv = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	}
	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() { errCh <- a.server.Start() }()
	if a.metricsSrv != nil {
		go func() {
			a.log.Info("metrics listen", zap.String("addr", a.metricsSrv.Addr))
			errCh <- a.metricsSrv.ListenAndServe()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ErrAppShutdownNormal
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("listener failed", zap.Error(err))
			runErr = ErrAppStartup
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	// Graceful shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	if err := a.server.Shutdown(shutdownCtx); err != nil && runErr == ErrAppShutdownNormal {
		a.log.Warn("http shutdown", zap.Error(err))
		runErr = ErrAppShutdownWithError
	}
	if a.metricsSrv != nil {
		_ = a.metricsSrv.Shutdown(shutdownCtx)
	}
	a.Close()

	return runErr
}

// Close releases the upstream connection pools.
func (a *App) Close() {
	a.ooni.Close()
	if a.mlabRunner != nil {
		if err := a.mlabRunner.Close(); err != nil {
			a.log.Warn("bigquery close", zap.Error(err))
		}
	}
}

func (a *App) Handler() http.Handler { return a.server.Handler() }
