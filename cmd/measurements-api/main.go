package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dayanaadylkhanova/measurements-api/internal/app"
	"github.com/dayanaadylkhanova/measurements-api/pkg/config"
	"github.com/dayanaadylkhanova/measurements-api/pkg/logger"
	"go.uber.org/zap"
)

var (
	AppName      = "measurements-api"
	AppBuildTime = "dev"
	AppCommit    = "dev"
	AppRelease   = "dev"
)

func main() {
	// 1) Config: .env first, then the environment on top
	config.LoadDotEnv()
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("can't parse app config: %v", err)
	}
	if cfg.MaxCPU > 0 {
		runtime.GOMAXPROCS(cfg.MaxCPU)
	}

	info := &app.AppInfo{
		Name:      AppName,
		BuildTime: AppBuildTime,
		Commit:    AppCommit,
		Release:   AppRelease,
	}

	// 2) Logger
	zl := logger.NewJSON(cfg.LogLevel)
	defer func() {
		if r := recover(); r != nil {
			zl.Error("panic error", zap.Error(fmt.Errorf("%v", r)))
		}
		_ = zl.Sync()
	}()
	zap.ReplaceGlobals(zl)
	zl.Info(fmt.Sprintf("Application `%s` %s started.", AppName, AppRelease),
		zap.String("ooni_base_url", cfg.OONIBaseURL),
		zap.Bool("mlab_enabled", cfg.MLabEnabled),
	)

	// 3) Signals
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4) Run
	application, err := app.New(ctx, *cfg, info, zl)
	if err != nil {
		zl.Fatal("can't build app", zap.Error(err))
	}
	if err := application.Run(ctx); err != nil {
		switch {
		case errors.Is(err, app.ErrAppStartup):
			zl.Error("can't run application", zap.Error(err))
			defer os.Exit(1)
		case errors.Is(err, app.ErrAppShutdownWithError):
			zl.Error("application is shutdown with error", zap.Error(err))
		case errors.Is(err, app.ErrAppShutdownNormal):
			fallthrough
		default:
			zl.Warn("application is shutdown")
		}
	}

	time.Sleep(100 * time.Millisecond)
}
