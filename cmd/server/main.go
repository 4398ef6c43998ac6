package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"uxstudy/internal/consent"
	consenthandler "uxstudy/internal/consent/handler"
	"uxstudy/internal/demographic"
	demographichandler "uxstudy/internal/demographic/handler"
	"uxstudy/internal/exitpoll"
	exithandler "uxstudy/internal/exitpoll/handler"
	"uxstudy/internal/platform/config"
	"uxstudy/internal/platform/httpserver"
	"uxstudy/internal/platform/logger"
	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/report"
	reporthandler "uxstudy/internal/report/handler"
	"uxstudy/internal/storage"
	"uxstudy/internal/task"
	taskhandler "uxstudy/internal/task/handler"
	httptransport "uxstudy/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the section packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	store, err := storage.NewCSVStore(cfg.DataDir)
	if err != nil {
		log.Error("failed to prepare data directory", "dir", cfg.DataDir, "error", err.Error())
		os.Exit(1)
	}

	m := metrics.New()
	sessions := task.NewInMemorySessionStore()

	router := httptransport.NewRouter(log, m,
		consenthandler.New(consent.NewService(store), log, m),
		demographichandler.New(demographic.NewService(store), log, m),
		taskhandler.New(task.NewService(store, sessions), log, m),
		exithandler.New(exitpoll.NewService(store), log, m),
		reporthandler.New(report.NewService(store), log, m),
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting uxstudy", "addr", cfg.Addr, "data_dir", store.Dir())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
