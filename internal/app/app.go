package app

import (
	"context"
	"net/http"
	"time"

	"miniblog/config"
	"miniblog/internal/adapter/in/rest"
	"miniblog/internal/adapter/in/web"
	"miniblog/internal/adapter/out/storage/snapshot"
	"miniblog/internal/service"
	"miniblog/pkg/logger"
)

type App struct {
	cfg config.Config
	srv *http.Server
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	store := snapshot.New(cfg.Snapshot.Path)
	if err := store.Load(ctx); err != nil {
		// Fail-open: an unreadable snapshot means starting empty, not
		// refusing to start.
		log.Error("loading snapshot failed, starting empty", "error", err)
	}

	userSvc := service.NewUserService(store)
	postSvc := service.NewPostService(store, store)

	mux := http.NewServeMux()
	rest.NewHandler(userSvc, postSvc).Register(mux)

	pages, err := web.NewHandler(postSvc)
	if err != nil {
		return nil, err
	}
	pages.Register(mux)

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           requestLog(log, mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "snapshot", cfg.Snapshot.Path)
	return &App{cfg: cfg, srv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shCtx)
		return nil

	case err := <-errCh:
		return err
	}
}
