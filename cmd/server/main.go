package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/tasklist/api/handler"
	"github.com/fastygo/tasklist/internal/config"
	"github.com/fastygo/tasklist/internal/middleware"
	"github.com/fastygo/tasklist/internal/router"
	"github.com/fastygo/tasklist/internal/services/lifecycle"
	"github.com/fastygo/tasklist/pkg/httpcontext"
	"github.com/fastygo/tasklist/pkg/logger"
	"github.com/fastygo/tasklist/repository/memory"
	taskUC "github.com/fastygo/tasklist/usecase/task"
)

func main() {
	cfg := config.MustLoad()

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		Name:     cfg.AppName,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, cancel := manager.WatchSignals(context.Background())
	defer cancel()

	// The task list lives only as long as the process.
	taskRepo := memory.NewTaskRepository()
	taskUseCase := taskUC.New(taskRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(taskUseCase, ctxAdapter, zapLogger),
	}

	r := router.New(handlers, middleware.AccessLog(zapLogger))

	server := &fasthttp.Server{
		Handler:            r.Handler,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		MaxConnsPerIP:      cfg.HTTP.MaxConn,
		Name:               cfg.AppName,
		MaxRequestBodySize: 64 * 1024,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Error("server crashed", zap.Error(err))
			cancel()
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
