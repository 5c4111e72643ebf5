package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wupitch/wupitch-server/internal/adapters/config"
	"github.com/wupitch/wupitch-server/internal/adapters/controller/http/setup"
	"github.com/wupitch/wupitch-server/internal/adapters/logger"
)

func main() {
	cfg := config.Get()

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: setup.Setup(cfg),
	}

	go func() {
		logger.Log.Infof("Listening on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Panicf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Forced shutdown: %v", err)
	}
	logger.Log.Info("Server stopped")
}
