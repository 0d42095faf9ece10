package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"FlowerShop/catalog"
	"FlowerShop/config"
	"FlowerShop/routers"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("無法讀取設定檔: %v", err)
	}

	logger, err := config.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("無法建立logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := config.SetupStore(ctx, cfg)
	if err != nil {
		logger.Fatal("無法連接到購物車儲存", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	cat, err := catalog.Default()
	if err != nil {
		logger.Fatal("無法載入商品目錄", zap.Error(err))
	}

	router := routers.SetupRouters(routers.Options{
		Store:         st,
		Catalog:       cat,
		Logger:        logger,
		StaticDir:     cfg.Server.StaticDir,
		CookieName:    cfg.Session.CookieName,
		SessionSecret: []byte(cfg.Session.Secret),
		SessionMaxAge: cfg.Session.MaxAge,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", zap.String("addr", cfg.Server.Addr), zap.String("store", cfg.Store.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
