package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"storefront-core/internal/cart"
	"storefront-core/internal/catalog"
	"storefront-core/internal/category"
	"storefront-core/internal/config"
	"storefront-core/internal/handler"
	"storefront-core/internal/logger"
	"storefront-core/internal/notify"
	"storefront-core/internal/product"
	"storefront-core/internal/search"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	notifier := notify.NewLogNotifier()
	productRepo := product.NewRESTRepository(cfg.APIBaseURL, cfg.SearchLimit)
	categoryRepo := category.NewRESTRepository(cfg.APIBaseURL)

	catalogStore := catalog.NewStore(productRepo, notifier)
	cartStore := cart.NewStore()

	searchCtrl := search.NewController(productRepo, func(p product.Product) {
		logger.L().Info("navigating to product",
			zap.String("product_id", p.ID),
			zap.String("name", p.Name),
		)
	}, cfg.SearchDebounce)
	defer searchCtrl.Close()

	// Warm the catalog before serving; a failed load still serves, with
	// the error surfaced in the snapshot.
	catalogStore.LoadProducts(context.Background(), "")

	h := handler.New(catalogStore, cartStore, searchCtrl, categoryRepo)
	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      h.Router([]byte(cfg.SecretKey)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.L().Info("storefront engine listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("shutdown failed", zap.Error(err))
	}
}
