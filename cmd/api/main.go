package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cart-api/internal/auth"
	"cart-api/internal/config"
	"cart-api/internal/httpserver"
	cartrepo "cart-api/internal/repository/cart"
	itemrepo "cart-api/internal/repository/item"
	cartsvc "cart-api/internal/service/cart"
	itemsvc "cart-api/internal/service/item"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	itemRepo := itemrepo.NewMemoryFromFile(cfg.ItemsFile, logger)
	itemService := itemsvc.New(itemRepo)
	cartStore := cartrepo.NewMemory()
	cartService := cartsvc.New(cartStore, itemRepo, cfg.CartTTL, cfg.MaxItemsPerCart)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	if cfg.JWTSecret == "" {
		logger.Printf("JWT_SECRET not set, tokens are decoded without verification")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		CartSvc:  cartService,
		ItemSvc:  itemService,
		Verifier: verifier,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
