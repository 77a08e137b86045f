package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/veloxerp/cari-recon/internal/config"
	"github.com/veloxerp/cari-recon/internal/domain"
	"github.com/veloxerp/cari-recon/internal/fx"
	"github.com/veloxerp/cari-recon/internal/handler"
	"github.com/veloxerp/cari-recon/internal/logging"
	"github.com/veloxerp/cari-recon/internal/middleware"
	"github.com/veloxerp/cari-recon/internal/recon"
	"github.com/veloxerp/cari-recon/internal/repository"
	"github.com/veloxerp/cari-recon/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("cari-recon", cfg.LogLevel, cfg.AppEnv)

	db, err := connectDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	fallbackRates, err := fx.ParseRateList(cfg.FallbackFXRates)
	if err != nil {
		slog.Error("invalid fallback fx rates", "error", err)
		os.Exit(1)
	}

	rateService := fx.NewRateServiceWithFallback(repository.NewRateRepository(db), fallbackRates)
	engine := recon.NewEngine(rateService, domain.NormalizeCurrency(cfg.ReportingCurrency))

	balances := service.NewBalanceService(
		repository.NewSalesInvoiceRepository(db),
		repository.NewPurchaseInvoiceRepository(db),
		repository.NewPaymentRepository(db),
		engine,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /api/v1/parties/{id}/balance", handler.NewBalanceHandler(balances).GetPartyBalance)

	var root http.Handler = mux
	root = middleware.Recovery(root)
	root = middleware.Logging(root)
	root = middleware.Tracing(root)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr, "reporting_currency", cfg.ReportingCurrency)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func connectDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connectDB: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeS) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeS) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connectDB: ping: %w", err)
	}

	return db, nil
}
