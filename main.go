package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"example.com/rocketshoes-cart/internal/config"
	domcart "example.com/rocketshoes-cart/internal/domain/cart"
	"example.com/rocketshoes-cart/internal/infra/catalog"
	"example.com/rocketshoes-cart/internal/infra/money"
	"example.com/rocketshoes-cart/internal/infra/persistence/memory"
	"example.com/rocketshoes-cart/internal/infra/persistence/mysql"
	"example.com/rocketshoes-cart/internal/infra/persistence/postgres"
	"example.com/rocketshoes-cart/internal/infra/persistence/sqlite"
	"example.com/rocketshoes-cart/internal/infra/security"
	apihttp "example.com/rocketshoes-cart/internal/interface/http"
	authuc "example.com/rocketshoes-cart/internal/usecase/auth"
	cartuc "example.com/rocketshoes-cart/internal/usecase/cart"
	productuc "example.com/rocketshoes-cart/internal/usecase/product"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer closeStorage()

	formatter, err := money.NewFormatter(cfg.Money.Currency, cfg.Money.Locale)
	if err != nil {
		log.Fatalf("money: %v", err)
	}

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	tokenSvc := security.NewJWTService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	cartSvc := cartuc.NewService(storage, catalogClient, cartuc.NewLogNotifier(log.Default()))

	api := apihttp.NewAPI(apihttp.Dependencies{
		AuthService:    authuc.NewService(tokenSvc),
		CartService:    cartSvc,
		ProductService: productuc.NewService(catalogClient, cartSvc),
		Health:         storage,
		Money:          formatter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on :%s (storage=%s, catalog=%s) ...", cfg.HTTP.Port, cfg.Storage.Driver, cfg.Catalog.BaseURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("listen: %v", err)
	}
	log.Printf("stopped")
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (domcart.Storage, func(), error) {
	switch cfg.Driver {
	case "memory":
		return memory.NewStorage(), func() {}, nil

	case "sqlite":
		s, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("mysql open error: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("mysql ping error: %w", err)
		}
		s := mysql.NewStorage(db)
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return s, func() { _ = db.Close() }, nil

	case "postgres":
		s, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pg connect error: %w", err)
		}
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
