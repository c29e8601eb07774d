package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/papaslocas/sales-api/configs"
	"github.com/papaslocas/sales-api/internal/adapter/cache"
	apihttp "github.com/papaslocas/sales-api/internal/adapter/http"
	"github.com/papaslocas/sales-api/internal/adapter/repo"
	"github.com/papaslocas/sales-api/internal/logging"
	"github.com/papaslocas/sales-api/internal/usecase"
)

type App struct {
	Router *gin.Engine
	Server *http.Server
}

// InitWithConfig wires every dependency explicitly: the database pool
// and Redis client are built here and injected into the stores, never
// held as package state.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init("sales-api", cfg.App.LogFile)

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	cancel()

	// init redis (reservation store)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	logging.Base().Info("sales-api: starting up", "addr", cfg.App.HTTPAddr)

	// stores
	saleRepo := repo.NewMySQLSaleRepo(db)
	productRepo := repo.NewMySQLProductRepo(db)
	reservations := cache.NewRedisReservationStore(rdb, cfg.Reservations.TTL)

	// use cases + handlers + router
	registerUC := usecase.NewRegisterSale(saleRepo)
	reserveUC := usecase.NewCreateReservation(reservations)

	sh := apihttp.NewSaleHandler(registerUC, saleRepo)
	ph := apihttp.NewProductHandler(productRepo)
	rh := apihttp.NewReservationHandler(reserveUC, reservations)
	router := apihttp.NewRouter(sh, ph, rh)

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
	}

	return &App{Router: router, Server: srv}, cleanup, nil
}
