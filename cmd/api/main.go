package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"storeapi/internal/config"
	"storeapi/internal/handler"
	"storeapi/internal/infra/db"
	infraRepo "storeapi/internal/infra/repository"
	"storeapi/internal/metrics"
	"storeapi/internal/server"
	"storeapi/internal/usecase"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func setupLogger(cfg config.Config) *log.Entry {
	if cfg.IsProd() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	return log.WithField("component", "api")
}

func main() {
	//.envはあれば読む
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Fatal("failed to load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	logger := setupLogger(cfg)

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect database")
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.WithError(err).Fatal("failed to get sql.DB")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	//Usecase生成
	clock := &realClock{}
	productUC := usecase.NewProductUsecase(txManager, productRepo, clock, cfg.PageSize, m)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, clock, cfg.PageSize, m)

	//Handler生成
	e := server.New(server.Handlers{
		Products: handler.NewProductHandler(productUC),
		Orders:   handler.NewOrderHandler(orderUC),
		Health:   handler.NewHealthHandler(sqlDB),
	}, m, logger.WithField("layer", "http"))

	//Server起動
	go func() {
		logger.WithFields(log.Fields{
			"addr":      cfg.Addr(),
			"db_driver": cfg.DBDriver,
			"page_size": cfg.PageSize,
		}).Info("server starting")
		if err := server.Start(e, cfg.Addr()); err != nil {
			logger.WithError(err).Fatal("server stopped")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			//HTTPを止めてからDBを閉じる
			"http-server": func(ctx context.Context) error {
				if err := e.Shutdown(ctx); err != nil {
					return err
				}
				return sqlDB.Close()
			},
		},
	)

	exitCode := <-wait
	logger.WithField("exit_code", exitCode).Info("shutdown complete")
	os.Exit(exitCode)
}
