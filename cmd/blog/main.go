package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"

	"github.com/akarpov/microblog/internal/pkg/app"
	pkgCache "github.com/akarpov/microblog/internal/pkg/cache"
	postDelivery "github.com/akarpov/microblog/internal/post/delivery"
	postRepository "github.com/akarpov/microblog/internal/post/repository"
	postUsecase "github.com/akarpov/microblog/internal/post/usecase"
	userDelivery "github.com/akarpov/microblog/internal/user/delivery"
	userRepository "github.com/akarpov/microblog/internal/user/repository"
	userUsecase "github.com/akarpov/microblog/internal/user/usecase"
	"github.com/akarpov/microblog/pkg/migrations"
	"github.com/akarpov/microblog/pkg/statistics"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

func startApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	logger.Debug(fmt.Sprintf("web app starts at %s with configuration: %+v", config.Web.Host+":"+config.Web.Port, config))

	go func() {
		err := webApp.Start()
		if err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	const shutdownTimeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

	err := webApp.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	cancel()
	logger.Debug("web app exited")
}

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/blog.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "", "migrations", "Migrations directory path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}

	defer func(db *sqlx.DB) {
		err = db.Close()
		if err != nil {
			panic(err)
		}
	}(db)

	err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	defer redisClient.Close()

	cacheClient := pkgCache.NewRedisCache(redisClient, logger)

	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Kafka.Addresses...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	stat := statistics.NewKafkaStatistics(nil, kafkaWriter, logger, nil)

	freshness := config.Cache.Freshness()

	userRepo := userRepository.NewSqlxRepository(db, logger)
	userDel := userDelivery.New(userUsecase.New(userRepo, cacheClient, freshness, logger), logger)

	postRepo := postRepository.NewSqlxRepository(db, logger)
	postDel := postDelivery.New(postUsecase.New(postRepo, cacheClient, freshness, logger), logger)

	statisticsMW, err := app.NewStatisticsMW(stat, logger)
	if err != nil {
		panic(err)
	}

	webApp := app.NewFiberApp(config.Web, []app.Delivery{userDel, postDel}, statisticsMW, logger)

	startApp(webApp, config, logger)
	shutdownApp(webApp, logger)
}
