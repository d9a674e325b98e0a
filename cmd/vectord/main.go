package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/7phs/simplevector/internal/config"
	"github.com/7phs/simplevector/internal/server"
	"github.com/7phs/simplevector/internal/storages"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	errExitCode = 2
)

func logLevel(conf config.Config) zap.AtomicLevel {
	var level zapcore.Level

	switch conf.LogLevel() {
	case config.LogLevelDebug:
		level = zapcore.DebugLevel
	case config.LogLevelInfo:
		level = zapcore.InfoLevel
	case config.LogLevelWarning:
		level = zapcore.WarnLevel
	case config.LogLevelError:
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	return zap.NewAtomicLevelAt(level)
}

func buildLogger(conf config.Config) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.Level = logLevel(conf)

	return logConfig.Build()
}

func main() {
	conf, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("failed to prepare config: %v", err)
	}

	logger, err := buildLogger(conf)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("APP RUN")

	logger.Info("config",
		zap.String(config.LOGLEVEL, string(conf.LogLevel())),
		zap.Int(config.PORT, conf.Port()),
		zap.Duration(config.MAINTENANCE, conf.Maintenance()),
		zap.Int(config.RESERVE, conf.Reserve()),
		zap.Int(config.MAXITEMS, conf.MaxItems()),
		zap.Int(config.MAXRECORD, conf.MaxRecord()),
	)

	logger.Info("init: storages")

	storages, err := storages.NewInMemStorages(
		logger,
		conf,
	)
	if err != nil {
		logger.Fatal("failed to init storages",
			zap.Error(err),
		)
	}

	logger.Info("init: server")

	srv := server.NewServer(
		logger,
		conf,
		storages,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		logger.Info("interrupt")

		cancel()
	}()

	go func() {
		logger.Info("start: server")

		err := srv.Start()
		if err != nil {
			logger.Error("failed to start server",
				zap.Error(err),
			)
			os.Exit(errExitCode)
		}
	}()

	<-ctx.Done()

	logger.Info("stop: server")

	srv.Stop()

	logger.Info("finish")
}
