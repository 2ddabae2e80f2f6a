package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"restaurant-dashboard/internal/app/api"
	"restaurant-dashboard/internal/app/refresh"
	"restaurant-dashboard/internal/common/config"
	"restaurant-dashboard/internal/common/db"
	"restaurant-dashboard/internal/common/logger"
	"restaurant-dashboard/internal/common/mq"
	"restaurant-dashboard/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml")
	port := flag.Int("port", 0, "http port (overrides config)")
	flag.Parse()

	lg := logger.New("bootstrap")
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := *cfgPath
	if path == "" {
		found, err := config.FindConfig()
		if err != nil {
			lg.Error("no config found", zap.Error(err))
			os.Exit(2)
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		lg.Error("fatal", zap.Error(err))
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	var src store.Source
	switch cfg.Snapshot.Source {
	case "postgres":
		conn, err := db.Connect(ctx, cfg.Database.Host, cfg.Database.Port,
			cfg.Database.User, cfg.Database.Pass, cfg.Database.Name)
		if err != nil {
			lg.Error("fatal", zap.Error(err))
			os.Exit(1)
		}
		defer conn.Close()
		src = store.NewPGSource(conn)
	default:
		src = store.NewFileSource(cfg.Snapshot.RestaurantsPath, cfg.Snapshot.OrdersPath)
	}

	st := store.New(src, logger.New("store"))
	if err := st.Reload(ctx); err != nil {
		lg.Error("fatal", zap.Error(err))
		os.Exit(1)
	}

	if cfg.Rabbit.Enabled {
		client, err := mq.Dial(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Pass)
		if err != nil {
			lg.Error("fatal", zap.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		if err := client.DeclareRefresh(); err != nil {
			lg.Error("fatal", zap.Error(err))
			os.Exit(1)
		}
		go func() {
			if err := refresh.Run(ctx, client, st, logger.New("refresh-subscriber")); err != nil {
				lg.Error("refresh_subscriber_stopped", zap.Error(err))
			}
		}()
	}

	lg.Info("service_started",
		zap.String("service", "dashboard-api"),
		zap.Int("port", cfg.Server.Port),
		zap.String("snapshot_source", cfg.Snapshot.Source),
	)
	if err := api.Run(ctx, cfg.Server.Port, st, logger.New("api-service")); err != nil {
		lg.Error("fatal", zap.Error(err))
		os.Exit(1)
	}
}
