package main

import (
	"log"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/logger"
	"github.com/example/gostorefront/internal/server"
)

func main() {
	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	if err := logger.Init(false); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}

	app := iris.New()
	server.RegisterAdminRoutes(app, cfg)

	addr := cfg.AdminServer.Addr()
	zap.L().Info("admin server listening", zap.String("addr", addr))
	if err := app.Run(iris.Addr(addr), iris.WithoutServerError(iris.ErrServerClosed)); err != nil {
		zap.L().Fatal("admin run failed", zap.Error(err))
	}
}
