package main

import (
	"fmt"
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
	zap.L().Info("log init success")

	app := iris.New()

	// HTML 模板引擎，使用本项目下的 web/views 目录
	tmpl := iris.HTML("./web/views", ".html").Layout("shared/layout.html")
	tmpl.Reload(true) // 开发模式下启用热重载，方便调试

	// 价格格式化函数：分转美元（例如 990 -> $9.90）
	tmpl.AddFunc("formatPrice", func(price int64) string {
		return fmt.Sprintf("$%.2f", float64(price)/100.0)
	})

	app.RegisterView(tmpl)

	server.RegisterRoutes(app, cfg)

	addr := cfg.Server.Addr()
	zap.L().Info("web server listening", zap.String("addr", addr))
	if err := app.Run(
		iris.Addr(addr),
		iris.WithCharset("UTF-8"),
		iris.WithoutServerError(iris.ErrServerClosed),
	); err != nil {
		zap.L().Fatal("app run failed", zap.Error(err))
	}
}
