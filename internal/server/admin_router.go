package server

import (
	"github.com/kataras/iris/v12"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/datamodels/product"
	"github.com/example/gostorefront/internal/repository/mysql"
	"github.com/example/gostorefront/internal/service"
)

// RegisterAdminRoutes 管理端 JSON API：监控统计、最近订单、商品列表。
// 只在内网端口上提供，不做页面
func RegisterAdminRoutes(app *iris.Application, cfg *config.Config) {
	db := mysql.Init(&cfg.MySQL)

	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	orderSvc := service.NewOrderService(orderRepo)

	api := app.Party("/api")

	api.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "msg": "ok"})
	})

	// 监控统计
	api.Get("/stats", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "data": service.GetMonitor().GetStats()})
	})

	// 最近订单
	api.Get("/orders/recent", func(ctx iris.Context) {
		limit := ctx.URLParamIntDefault("limit", 20)
		list, err := orderSvc.ListRecent(ctx.Request().Context(), limit)
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})

	// 订单详情（订单行带快照价）
	api.Get("/orders/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		o, items, err := orderSvc.GetWithItems(ctx.Request().Context(), id)
		if err != nil {
			ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "order not found"})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": iris.Map{"order": o, "items": items}})
	})

	// 商品列表
	api.Get("/products", func(ctx iris.Context) {
		list, err := productRepo.List(ctx.Request().Context(), product.Filter{})
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})
}
