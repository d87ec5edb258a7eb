package server

import (
	"context"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/auth"
	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/infra/mq"
	"github.com/example/gostorefront/internal/infra/redis"
	"github.com/example/gostorefront/internal/middleware"
	"github.com/example/gostorefront/internal/repository/mysql"
	"github.com/example/gostorefront/internal/seed"
	"github.com/example/gostorefront/internal/service"
	webcontrollers "github.com/example/gostorefront/web/controllers"
)

// RegisterRoutes 初始化基础设施并注册所有 HTTP 路由
func RegisterRoutes(app *iris.Application, cfg *config.Config) {
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)
	mqConn := mq.Init(&cfg.RabbitMQ)

	// 静态资源
	app.HandleDir("/assets", iris.Dir("./web/assets"))

	// 仓储与服务
	userRepo := mysql.NewUserRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	productRepo := mysql.NewProductRepository(db)
	cartRepo := mysql.NewCartRepository(db)

	userSvc := service.NewUserService(userRepo, &cfg.JWT)
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo)
	cartSvc := service.NewCartService(productRepo)
	checkoutSvc := service.NewCheckoutService(db, mqConn)

	// 目录数据初始化：启动时做一次，幂等
	if err := seed.Ensure(context.Background(), &cfg.Seed, categoryRepo, productRepo); err != nil {
		zap.L().Fatal("seed catalog failed", zap.Error(err))
	}

	sess := sessions.New(sessions.Config{
		Cookie:  cfg.Session.CookieName,
		Expires: time.Duration(cfg.Session.ExpireSeconds) * time.Second,
	})
	guestTTL := time.Duration(cfg.Session.ExpireSeconds) * time.Second

	tokenCache := auth.NewTokenCache(redisClient,
		time.Duration(cfg.JWT.TokenCacheTTLSeconds)*time.Second)

	// 每个请求先解析主体（游客或登录用户）
	app.Use(middleware.ResolvePrincipal(&cfg.JWT, tokenCache))

	userController := webcontrollers.NewUserController(userSvc, sess)
	productController := webcontrollers.NewProductController(catalogSvc)
	cartController := webcontrollers.NewCartController(cartSvc, cartRepo, redisClient, sess, guestTTL)
	checkoutController := webcontrollers.NewCheckoutController(checkoutSvc, sess)

	// 首页
	app.Get("/", productController.Home)

	// 登录 / 注册 / 登出
	authParty := app.Party("/auth")
	authParty.Get("/login", userController.ShowLogin)
	authParty.Post("/login", middleware.AuthRateLimit(), userController.PostLogin)
	authParty.Get("/register", userController.ShowRegister)
	authParty.Post("/register", middleware.AuthRateLimit(), userController.PostRegister)
	authParty.Get("/logout", userController.Logout)

	// 商品目录
	productsParty := app.Party("/products")
	productsParty.Get("/catalog", productController.Catalog)
	productsParty.Get("/product/{id:int64}", productController.Detail)

	// 购物车，游客与登录用户共用同一组路由
	cartParty := app.Party("/cart")
	cartParty.Get("/cart", cartController.View)
	cartParty.Post("/cart/add/{product_id:int64}", cartController.Add)
	cartParty.Post("/cart/remove/{item_id:int64}", cartController.Remove)

	// 结算，必须登录
	checkoutParty := app.Party("/checkout")
	checkoutParty.Use(middleware.RequireAuth)
	checkoutParty.Get("/checkout", checkoutController.Show)
	checkoutParty.Post("/checkout", checkoutController.Submit)

	// 健康检查
	app.Get("/api/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{
			"code": 0,
			"msg":  "ok",
		})
	})
}
