package controllers

import (
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"
	radix "github.com/mediocregopher/radix/v3"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/datamodels/cart"
	"github.com/example/gostorefront/internal/middleware"
	"github.com/example/gostorefront/internal/repository/mysql"
	"github.com/example/gostorefront/internal/repository/rediscart"
	"github.com/example/gostorefront/internal/service"
)

// CartController 购物车页面与操作。按请求主体选择存储：
// 登录用户走 MySQL，游客走会话绑定的 Redis。
type CartController struct {
	cartService *service.CartService
	cartRepo    cart.Repository
	redis       radix.Client
	sessions    *sessions.Sessions
	guestTTL    time.Duration
}

func NewCartController(
	cartSvc *service.CartService,
	cartRepo cart.Repository,
	redis radix.Client,
	sess *sessions.Sessions,
	guestTTL time.Duration,
) *CartController {
	return &CartController{
		cartService: cartSvc,
		cartRepo:    cartRepo,
		redis:       redis,
		sessions:    sess,
		guestTTL:    guestTTL,
	}
}

// storeFor 本次请求应操作的购物车存储
func (c *CartController) storeFor(ctx iris.Context) cart.Store {
	p := middleware.PrincipalFrom(ctx)
	if p.Authenticated() {
		return mysql.NewUserCartStore(c.cartRepo, p.UserID)
	}
	sess := c.sessions.Start(ctx)
	return rediscart.NewGuestCartStore(c.redis, sess.ID(), c.guestTTL)
}

// View 当前购物车，两种表示渲染同一个模板。
func (c *CartController) View(ctx iris.Context) {
	sess := c.sessions.Start(ctx)
	store := c.storeFor(ctx)

	views, err := c.cartService.View(ctx.Request().Context(), store)
	if err != nil {
		zap.L().Error("view cart failed", zap.Error(err))
		renderError(ctx, "购物车加载失败，请稍后重试")
		return
	}

	_ = ctx.View("cart/cart.html", iris.Map{
		"items":     views,
		"total":     c.cartService.Total(views),
		"message":   sess.GetFlashString("message"),
		"principal": middleware.PrincipalFrom(ctx),
	})
}

// Add POST /cart/cart/add/{product_id}，表单字段 quantity 缺省为 1。
func (c *CartController) Add(ctx iris.Context) {
	productID, _ := ctx.Params().GetInt64("product_id")
	quantity := int64(ctx.PostValueIntDefault("quantity", 1))
	sess := c.sessions.Start(ctx)

	store := c.storeFor(ctx)
	if err := c.cartService.Add(ctx.Request().Context(), store, productID, quantity); err != nil {
		zap.L().Warn("add to cart failed",
			zap.Int64("product_id", productID), zap.Error(err))
		sess.SetFlash("message", "加入购物车失败")
		ctx.Redirect("/cart/cart", iris.StatusFound)
		return
	}

	service.GetMonitor().RecordCartAdd()
	ctx.Redirect("/cart/cart", iris.StatusFound)
}

// Remove POST /cart/cart/remove/{item_id}。
// 登录购物车的 item_id 是行 ID，游客购物车是商品 ID。
func (c *CartController) Remove(ctx iris.Context) {
	itemID, _ := ctx.Params().GetInt64("item_id")

	store := c.storeFor(ctx)
	if err := c.cartService.Remove(ctx.Request().Context(), store, itemID); err != nil {
		zap.L().Warn("remove cart line failed",
			zap.Int64("item_id", itemID), zap.Error(err))
	}

	service.GetMonitor().RecordCartRemove()
	ctx.Redirect("/cart/cart", iris.StatusFound)
}
