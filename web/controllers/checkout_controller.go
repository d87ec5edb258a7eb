package controllers

import (
	"errors"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/middleware"
	"github.com/example/gostorefront/internal/service"
)

// CheckoutController 结算页面与提交，路由层已经挡掉未登录请求。
type CheckoutController struct {
	checkoutService *service.CheckoutService
	sessions        *sessions.Sessions
}

func NewCheckoutController(checkoutSvc *service.CheckoutService, sess *sessions.Sessions) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutSvc,
		sessions:        sess,
	}
}

// Show GET 展示结算确认页。
func (c *CheckoutController) Show(ctx iris.Context) {
	sess := c.sessions.Start(ctx)
	_ = ctx.View("checkout/checkout.html", iris.Map{
		"message":   sess.GetFlashString("message"),
		"principal": middleware.PrincipalFrom(ctx),
	})
}

// Submit POST 执行结算：购物车一次性转订单。
func (c *CheckoutController) Submit(ctx iris.Context) {
	p := middleware.PrincipalFrom(ctx)
	sess := c.sessions.Start(ctx)

	o, err := c.checkoutService.Checkout(ctx.Request().Context(), p.UserID)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			sess.SetFlash("message", "购物车是空的")
			ctx.Redirect("/cart/cart", iris.StatusFound)
			return
		}
		zap.L().Error("checkout failed", zap.Int64("user_id", p.UserID), zap.Error(err))
		sess.SetFlash("message", "下单失败，请稍后重试")
		ctx.Redirect("/checkout/checkout", iris.StatusFound)
		return
	}

	zap.L().Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.Int64("user_id", o.UserID),
		zap.Int64("total_amount", o.TotalAmount))
	sess.SetFlash("message", "下单成功！")
	ctx.Redirect("/", iris.StatusFound)
}
