package controllers

import (
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/datamodels/product"
	"github.com/example/gostorefront/internal/middleware"
	"github.com/example/gostorefront/internal/service"
)

// ProductController 首页与商品目录页面。
type ProductController struct {
	catalog *service.CatalogService
}

func NewProductController(catalog *service.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Home 首页：全部分类加前 4 个精选商品。
func (c *ProductController) Home(ctx iris.Context) {
	reqCtx := ctx.Request().Context()

	categories, err := c.catalog.ListCategories(reqCtx)
	if err != nil {
		zap.L().Error("list categories failed", zap.Error(err))
		renderError(ctx, "页面加载失败，请稍后重试")
		return
	}
	featured, err := c.catalog.Featured(reqCtx, 4)
	if err != nil {
		zap.L().Error("list featured products failed", zap.Error(err))
		renderError(ctx, "页面加载失败，请稍后重试")
		return
	}

	_ = ctx.View("home.html", iris.Map{
		"categories": categories,
		"featured":   featured,
		"principal":  middleware.PrincipalFrom(ctx),
	})
}

// Catalog 商品列表：?category=&search=&sort=
func (c *ProductController) Catalog(ctx iris.Context) {
	reqCtx := ctx.Request().Context()

	f := product.Filter{
		CategoryID: ctx.URLParamInt64Default("category", 0),
		Search:     ctx.URLParam("search"),
		Sort:       ctx.URLParamDefault("sort", product.SortName),
	}

	products, err := c.catalog.ListProducts(reqCtx, f)
	if err != nil {
		zap.L().Error("list products failed", zap.Error(err))
		renderError(ctx, "商品列表加载失败，请稍后重试")
		return
	}
	categories, err := c.catalog.ListCategories(reqCtx)
	if err != nil {
		zap.L().Error("list categories failed", zap.Error(err))
		renderError(ctx, "商品列表加载失败，请稍后重试")
		return
	}

	_ = ctx.View("products/catalog.html", iris.Map{
		"products":   products,
		"categories": categories,
		"filter":     f,
		"principal":  middleware.PrincipalFrom(ctx),
	})
}

// Detail 商品详情页：/products/product/{id}，不存在返回 404。
func (c *ProductController) Detail(ctx iris.Context) {
	id, _ := ctx.Params().GetInt64("id")

	p, err := c.catalog.GetProduct(ctx.Request().Context(), id)
	if err != nil {
		ctx.StatusCode(iris.StatusNotFound)
		renderError(ctx, "商品不存在或已下架")
		return
	}

	_ = ctx.View("products/product_details.html", iris.Map{
		"product":   p,
		"principal": middleware.PrincipalFrom(ctx),
	})
}

func renderError(ctx iris.Context, message string) {
	if err := ctx.View("shared/error.html", iris.Map{
		"showMessage": message,
	}); err != nil {
		ctx.ContentType("text/html; charset=utf-8")
		_, _ = ctx.WriteString("<h2>" + message + "</h2>")
	}
}
