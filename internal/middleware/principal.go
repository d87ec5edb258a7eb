package middleware

import (
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/auth"
	"github.com/example/gostorefront/internal/config"
)

const principalKey = "principal"

// ResolvePrincipal 从 token cookie 解析当前主体，解析失败按游客处理。
// cache 可为 nil，传入则优先命中 Redis 里缓存的 claims
func ResolvePrincipal(jwtCfg *config.JWTConfig, cache *auth.TokenCache) iris.Handler {
	return func(ctx iris.Context) {
		token := ctx.GetCookie("token")
		if token == "" {
			ctx.Values().Set(principalKey, auth.Anonymous())
			ctx.Next()
			return
		}

		reqCtx := ctx.Request().Context()
		if cache != nil {
			if claims, ok, err := cache.Get(reqCtx, token); err == nil && ok {
				ctx.Values().Set(principalKey, auth.FromClaims(claims))
				ctx.Next()
				return
			}
		}

		claims, err := auth.ParseToken(jwtCfg, token)
		if err != nil {
			// 过期或伪造的 token 一律当游客
			ctx.Values().Set(principalKey, auth.Anonymous())
			ctx.Next()
			return
		}
		if cache != nil {
			if err := cache.Set(reqCtx, token, claims); err != nil {
				zap.L().Debug("token cache set failed", zap.Error(err))
			}
		}
		ctx.Values().Set(principalKey, auth.FromClaims(claims))
		ctx.Next()
	}
}

// PrincipalFrom 取出本次请求的主体
func PrincipalFrom(ctx iris.Context) auth.Principal {
	if p, ok := ctx.Values().Get(principalKey).(auth.Principal); ok {
		return p
	}
	return auth.Anonymous()
}

// RequireAuth 未登录跳去登录页
func RequireAuth(ctx iris.Context) {
	if !PrincipalFrom(ctx).Authenticated() {
		ctx.Redirect("/auth/login", iris.StatusFound)
		return
	}
	ctx.Next()
}
