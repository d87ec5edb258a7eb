package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"

	"github.com/example/gostorefront/internal/service"
)

// UserController 负责登录/注册页面与表单处理。
type UserController struct {
	userService *service.UserService
	sessions    *sessions.Sessions
}

// NewUserController 构造函数，供路由层复用同一套逻辑。
func NewUserController(userSvc *service.UserService, sess *sessions.Sessions) *UserController {
	return &UserController{userService: userSvc, sessions: sess}
}

// ShowLogin 渲染登录表单。
func (c *UserController) ShowLogin(ctx iris.Context) {
	sess := c.sessions.Start(ctx)
	if err := ctx.View("auth/login.html", iris.Map{
		"message": sess.GetFlashString("message"),
	}); err != nil {
		ctx.ContentType("text/html; charset=utf-8")
		_, _ = ctx.WriteString("<h2>无法加载登录页面，请稍后重试。</h2>")
	}
}

// ShowRegister 渲染注册表单。
func (c *UserController) ShowRegister(ctx iris.Context) {
	sess := c.sessions.Start(ctx)
	if err := ctx.View("auth/register.html", iris.Map{
		"message": sess.GetFlashString("message"),
	}); err != nil {
		ctx.ContentType("text/html; charset=utf-8")
		_, _ = ctx.WriteString("<h2>无法加载注册页面，请稍后重试。</h2>")
	}
}

// PostLogin 处理登录表单提交，成功后写 token cookie 并跳回首页。
func (c *UserController) PostLogin(ctx iris.Context) {
	email := ctx.FormValue("email")
	password := ctx.FormValue("password")
	sess := c.sessions.Start(ctx)

	if email == "" || password == "" {
		sess.SetFlash("message", "邮箱和密码不能为空")
		ctx.Redirect("/auth/login", iris.StatusFound)
		return
	}

	_, token, err := c.userService.Login(ctx.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			sess.SetFlash("message", "邮箱或密码错误")
		} else {
			sess.SetFlash("message", "登录失败，请稍后重试")
		}
		ctx.Redirect("/auth/login", iris.StatusFound)
		return
	}

	c.setAuthCookie(ctx, token)
	ctx.Redirect("/", iris.StatusFound)
}

// PostRegister 处理注册表单提交。注册即登录，成功后直接跳回首页。
func (c *UserController) PostRegister(ctx iris.Context) {
	username := ctx.FormValue("username")
	email := ctx.FormValue("email")
	password := ctx.FormValue("password")
	sess := c.sessions.Start(ctx)

	if username == "" || email == "" || password == "" {
		sess.SetFlash("message", "用户名、邮箱和密码不能为空")
		ctx.Redirect("/auth/register", iris.StatusFound)
		return
	}

	u, err := c.userService.Register(ctx.Request().Context(), username, email, password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			sess.SetFlash("message", "该邮箱已注册")
		} else {
			sess.SetFlash("message", "注册失败，请稍后重试")
		}
		ctx.Redirect("/auth/register", iris.StatusFound)
		return
	}

	token, err := c.userService.IssueToken(u)
	if err != nil {
		// 注册已成功，签发失败就让用户手动登录一次
		ctx.Redirect("/auth/login", iris.StatusFound)
		return
	}

	c.setAuthCookie(ctx, token)
	ctx.Redirect("/", iris.StatusFound)
}

// Logout 清理 cookie 并回到首页，重复调用无副作用。
func (c *UserController) Logout(ctx iris.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:    "token",
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
	ctx.Redirect("/", iris.StatusFound)
}

func (c *UserController) setAuthCookie(ctx iris.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
