package auth

// Principal 当前请求的操作主体：游客或已登录用户
type Principal struct {
	UserID   int64
	Username string
	Email    string
}

// Authenticated 是否为登录用户
func (p Principal) Authenticated() bool {
	return p.UserID > 0
}

// Anonymous 游客主体
func Anonymous() Principal {
	return Principal{}
}

// FromClaims 由 JWT claims 构造登录主体
func FromClaims(c *Claims) Principal {
	if c == nil {
		return Anonymous()
	}
	return Principal{UserID: c.UserID, Username: c.Username, Email: c.Email}
}
