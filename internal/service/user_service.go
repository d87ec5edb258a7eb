package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/example/gostorefront/internal/auth"
	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/datamodels/user"
)

var (
	// ErrEmailTaken 邮箱已注册
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials 邮箱不存在或密码错误，对外不区分
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct {
	repo user.Repository
	jwt  *config.JWTConfig
}

func NewUserService(repo user.Repository, jwt *config.JWTConfig) *UserService {
	return &UserService{repo: repo, jwt: jwt}
}

// Register 注册并返回用户。注册即登录，token 由调用方签发。
// 邮箱唯一先查后插，数据库唯一索引兜底
func (s *UserService) Register(ctx context.Context, username, email, password string) (*user.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login 校验邮箱密码，成功返回用户与 JWT
func (s *UserService) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.IssueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// IssueToken 为用户签发 JWT（注册即登录时复用）
func (s *UserService) IssueToken(u *user.User) (string, error) {
	return auth.GenerateToken(s.jwt, u.ID, u.Username, u.Email)
}
