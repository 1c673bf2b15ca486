package service

import (
	"RomXD/internal/api/config"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/redis"
	"RomXD/internal/pkg/security"
	"context"
	log "log/slog"
	"strings"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct{}

func NewAuthService() AuthService {
	return &authServiceImpl{}
}

// Login 校验运营账号并签发令牌
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrMissingLoginCredentials
	}

	admin := config.Cfg.Admin
	if !strings.EqualFold(email, admin.Email) {
		return "", ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(password, admin.PasswordHash); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(admin.Email, []string{consts.RoleAdmin})
	if err != nil {
		log.ErrorContext(ctx, "令牌签发失败", "error", err)
		return "", UnExpectedError
	}
	return token, nil
}

// Logout 将令牌签名拉入拒绝名单，剩余有效期内不再接受
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}

	err = redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, "1", security.JWTExpirationTime)
	if err != nil {
		log.ErrorContext(ctx, "令牌拒绝名单写入失败", "error", err)
		return UnExpectedError
	}
	return nil
}
