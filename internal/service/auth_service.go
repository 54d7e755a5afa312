package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const mockLoginUserID = "user123"
const mockLoginUserName = "John Doe"

// UserClaims 会话令牌声明
type UserClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// LoginInput 登录输入
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput 注册输入
type RegisterInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required"`
}

// ProfileInput 资料更新，空字段保持不变
type ProfileInput struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// AuthResult 登录/注册结果
type AuthResult struct {
	User      *models.UserSession `json:"user"`
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// AuthService 模拟登录：任意凭据在固定延迟后通过，不存储密码
type AuthService struct {
	state    *SessionState
	jwtCfg   config.JWTConfig
	delay    time.Duration
	now      func() time.Time
	newToken func() string
}

// NewAuthService 创建认证服务
func NewAuthService(state *SessionState, authCfg config.AuthConfig, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		state:    state,
		jwtCfg:   jwtCfg,
		delay:    time.Duration(authCfg.LoginDelayMS) * time.Millisecond,
		now:      time.Now,
		newToken: func() string { return uuid.NewString() },
	}
}

func (s *AuthService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login 模拟登录
func (s *AuthService) Login(ctx context.Context, sessionID string, input LoginInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrCredentialsRequired
	}
	if err := formValidate.Var(input.Email, "email"); err != nil {
		return nil, ErrInvalidEmail
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	user := &models.UserSession{
		ID:    mockLoginUserID,
		Name:  mockLoginUserName,
		Email: input.Email,
	}
	return s.establish(ctx, sessionID, user)
}

// Register 模拟注册
func (s *AuthService) Register(ctx context.Context, sessionID string, input RegisterInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if err := validateStruct(ErrRegisterInvalid, input); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) && len(validationErr.Fields) == 1 && validationErr.Fields["email"] == "email" {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	user := &models.UserSession{
		ID:        "user-" + uuid.NewString(),
		Name:      input.FirstName + " " + input.LastName,
		Email:     input.Email,
		Phone:     strings.TrimSpace(input.Phone),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	return s.establish(ctx, sessionID, user)
}

func (s *AuthService) establish(ctx context.Context, sessionID string, user *models.UserSession) (*AuthResult, error) {
	token, expiresAt, err := s.GenerateUserJWT(user, sessionID)
	if err != nil {
		return nil, err
	}
	unlock := s.state.Lock(sessionID)
	defer unlock()
	if err := s.state.SaveUser(ctx, sessionID, user); err != nil {
		return nil, err
	}
	logger.Infow("user_session_established", "session_id", sessionID, "user_id", user.ID)
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout 退出登录；提供令牌声明时将其加入吊销列表
func (s *AuthService) Logout(ctx context.Context, sessionID string, claims *UserClaims) error {
	unlock := s.state.Lock(sessionID)
	defer unlock()
	if err := s.state.DeleteUser(ctx, sessionID); err != nil {
		return err
	}
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	if err := cache.RevokeToken(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		logger.Warnw("user_token_revoke_failed", "session_id", sessionID, "token_id", claims.ID, "error", err)
	}
	return nil
}

// Current 当前会话用户
func (s *AuthService) Current(ctx context.Context, sessionID string) (*models.UserSession, error) {
	user, err := s.state.User(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile 更新资料，邮箱与用户 ID 不可修改
func (s *AuthService) UpdateProfile(ctx context.Context, sessionID string, input ProfileInput) (*models.UserSession, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	user, err := s.state.User(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if v := strings.TrimSpace(input.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(input.LastName); v != "" {
		user.LastName = v
	}
	if v := strings.TrimSpace(input.Name); v != "" {
		user.Name = v
	} else if strings.TrimSpace(input.FirstName+input.LastName) != "" {
		user.Name = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}
	if v := strings.TrimSpace(input.Phone); v != "" {
		user.Phone = v
	}
	if err := s.state.SaveUser(ctx, sessionID, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GenerateUserJWT 签发会话令牌
func (s *AuthService) GenerateUserJWT(user *models.UserSession, sessionID string) (string, time.Time, error) {
	secret := strings.TrimSpace(s.jwtCfg.SecretKey)
	if secret == "" {
		return "", time.Time{}, ErrJWTSecretMissing
	}
	hours := s.jwtCfg.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	now := s.now()
	expiresAt := now.Add(time.Duration(hours) * time.Hour)
	claims := UserClaims{
		UserID:    user.ID,
		Email:     user.Email,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.newToken(),
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseUserJWT 校验并解析会话令牌
func (s *AuthService) ParseUserJWT(tokenString string) (*UserClaims, error) {
	secret := strings.TrimSpace(s.jwtCfg.SecretKey)
	if secret == "" {
		return nil, ErrJWTSecretMissing
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
