package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T, delay int) (*AuthService, *serviceTestEnv) {
	t.Helper()
	env := newServiceTestEnv(t)
	return NewAuthService(env.state, config.AuthConfig{LoginDelayMS: delay}, config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1}), env
}

func TestAuthLoginMockUser(t *testing.T) {
	auth, _ := newTestAuthService(t, 0)
	ctx := context.Background()

	result, err := auth.Login(ctx, testSessionID, LoginInput{Email: " Shopper@Example.com ", Password: "anything"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.User.ID != "user123" || result.User.Name != "John Doe" || result.User.Email != "shopper@example.com" {
		t.Fatalf("unexpected mock user: %+v", result.User)
	}
	claims, err := auth.ParseUserJWT(result.Token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != "user123" || claims.SessionID != testSessionID || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	current, err := auth.Current(ctx, testSessionID)
	if err != nil || current.Email != "shopper@example.com" {
		t.Fatalf("current user mismatch: %v %+v", err, current)
	}
}

func TestAuthLoginValidation(t *testing.T) {
	auth, _ := newTestAuthService(t, 0)
	ctx := context.Background()
	if _, err := auth.Login(ctx, testSessionID, LoginInput{Email: "", Password: "x"}); !errors.Is(err, ErrCredentialsRequired) {
		t.Fatalf("want ErrCredentialsRequired got %v", err)
	}
	if _, err := auth.Login(ctx, testSessionID, LoginInput{Email: "a@b.c", Password: " "}); !errors.Is(err, ErrCredentialsRequired) {
		t.Fatalf("want ErrCredentialsRequired got %v", err)
	}
	if _, err := auth.Login(ctx, testSessionID, LoginInput{Email: "nope", Password: "x"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail got %v", err)
	}
}

func TestAuthLoginHonoursContextCancel(t *testing.T) {
	auth, _ := newTestAuthService(t, 5000)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	if _, err := auth.Login(ctx, testSessionID, LoginInput{Email: "a@example.com", Password: "x"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("login should stop waiting when ctx is done")
	}
	if _, err := auth.Current(context.Background(), testSessionID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("cancelled login must not store a user, got %v", err)
	}
}

func TestAuthRegister(t *testing.T) {
	auth, _ := newTestAuthService(t, 0)
	ctx := context.Background()

	if _, err := auth.Register(ctx, testSessionID, RegisterInput{FirstName: "Asha", Email: "asha@example.com", Password: "x"}); !errors.Is(err, ErrRegisterInvalid) {
		t.Fatalf("missing last name want ErrRegisterInvalid got %v", err)
	}
	if _, err := auth.Register(ctx, testSessionID, RegisterInput{FirstName: "Asha", LastName: "Rao", Email: "bad", Password: "x"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email want ErrInvalidEmail got %v", err)
	}
	result, err := auth.Register(ctx, testSessionID, RegisterInput{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Phone: "98765", Password: "x"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !strings.HasPrefix(result.User.ID, "user-") || result.User.Name != "Asha Rao" || result.User.Phone != "98765" {
		t.Fatalf("unexpected registered user: %+v", result.User)
	}
}

func TestAuthUpdateProfile(t *testing.T) {
	auth, _ := newTestAuthService(t, 0)
	ctx := context.Background()
	if _, err := auth.UpdateProfile(ctx, testSessionID, ProfileInput{Phone: "1"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound got %v", err)
	}
	if _, err := auth.Register(ctx, testSessionID, RegisterInput{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Password: "x"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user, err := auth.UpdateProfile(ctx, testSessionID, ProfileInput{LastName: "Iyer", Phone: "12345"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.Name != "Asha Iyer" || user.Phone != "12345" || user.Email != "asha@example.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestAuthParseRejectsForeignTokens(t *testing.T) {
	auth, env := newTestAuthService(t, 0)
	other := NewAuthService(env.state, config.AuthConfig{}, config.JWTConfig{SecretKey: "other-secret", ExpireHours: 1})
	result, err := other.Login(context.Background(), testSessionID, LoginInput{Email: "a@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := auth.ParseUserJWT(result.Token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("token signed with another secret want ErrTokenInvalid got %v", err)
	}
	if _, err := auth.ParseUserJWT("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage token want ErrTokenInvalid got %v", err)
	}
	noSecret := NewAuthService(env.state, config.AuthConfig{}, config.JWTConfig{})
	if _, err := noSecret.ParseUserJWT(result.Token); !errors.Is(err, ErrJWTSecretMissing) {
		t.Fatalf("want ErrJWTSecretMissing got %v", err)
	}
}

func TestAuthLogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.UseClient(client, "bgtest")
	t.Cleanup(func() { cache.UseClient(nil, "") })

	auth, _ := newTestAuthService(t, 0)
	ctx := context.Background()
	result, err := auth.Login(ctx, testSessionID, LoginInput{Email: "a@example.com", Password: "x"})
	require.NoError(t, err)
	claims, err := auth.ParseUserJWT(result.Token)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, testSessionID, claims))
	revoked, err := cache.IsTokenRevoked(ctx, claims.ID)
	require.NoError(t, err)
	require.True(t, revoked)

	_, err = auth.Current(ctx, testSessionID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
