package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
	"github.com/temidayo/servecorps/internal/pkg/auth"
)

func newAuthFixture(t *testing.T, active bool) (*AuthService, *fakeUserStore) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := newFakeUserStore(&models.User{
		ID:           1,
		Email:        "office@servecorps.org",
		PasswordHash: hash,
		Role:         models.RoleOffice,
		IsActive:     active,
	})
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "servecorps-test",
	})
	return NewAuthService(users, jwtService, zerolog.Nop()), users
}

func TestLoginSuccess(t *testing.T) {
	svc, users := newAuthFixture(t, true)

	token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "office@servecorps.org",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if token.AccessToken == "" || token.TokenType != "Bearer" {
		t.Fatalf("unexpected token response: %+v", token)
	}
	if token.Role != string(models.RoleOffice) {
		t.Fatalf("role = %s, want OFFICE", token.Role)
	}
	if _, ok := users.lastLogins[1]; !ok {
		t.Fatal("last login was not stamped")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "office@servecorps.org",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@servecorps.org",
		Password: "correct-horse",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, _ := newAuthFixture(t, false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "office@servecorps.org",
		Password: "correct-horse",
	})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}
