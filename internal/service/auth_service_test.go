package service_test

import (
	"errors"
	"testing"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
	"github.com/learnhub-app/learnhub-backend/internal/models"
	"github.com/learnhub-app/learnhub-backend/internal/service"
	jwtPkg "github.com/learnhub-app/learnhub-backend/pkg/jwt"
)

const testJWTSecret = "jwt-test-secret"

func TestRegisterAndLogin(t *testing.T) {
	register := models.RegisterRequest{
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	}

	t.Run("register issues a valid token", func(t *testing.T) {
		users := newFakeUserStore()
		svc := service.NewAuthService(users, testJWTSecret)

		resp, err := svc.Register(register)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ := users.GetByEmail(register.Email)
		if stored.Password == register.Password {
			t.Error("plaintext password stored")
		}

		claims, err := jwtPkg.ValidateToken([]byte(testJWTSecret), resp.Token)
		if err != nil {
			t.Fatalf("token rejected: %v", err)
		}
		if claims["email"] != register.Email {
			t.Errorf("claims email = %v", claims["email"])
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		users := newFakeUserStore()
		svc := service.NewAuthService(users, testJWTSecret)

		if _, err := svc.Register(register); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if _, err := svc.Register(register); !errors.Is(err, apperr.ErrEmailTaken) {
			t.Fatalf("err = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("login round-trips", func(t *testing.T) {
		users := newFakeUserStore()
		svc := service.NewAuthService(users, testJWTSecret)
		if _, err := svc.Register(register); err != nil {
			t.Fatalf("setup: %v", err)
		}

		resp, err := svc.Login(models.LoginRequest{Email: register.Email, Password: register.Password})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Token == "" {
			t.Error("empty token")
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		users := newFakeUserStore()
		svc := service.NewAuthService(users, testJWTSecret)
		if _, err := svc.Register(register); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := svc.Login(models.LoginRequest{Email: register.Email, Password: "nope"})
		if !errors.Is(err, apperr.ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email is rejected the same way", func(t *testing.T) {
		users := newFakeUserStore()
		svc := service.NewAuthService(users, testJWTSecret)

		_, err := svc.Login(models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		if !errors.Is(err, apperr.ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}
