package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
	"github.com/UCAS-CE/cyberhub-service/internal/events"
	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      24 * time.Hour,
		OwnerID:       "u-owner",
		OwnerEmail:    "malhiloo@smail.ucas.edu.ps",
		OwnerPassword: "mahucas",
		OwnerName:     "Hub Owner",
		EmailDomain:   "@smail.ucas.edu.ps",
	}
}

func newAuthService(t *testing.T) (AuthService, *events.MockEventPublisher) {
	t.Helper()

	st := newTestStore(t)
	logger := testLogger()
	mockPublisher := events.NewMockEventPublisher(logger)
	return NewAuthService(st, mockPublisher, logger, validator.New(), testAuthConfig()), mockPublisher
}

func TestAuthService_Register(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	t.Run("RejectsForeignEmailDomain", func(t *testing.T) {
		_, err := service.Register(ctx, &RegisterRequest{
			Name:     "Outside User",
			Email:    "someone@gmail.com",
			Password: "secret1",
			Major:    "CS",
		})

		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			t.Fatalf("Expected ValidationErrors, got %v", err)
		}
	})

	t.Run("RejectsShortPassword", func(t *testing.T) {
		_, err := service.Register(ctx, &RegisterRequest{
			Name:     "Short Password",
			Email:    "s.pass@smail.ucas.edu.ps",
			Password: "abc",
			Major:    "CS",
		})
		if err == nil {
			t.Error("Expected validation failure for a 3-character password")
		}
	})

	t.Run("RegistersStudent", func(t *testing.T) {
		user, err := service.Register(ctx, &RegisterRequest{
			Name:     "New Member",
			Email:    "n.member@smail.ucas.edu.ps",
			Password: "secret1",
			Major:    "Security",
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.Role != models.RoleStudent {
			t.Errorf("Expected student role, got %q", user.Role)
		}
	})

	t.Run("DuplicateEmailSurfacesAsAuthError", func(t *testing.T) {
		_, err := service.Register(ctx, &RegisterRequest{
			Name:     "Clone",
			Email:    "n.member@smail.ucas.edu.ps",
			Password: "secret2",
			Major:    "Networks",
		})

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("Expected AuthError, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	t.Run("TokenCarriesSubjectRoleAndEpoch", func(t *testing.T) {
		resp, err := service.Login(ctx, &LoginRequest{
			Email:    "l.abed@smail.ucas.edu.ps",
			Password: "student123",
		})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		claims := &SessionClaims{}
		_, err = jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		if err != nil {
			t.Fatalf("Failed to parse issued token: %v", err)
		}
		if claims.Subject != "u-student-1" {
			t.Errorf("Expected subject u-student-1, got %s", claims.Subject)
		}
		if claims.Role != string(models.RoleStudent) {
			t.Errorf("Expected student role claim, got %s", claims.Role)
		}
		if claims.Epoch != resp.User.SessionEpoch {
			t.Errorf("Epoch claim %d does not match user epoch %d", claims.Epoch, resp.User.SessionEpoch)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := service.Login(ctx, &LoginRequest{
			Email:    "l.abed@smail.ucas.edu.ps",
			Password: "nope123",
		})

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("Expected AuthError, got %v", err)
		}
	})
}

func TestAuthService_UpdateRole(t *testing.T) {
	service, mockPublisher := newAuthService(t)
	ctx := context.Background()

	t.Run("FacultyPromotesStudentToExpert", func(t *testing.T) {
		resp, err := service.UpdateRole(ctx, "u-faculty-1", "u-student-1", &UpdateRoleRequest{Role: "expert"})
		if err != nil {
			t.Fatalf("UpdateRole failed: %v", err)
		}
		if resp.User.Role != models.RoleExpert {
			t.Errorf("Expected expert, got %q", resp.User.Role)
		}
		if resp.SessionInvalidated {
			t.Error("Promoting another user must not invalidate the acting session")
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 || published[0].Type != events.EventRoleChanged {
			t.Fatalf("Expected one role-changed event, got %v", published)
		}
	})

	t.Run("FacultyCannotGrantFaculty", func(t *testing.T) {
		_, err := service.UpdateRole(ctx, "u-faculty-1", "u-student-2", &UpdateRoleRequest{Role: "faculty"})
		if err == nil {
			t.Fatal("Expected role change rejection")
		}
	})

	t.Run("InvalidRoleValue", func(t *testing.T) {
		_, err := service.UpdateRole(ctx, "u-owner", "u-student-2", &UpdateRoleRequest{Role: "wizard"})

		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			t.Fatalf("Expected ValidationErrors, got %v", err)
		}
	})
}
