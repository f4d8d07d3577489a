package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
	"github.com/UCAS-CE/cyberhub-service/internal/events"
	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

// SessionClaims are the JWT claims a login issues. Epoch is the
// user's session epoch at signing time; a role change bumps the
// stored epoch so older tokens fail verification on the next request.
type SessionClaims struct {
	Role  string `json:"role"`
	Epoch int64  `json:"epoch"`
	jwt.RegisteredClaims
}

type authService struct {
	store          *store.Store
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
	auth           config.AuthConfig
}

func NewAuthService(st *store.Store, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator, auth config.AuthConfig) AuthService {
	return &authService{
		store:          st,
		eventPublisher: publisher,
		logger:         logger,
		validator:      v,
		auth:           auth,
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	s.logger.Info("Registering user", "email", req.Email)

	if errs := s.validator.ValidateRegister(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.store.CreateUser(ctx, store.NewUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Major:    req.Major,
	})
	if err != nil {
		return nil, NewAuthError("registration failed", err)
	}

	s.logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.store.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		// Do not leak whether the email exists.
		return nil, NewAuthError("invalid credentials", ErrInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, NewAuthError("failed to issue session token", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return s.store.GetUserByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	return s.store.UpdateProfile(ctx, userID, req.Name, req.Major, req.AvatarURL)
}

func (s *authService) UpdateRole(ctx context.Context, actingID, targetID string, req *UpdateRoleRequest) (*RoleChangeResponse, error) {
	s.logger.Info("Updating role", "acting_id", actingID, "target_id", targetID, "new_role", req.Role)

	acting, err := s.store.GetUserByID(ctx, actingID)
	if err != nil {
		return nil, err
	}

	target, err := s.store.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	newRole := models.UserRole(req.Role)
	if errs := s.validator.ValidateRoleChange(acting.Role, target.Role, newRole); len(errs) > 0 {
		return nil, errs
	}
	if !models.CanPromote(acting.Role, target.Role, newRole) {
		return nil, NewPermissionError("change this user's role", acting.Role)
	}

	result, err := s.store.UpdateRole(ctx, actingID, targetID, newRole)
	if err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.EventRoleChanged, events.RoleChangedEvent{
		UserID:      targetID,
		OldRole:     string(result.OldRole),
		NewRole:     string(newRole),
		ChangedByID: actingID,
	}); err != nil {
		s.logger.Warn("Failed to publish role change event", "error", err)
	}

	return &RoleChangeResponse{
		User:               result.User,
		OldRole:            result.OldRole,
		SessionInvalidated: result.SessionInvalidated,
	}, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role:  string(user.Role),
		Epoch: user.SessionEpoch,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.auth.JWTSecret))
}
