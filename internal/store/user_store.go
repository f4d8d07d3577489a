package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// NewUserParams carries validated registration input. Field-level
// validation (email domain, password length, blank fields) is the
// caller's job; the store only guards email uniqueness.
type NewUserParams struct {
	Name     string
	Email    string
	Password string
	Major    string
}

// CreateUser appends a new user. Role is always forced to Student,
// karma starts at zero, activity and badges are empty.
func (s *Store) CreateUser(ctx context.Context, params NewUserParams) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(params.Email))
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:             "u-" + uuid.New().String(),
		Name:           strings.TrimSpace(params.Name),
		Email:          email,
		Password:       params.Password,
		Role:           models.RoleStudent,
		Major:          strings.TrimSpace(params.Major),
		Karma:          0,
		Badges:         []string{},
		CompletedSteps: []string{},
		JoinedProjects: []string{},
		Activity:       []models.ActivityEntry{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.users = append(s.users, user)
	s.persistUsers(ctx)

	return copyUser(user), nil
}

// Authenticate matches an exact email+password pair, short-circuiting
// to the seeded owner identity when the credentials equal the fixed
// owner pair. A miss never reveals whether the email exists.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))

	if email == strings.ToLower(s.auth.OwnerEmail) && password == s.auth.OwnerPassword {
		for _, u := range s.users {
			if u.ID == s.auth.OwnerID {
				return copyUser(u), nil
			}
		}
		return nil, ErrInvalidCredentials
	}

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return copyUser(u), nil
		}
	}

	return nil, ErrInvalidCredentials
}

// GetUserByID returns a copy of the user or ErrUserNotFound.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findUser(id)
	if u == nil {
		return nil, ErrUserNotFound
	}
	return copyUser(u), nil
}

// ListUsers returns the member directory, optionally filtered by a
// case-insensitive name/email/major query.
func (s *Store) ListUsers(ctx context.Context, query string) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Name), query) &&
			!strings.Contains(strings.ToLower(u.Email), query) &&
			!strings.Contains(strings.ToLower(u.Major), query) {
			continue
		}
		result = append(result, copyUser(u))
	}
	return result
}

// Leaderboard returns users ordered by karma descending.
func (s *Store) Leaderboard(ctx context.Context, limit int) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, copyUser(u))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Karma > result[j].Karma
	})
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result
}

// RoleChangeResult is the explicit outcome of UpdateRole. When the
// acting session belongs to the target user its cached privilege
// claims are stale, so the caller must force re-authentication.
type RoleChangeResult struct {
	User               *models.User
	OldRole            models.UserRole
	SessionInvalidated bool
}

// UpdateRole replaces the target's role in place and bumps the
// session epoch so outstanding tokens fail verification. Whether the
// acting user may perform the change is decided by the caller.
func (s *Store) UpdateRole(ctx context.Context, actingID, targetID string, newRole models.UserRole) (*RoleChangeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(targetID)
	if u == nil {
		return nil, ErrUserNotFound
	}

	oldRole := u.Role
	u.Role = newRole
	u.SessionEpoch++
	u.UpdatedAt = time.Now().UTC()
	s.persistUsers(ctx)

	return &RoleChangeResult{
		User:               copyUser(u),
		OldRole:            oldRole,
		SessionInvalidated: actingID == targetID,
	}, nil
}

// UpdateProfile applies self-service edits to name, major and avatar.
func (s *Store) UpdateProfile(ctx context.Context, userID string, name, major, avatarURL *string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return nil, ErrUserNotFound
	}

	if name != nil {
		u.Name = strings.TrimSpace(*name)
	}
	if major != nil {
		u.Major = strings.TrimSpace(*major)
	}
	if avatarURL != nil {
		u.AvatarURL = *avatarURL
	}
	u.UpdatedAt = time.Now().UTC()
	s.persistUsers(ctx)

	return copyUser(u), nil
}

// SessionEpoch returns the current epoch for token verification.
func (s *Store) SessionEpoch(ctx context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findUser(userID)
	if u == nil {
		return 0, ErrUserNotFound
	}
	return u.SessionEpoch, nil
}

// findUser must be called with the lock held.
func (s *Store) findUser(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// appendActivity must be called with the write lock held.
func appendActivity(u *models.User, kind models.ActivityKind, refID, title string) {
	u.Activity = append(u.Activity, models.ActivityEntry{
		ID:        uuid.New().String(),
		Kind:      kind,
		RefID:     refID,
		Title:     title,
		Timestamp: time.Now().UTC(),
	})
}
