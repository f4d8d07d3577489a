package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// NewProjectParams carries validated proposal input; zero values get
// the hub defaults.
type NewProjectParams struct {
	Title          string
	Description    string
	RequiredSkills []string
	Slots          int
	Category       string
}

// AddProject inserts a new collaboration proposal.
func (s *Store) AddProject(ctx context.Context, proposerID string, params NewProjectParams) (*models.ProjectIdea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposer := s.findUser(proposerID)
	if proposer == nil {
		return nil, ErrUserNotFound
	}

	slots := params.Slots
	if slots <= 0 {
		slots = models.DefaultProjectSlots
	}
	category := params.Category
	if category == "" {
		category = models.DefaultProjectCategory
	}
	skills := params.RequiredSkills
	if len(skills) == 0 {
		skills = append([]string(nil), models.DefaultProjectSkills...)
	}

	p := &models.ProjectIdea{
		ID:             "p-" + uuid.New().String(),
		Title:          params.Title,
		Description:    params.Description,
		ProposerID:     proposer.ID,
		ProposerName:   proposer.Name,
		ProposerRole:   proposer.Role,
		RequiredSkills: skills,
		Slots:          slots,
		FilledSlots:    0,
		Category:       category,
		Status:         "Open",
		CreatedAt:      time.Now().UTC(),
	}

	s.projects = append([]*models.ProjectIdea{p}, s.projects...)
	return copyProject(p), nil
}

// MembershipResult reports the outcome of a join/leave toggle.
type MembershipResult struct {
	Project *models.ProjectIdea
	User    *models.User
	Joined  bool
}

// ToggleProjectMembership joins the user when not a member, leaves
// otherwise, keeping the user's joined-set and the project's filled
// slot count complementary. Joining rewards karma, leaving costs it.
// The stated capacity is deliberately not enforced on join; a project
// can be over-joined past its slot count. The floor on FilledSlots
// guards against a desynced leave.
func (s *Store) ToggleProjectMembership(ctx context.Context, userID, projectID string) (*MembershipResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return nil, ErrUserNotFound
	}

	p := s.findProject(projectID)
	if p == nil {
		return nil, ErrProjectNotFound
	}

	joined := false
	if idx := indexOf(u.JoinedProjects, projectID); idx >= 0 {
		u.JoinedProjects = append(u.JoinedProjects[:idx], u.JoinedProjects[idx+1:]...)
		if p.FilledSlots > 0 {
			p.FilledSlots--
		}
		addKarma(u, -s.karma.ProjectLeaveCost)
	} else {
		u.JoinedProjects = append(u.JoinedProjects, projectID)
		p.FilledSlots++
		addKarma(u, s.karma.ProjectJoinReward)
		appendActivity(u, models.ActivityProject, p.ID, p.Title)
		joined = true
	}

	u.UpdatedAt = time.Now().UTC()
	s.persistUsers(ctx)

	return &MembershipResult{
		Project: copyProject(p),
		User:    copyUser(u),
		Joined:  joined,
	}, nil
}

// ListProjects returns all proposals, newest first.
func (s *Store) ListProjects(ctx context.Context) []*models.ProjectIdea {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ProjectIdea, 0, len(s.projects))
	for _, p := range s.projects {
		result = append(result, copyProject(p))
	}
	return result
}

// GetProject returns a copy of one proposal.
func (s *Store) GetProject(ctx context.Context, id string) (*models.ProjectIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(id)
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return copyProject(p), nil
}

// findProject must be called with the lock held.
func (s *Store) findProject(id string) *models.ProjectIdea {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
