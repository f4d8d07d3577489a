package store

import (
	"context"
	"time"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// ListRoadmaps returns every roadmap.
func (s *Store) ListRoadmaps(ctx context.Context) []*models.Roadmap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Roadmap, 0, len(s.roadmaps))
	for _, r := range s.roadmaps {
		result = append(result, copyRoadmap(r))
	}
	return result
}

// StepToggleResult reports the outcome of a roadmap step toggle.
type StepToggleResult struct {
	User      *models.User
	Completed bool
}

// ToggleRoadmapStep marks a step complete when it is not, undoes it
// otherwise. Completing rewards karma, undoing costs it.
func (s *Store) ToggleRoadmapStep(ctx context.Context, userID, roadmapID, stepID string) (*StepToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return nil, ErrUserNotFound
	}

	roadmap := s.findRoadmap(roadmapID)
	if roadmap == nil {
		return nil, ErrRoadmapNotFound
	}

	found := false
	for _, step := range roadmap.Steps {
		if step.ID == stepID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrStepNotFound
	}

	completed := false
	if idx := indexOf(u.CompletedSteps, stepID); idx >= 0 {
		u.CompletedSteps = append(u.CompletedSteps[:idx], u.CompletedSteps[idx+1:]...)
		addKarma(u, -s.karma.RoadmapStepUndoCost)
	} else {
		u.CompletedSteps = append(u.CompletedSteps, stepID)
		addKarma(u, s.karma.RoadmapStepReward)
		appendActivity(u, models.ActivityRoadmap, stepID, roadmap.Title)
		completed = true
	}

	u.UpdatedAt = time.Now().UTC()
	s.persistUsers(ctx)

	return &StepToggleResult{User: copyUser(u), Completed: completed}, nil
}

// findRoadmap must be called with the lock held.
func (s *Store) findRoadmap(id string) *models.Roadmap {
	for _, r := range s.roadmaps {
		if r.ID == id {
			return r
		}
	}
	return nil
}
