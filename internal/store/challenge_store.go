package store

import (
	"context"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// GetChallenge returns the singleton weekly challenge.
func (s *Store) GetChallenge(ctx context.Context) (*models.WeeklyChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.challenge == nil {
		return nil, ErrNoChallenge
	}
	return copyChallenge(s.challenge), nil
}

// UpsertJoinRequest files a Pending meeting request for the user,
// replacing any prior request by the same user so at most one record
// per user id exists (idempotent re-request).
func (s *Store) UpsertJoinRequest(ctx context.Context, userID string) (*models.WeeklyChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.challenge == nil {
		return nil, ErrNoChallenge
	}

	u := s.findUser(userID)
	if u == nil {
		return nil, ErrUserNotFound
	}

	kept := s.challenge.JoinRequests[:0]
	for _, r := range s.challenge.JoinRequests {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	s.challenge.JoinRequests = append(kept, models.MeetingRequest{
		UserID:   u.ID,
		UserName: u.Name,
		Status:   models.RequestPending,
	})

	return copyChallenge(s.challenge), nil
}

// SetJoinRequestStatus applies a moderator decision to one user's
// request: Pending to Accepted or Rejected, never back.
func (s *Store) SetJoinRequestStatus(ctx context.Context, userID string, status models.MeetingRequestStatus) (*models.WeeklyChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.challenge == nil {
		return nil, ErrNoChallenge
	}

	for i := range s.challenge.JoinRequests {
		if s.challenge.JoinRequests[i].UserID == userID {
			s.challenge.JoinRequests[i].Status = status
			return copyChallenge(s.challenge), nil
		}
	}

	return nil, ErrRequestNotFound
}
