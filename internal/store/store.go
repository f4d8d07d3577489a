package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// Store is the single owner of every entity collection. All reads and
// writes go through its operations; nothing else holds a reference to
// the collections, so each operation is one atomic replace-in-place
// under the mutex. Only the user collection is persisted, serialized
// whole to one key-value entry on every change.
type Store struct {
	mu sync.RWMutex

	users     []*models.User
	questions []*models.Question
	courses   []*models.Course
	projects  []*models.ProjectIdea
	challenge *models.WeeklyChallenge
	reports   []*models.Report
	roadmaps  []*models.Roadmap

	snapshot *Snapshot
	karma    config.KarmaConfig
	auth     config.AuthConfig
	logger   *slog.Logger
}

// Config holds the store's dependencies.
type Config struct {
	Snapshot *Snapshot
	Karma    config.KarmaConfig
	Auth     config.AuthConfig
	Logger   *slog.Logger
}

// New builds the store: seed everything, then replace the user
// collection from the persisted snapshot when one exists. A missing
// or malformed snapshot falls back to the seed set.
func New(ctx context.Context, cfg Config) *Store {
	s := &Store{
		snapshot: cfg.Snapshot,
		karma:    cfg.Karma,
		auth:     cfg.Auth,
		logger:   cfg.Logger,
	}

	s.users = seedUsers(cfg.Auth)
	s.questions = seedQuestions()
	s.courses = seedCourses()
	s.projects = seedProjects()
	s.challenge = seedChallenge()
	s.roadmaps = seedRoadmaps()

	s.rehydrate(ctx)

	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	data, err := s.snapshot.Load(ctx)
	if err != nil {
		if err != ErrSnapshotNotFound && err != ErrSnapshotNotAvailable {
			s.logger.Warn("Failed to load user snapshot, using seed data", "error", err)
		}
		return
	}

	var users []*models.User
	if err := json.Unmarshal([]byte(data), &users); err != nil || len(users) == 0 {
		// Malformed snapshot is treated as absent.
		s.logger.Warn("Malformed user snapshot, using seed data", "error", err)
		return
	}

	s.users = users
	s.ensureOwner()
	s.logger.Info("User collection rehydrated from snapshot", "users", len(users))
}

// ensureOwner guarantees the singleton owner identity survives any
// snapshot content.
func (s *Store) ensureOwner() {
	for _, u := range s.users {
		if u.ID == s.auth.OwnerID {
			u.Role = models.RoleOwner
			return
		}
	}
	s.users = append(s.users, ownerUser(s.auth))
}

// persistUsers serializes the whole user collection to the snapshot.
// Callers must hold the write lock.
func (s *Store) persistUsers(ctx context.Context) {
	data, err := json.Marshal(s.users)
	if err != nil {
		s.logger.Error("Failed to serialize user collection", "error", err)
		return
	}
	s.snapshot.SafeSave(ctx, string(data))
}

// Ping reports whether the persistence boundary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.snapshot.Ping(ctx)
}

// addKarma applies a delta to a user's karma, floored at zero.
func addKarma(u *models.User, delta int) {
	u.Karma += delta
	if u.Karma < 0 {
		u.Karma = 0
	}
}

// ===== COPY HELPERS =====
//
// Operations hand out copies so callers can never mutate collection
// state outside the lock.

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Badges = append([]string(nil), u.Badges...)
	cp.CompletedSteps = append([]string(nil), u.CompletedSteps...)
	cp.JoinedProjects = append([]string(nil), u.JoinedProjects...)
	cp.Activity = append([]models.ActivityEntry(nil), u.Activity...)
	return &cp
}

func copyQuestion(q *models.Question) *models.Question {
	cp := *q
	cp.Answers = append([]models.Answer(nil), q.Answers...)
	return &cp
}

func copyCourse(c *models.Course) *models.Course {
	cp := *c
	cp.Resources = append([]models.CourseResource(nil), c.Resources...)
	return &cp
}

func copyProject(p *models.ProjectIdea) *models.ProjectIdea {
	cp := *p
	cp.RequiredSkills = append([]string(nil), p.RequiredSkills...)
	return &cp
}

func copyChallenge(ch *models.WeeklyChallenge) *models.WeeklyChallenge {
	cp := *ch
	cp.Winners = append([]string(nil), ch.Winners...)
	cp.JoinRequests = append([]models.MeetingRequest(nil), ch.JoinRequests...)
	return &cp
}

func copyReport(r *models.Report) *models.Report {
	cp := *r
	return &cp
}

func copyRoadmap(r *models.Roadmap) *models.Roadmap {
	cp := *r
	cp.Steps = append([]models.RoadmapStep(nil), r.Steps...)
	return &cp
}
