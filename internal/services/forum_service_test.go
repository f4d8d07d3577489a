package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

// newTestStore builds a memory-only store with the seed data.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return store.New(context.Background(), store.Config{
		Snapshot: store.NewSnapshot(nil, "cyberhub_users", logger),
		Karma: config.KarmaConfig{
			QuestionReward:      10,
			ProjectJoinReward:   50,
			ProjectLeaveCost:    10,
			RoadmapStepReward:   100,
			RoadmapStepUndoCost: 10,
		},
		Auth: config.AuthConfig{
			OwnerID:       "u-owner",
			OwnerEmail:    "malhiloo@smail.ucas.edu.ps",
			OwnerPassword: "mahucas",
			OwnerName:     "Hub Owner",
			EmailDomain:   "@smail.ucas.edu.ps",
		},
		Logger: logger,
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestForumService_AppendAnswer(t *testing.T) {
	st := newTestStore(t)
	service := NewForumService(st, testLogger(), validator.New())
	ctx := context.Background()

	t.Run("StudentCannotOpenAnUnansweredQuestion", func(t *testing.T) {
		_, err := service.AppendAnswer(ctx, "u-student-1", "q-seed-2", &AnswerCreateRequest{
			Text: "I think it depends on the key size.",
		})

		var permErr *PermissionError
		if !errors.As(err, &permErr) {
			t.Fatalf("Expected PermissionError, got %v", err)
		}
	})

	t.Run("ExpertOpensTheQuestion", func(t *testing.T) {
		q, err := service.AppendAnswer(ctx, "u-expert-1", "q-seed-2", &AnswerCreateRequest{
			Text: "Symmetric for throughput, asymmetric for trust establishment.",
		})
		if err != nil {
			t.Fatalf("AppendAnswer failed: %v", err)
		}
		if len(q.Answers) != 1 {
			t.Fatalf("Expected 1 answer, got %d", len(q.Answers))
		}
		if !q.Answers[0].IsVerified {
			t.Error("Expert answer must carry the verified flag")
		}
	})

	t.Run("StudentMayFollowUpOnceAnswered", func(t *testing.T) {
		q, err := service.AppendAnswer(ctx, "u-student-1", "q-seed-2", &AnswerCreateRequest{
			Text: "Thanks, that cleared it up for me.",
		})
		if err != nil {
			t.Fatalf("Follow-up answer failed: %v", err)
		}
		if q.Answers[len(q.Answers)-1].IsVerified {
			t.Error("Student follow-up must not be verified")
		}
	})
}

func TestForumService_ToggleFeatured(t *testing.T) {
	st := newTestStore(t)
	service := NewForumService(st, testLogger(), validator.New())
	ctx := context.Background()

	t.Run("ExpertDenied", func(t *testing.T) {
		_, err := service.ToggleFeatured(ctx, "u-expert-1", "q-seed-2")

		var permErr *PermissionError
		if !errors.As(err, &permErr) {
			t.Fatalf("Expected PermissionError, got %v", err)
		}
	})

	t.Run("FacultyToggles", func(t *testing.T) {
		q, err := service.ToggleFeatured(ctx, "u-faculty-1", "q-seed-2")
		if err != nil {
			t.Fatalf("ToggleFeatured failed: %v", err)
		}
		if !q.IsFeatured {
			t.Error("Expected question to be featured")
		}
	})
}

func TestForumService_CreateQuestionValidation(t *testing.T) {
	st := newTestStore(t)
	service := NewForumService(st, testLogger(), validator.New())

	_, err := service.CreateQuestion(context.Background(), "u-student-1", &QuestionCreateRequest{
		Title: "",
		Body:  "body without a title",
	})

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("Expected ValidationErrors, got %v", err)
	}
}
