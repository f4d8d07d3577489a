package store

import (
	"context"
	"testing"
)

func TestToggleRoadmapStep(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	before, _ := st.GetUserByID(ctx, "u-student-1")

	t.Run("Complete", func(t *testing.T) {
		result, err := st.ToggleRoadmapStep(ctx, "u-student-1", "rm-security", "rm-sec-1")
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if !result.Completed {
			t.Error("Expected completion")
		}
		if result.User.Karma != before.Karma+100 {
			t.Errorf("Expected karma %d, got %d", before.Karma+100, result.User.Karma)
		}
		if !result.User.HasCompletedStep("rm-sec-1") {
			t.Error("Completed-steps set missing the step")
		}
	})

	t.Run("Undo", func(t *testing.T) {
		result, err := st.ToggleRoadmapStep(ctx, "u-student-1", "rm-security", "rm-sec-1")
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if result.Completed {
			t.Error("Expected undo")
		}
		if result.User.Karma != before.Karma+90 {
			t.Errorf("Expected karma %d after complete+undo, got %d", before.Karma+90, result.User.Karma)
		}
		if result.User.HasCompletedStep("rm-sec-1") {
			t.Error("Step still marked complete after undo")
		}
	})

	t.Run("UnknownStep", func(t *testing.T) {
		if _, err := st.ToggleRoadmapStep(ctx, "u-student-1", "rm-security", "rm-missing"); err != ErrStepNotFound {
			t.Errorf("Expected ErrStepNotFound, got %v", err)
		}
	})

	t.Run("UnknownRoadmap", func(t *testing.T) {
		if _, err := st.ToggleRoadmapStep(ctx, "u-student-1", "rm-missing", "rm-sec-1"); err != ErrRoadmapNotFound {
			t.Errorf("Expected ErrRoadmapNotFound, got %v", err)
		}
	})
}
