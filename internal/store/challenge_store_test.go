package store

import (
	"context"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

func TestUpsertJoinRequest(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("FilesPendingRequest", func(t *testing.T) {
		ch, err := st.UpsertJoinRequest(ctx, "u-student-1")
		if err != nil {
			t.Fatalf("UpsertJoinRequest failed: %v", err)
		}
		if len(ch.JoinRequests) != 1 {
			t.Fatalf("Expected 1 request, got %d", len(ch.JoinRequests))
		}
		if ch.JoinRequests[0].Status != models.RequestPending {
			t.Errorf("Expected pending, got %q", ch.JoinRequests[0].Status)
		}
	})

	t.Run("RepeatRequestReplacesPrior", func(t *testing.T) {
		if _, err := st.SetJoinRequestStatus(ctx, "u-student-1", models.RequestRejected); err != nil {
			t.Fatalf("SetJoinRequestStatus failed: %v", err)
		}

		ch, err := st.UpsertJoinRequest(ctx, "u-student-1")
		if err != nil {
			t.Fatalf("UpsertJoinRequest failed: %v", err)
		}
		if len(ch.JoinRequests) != 1 {
			t.Fatalf("Expected one request per user, got %d", len(ch.JoinRequests))
		}
		if ch.JoinRequests[0].Status != models.RequestPending {
			t.Errorf("Re-request must reset status to pending, got %q", ch.JoinRequests[0].Status)
		}
	})
}

func TestSetJoinRequestStatus(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := st.UpsertJoinRequest(ctx, "u-student-2"); err != nil {
		t.Fatalf("UpsertJoinRequest failed: %v", err)
	}

	ch, err := st.SetJoinRequestStatus(ctx, "u-student-2", models.RequestAccepted)
	if err != nil {
		t.Fatalf("SetJoinRequestStatus failed: %v", err)
	}
	if ch.JoinRequests[0].Status != models.RequestAccepted {
		t.Errorf("Expected accepted, got %q", ch.JoinRequests[0].Status)
	}

	if _, err := st.SetJoinRequestStatus(ctx, "u-missing", models.RequestAccepted); err != ErrRequestNotFound {
		t.Errorf("Expected ErrRequestNotFound, got %v", err)
	}
}
