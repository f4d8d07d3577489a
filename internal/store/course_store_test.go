package store

import (
	"context"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

func TestAddResource(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("StudentSubmissionIsPending", func(t *testing.T) {
		r, err := st.AddResource(ctx, "u-student-1", NewResourceParams{
			CourseID: "c-software",
			Name:     "OWASP cheat sheet",
			Type:     models.ResourceArticle,
			URL:      "https://cheatsheetseries.owasp.org",
			Origin:   models.OriginCommunity,
		})
		if err != nil {
			t.Fatalf("AddResource failed: %v", err)
		}
		if r.Status != models.ResourcePending {
			t.Errorf("Expected pending status, got %q", r.Status)
		}
	})

	t.Run("FacultySubmissionAutoApproves", func(t *testing.T) {
		r, err := st.AddResource(ctx, "u-faculty-1", NewResourceParams{
			CourseID: "c-software",
			Name:     "Threat modeling slides",
			Type:     models.ResourceSummary,
			URL:      "https://hub.ucas.edu.ps/res/threat-modeling.pdf",
			Origin:   models.OriginOfficial,
		})
		if err != nil {
			t.Fatalf("AddResource failed: %v", err)
		}
		if r.Status != models.ResourceApproved {
			t.Errorf("Expected approved status, got %q", r.Status)
		}
	})

	t.Run("UnknownCourse", func(t *testing.T) {
		_, err := st.AddResource(ctx, "u-student-1", NewResourceParams{
			CourseID: "c-missing",
			Name:     "x",
			Type:     models.ResourceTool,
			URL:      "https://example.com",
			Origin:   models.OriginCommunity,
		})
		if err != ErrCourseNotFound {
			t.Errorf("Expected ErrCourseNotFound, got %v", err)
		}
	})
}

func TestSetResourceStatus(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	r, err := st.SetResourceStatus(ctx, "r-seed-3", models.ResourceApproved)
	if err != nil {
		t.Fatalf("SetResourceStatus failed: %v", err)
	}
	if r.Status != models.ResourceApproved {
		t.Errorf("Expected approved, got %q", r.Status)
	}

	// A later decision overwrites the previous one, last write wins.
	r, err = st.SetResourceStatus(ctx, "r-seed-3", models.ResourceRejected)
	if err != nil {
		t.Fatalf("SetResourceStatus failed: %v", err)
	}
	if r.Status != models.ResourceRejected {
		t.Errorf("Expected rejected after re-review, got %q", r.Status)
	}
}

func TestListResources(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("ZeroValuesMatchAll", func(t *testing.T) {
		all := st.ListResources(ctx, "", "")
		if len(all) != 3 {
			t.Errorf("Expected 3 seeded resources, got %d", len(all))
		}
	})

	t.Run("FilterByOriginAndStatus", func(t *testing.T) {
		pending := st.ListResources(ctx, models.OriginCommunity, models.ResourcePending)
		if len(pending) != 1 || pending[0].ID != "r-seed-3" {
			t.Errorf("Expected only r-seed-3, got %v", pending)
		}
	})
}

func TestListCourses(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	courses := st.ListCourses(ctx, "crypto")
	if len(courses) != 1 || courses[0].ID != "c-security" {
		t.Errorf("Expected the cryptography course, got %v", courses)
	}
}
