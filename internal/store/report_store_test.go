package store

import (
	"context"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

func TestReportLifecycle(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	report, err := st.AddReport(ctx, "u-student-1", NewReportParams{
		TargetID:    "q-seed-2",
		TargetTitle: "Difference between symmetric and asymmetric encryption in practice?",
		TargetType:  "question",
		Reason:      "Duplicate of an older thread",
	})
	if err != nil {
		t.Fatalf("AddReport failed: %v", err)
	}
	if report.Status != models.ReportPending {
		t.Errorf("Expected pending, got %q", report.Status)
	}

	queue := st.ListReports(ctx)
	if len(queue) != 1 {
		t.Fatalf("Expected 1 report in queue, got %d", len(queue))
	}

	resolved, err := st.ResolveReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("ResolveReport failed: %v", err)
	}
	if resolved.Status != models.ReportResolved {
		t.Errorf("Expected resolved, got %q", resolved.Status)
	}

	// Resolution removes the report from the active queue.
	if remaining := st.ListReports(ctx); len(remaining) != 0 {
		t.Errorf("Expected empty queue, got %d reports", len(remaining))
	}

	if _, err := st.ResolveReport(ctx, report.ID); err != ErrReportNotFound {
		t.Errorf("Expected ErrReportNotFound on second resolve, got %v", err)
	}
}
