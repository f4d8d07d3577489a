package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// NewReportParams carries validated report input.
type NewReportParams struct {
	TargetID    string
	TargetTitle string
	TargetType  string
	Reason      string
}

// AddReport files a moderation flag in the active queue.
func (s *Store) AddReport(ctx context.Context, reporterID string, params NewReportParams) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reporter := s.findUser(reporterID)
	if reporter == nil {
		return nil, ErrUserNotFound
	}

	r := &models.Report{
		ID:           "rep-" + uuid.New().String(),
		ReporterID:   reporter.ID,
		ReporterName: reporter.Name,
		TargetID:     params.TargetID,
		TargetTitle:  params.TargetTitle,
		TargetType:   params.TargetType,
		Reason:       params.Reason,
		Status:       models.ReportPending,
		CreatedAt:    time.Now().UTC(),
	}

	s.reports = append([]*models.Report{r}, s.reports...)
	return copyReport(r), nil
}

// ResolveReport removes the report from the active queue. Dismiss and
// take-down are both terminal; the action only changes the
// notification sent afterwards, not stored state.
func (s *Store) ResolveReport(ctx context.Context, reportID string) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reports {
		if r.ID == reportID {
			resolved := copyReport(r)
			resolved.Status = models.ReportResolved
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return resolved, nil
		}
	}

	return nil, ErrReportNotFound
}

// ListReports returns the active queue, newest first.
func (s *Store) ListReports(ctx context.Context) []*models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		result = append(result, copyReport(r))
	}
	return result
}
