package services

import (
	"context"
	"errors"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

// stubGenerativeClient returns canned responses without touching the
// network.
type stubGenerativeClient struct {
	text    string
	sources []SourceRef
	path    *LearningPath
	err     error
	calls   int
}

func (s *stubGenerativeClient) GenerateText(ctx context.Context, turns []ChatTurn, message string, useSearch bool) (string, []SourceRef, error) {
	s.calls++
	return s.text, s.sources, s.err
}

func (s *stubGenerativeClient) GenerateLearningPath(ctx context.Context, goal string) (*LearningPath, error) {
	s.calls++
	return s.path, s.err
}

func TestAssistantService_Chat(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	t.Run("RelaysModelReply", func(t *testing.T) {
		stub := &stubGenerativeClient{
			text:    "Use a VPN and verify certificates.",
			sources: []SourceRef{{Title: "OWASP", URI: "https://owasp.org"}},
		}
		service := NewAssistantService(st, stub, testLogger(), validator.New())

		resp, err := service.Chat(ctx, "u-student-1", &ChatRequest{Message: "How do I browse safely on public wifi?", UseSearch: true})
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if resp.Text != stub.text {
			t.Errorf("Expected model text, got %q", resp.Text)
		}
		if len(resp.Sources) != 1 || resp.Sources[0].Title != "OWASP" {
			t.Errorf("Expected grounded source, got %v", resp.Sources)
		}
		if resp.ReportFiled {
			t.Error("Plain question must not file a report")
		}
	})

	t.Run("ReportKeywordIntercepted", func(t *testing.T) {
		stub := &stubGenerativeClient{text: "should never be returned"}
		service := NewAssistantService(st, stub, testLogger(), validator.New())

		resp, err := service.Chat(ctx, "u-student-1", &ChatRequest{Message: "I want to report a user for harassment"})
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if !resp.ReportFiled {
			t.Error("Expected report interception")
		}
		if stub.calls != 0 {
			t.Error("Intercepted message must not reach the model")
		}

		queue := st.ListReports(ctx)
		if len(queue) != 1 {
			t.Fatalf("Expected 1 filed report, got %d", len(queue))
		}
		if queue[0].ReporterID != "u-student-1" {
			t.Errorf("Report attributed to %s", queue[0].ReporterID)
		}
	})

	t.Run("ArabicReportKeywordIntercepted", func(t *testing.T) {
		stub := &stubGenerativeClient{}
		service := NewAssistantService(st, stub, testLogger(), validator.New())

		resp, err := service.Chat(ctx, "u-student-2", &ChatRequest{Message: "أريد تقديم شكوى ضد منشور مسيء"})
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if !resp.ReportFiled {
			t.Error("Expected interception on Arabic keyword")
		}
	})

	t.Run("ModelFailureReturnsFallback", func(t *testing.T) {
		stub := &stubGenerativeClient{err: errors.New("quota exceeded")}
		service := NewAssistantService(st, stub, testLogger(), validator.New())

		resp, err := service.Chat(ctx, "u-student-1", &ChatRequest{Message: "What is a rainbow table?"})

		var extErr *ExternalServiceError
		if !errors.As(err, &extErr) {
			t.Fatalf("Expected ExternalServiceError, got %v", err)
		}
		if resp == nil || resp.Text == "" {
			t.Error("Failure must still carry the static fallback text")
		}
	})
}

func TestAssistantService_RecommendLearningPath(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	t.Run("ReturnsStructuredPath", func(t *testing.T) {
		stub := &stubGenerativeClient{
			path: &LearningPath{
				Title:       "Penetration Testing Path",
				Description: "From networking basics to exploit development.",
				Steps: []LearningPathStep{
					{Label: "Networking fundamentals", Description: "OSI, TCP/IP", Type: "course"},
				},
			},
		}
		service := NewAssistantService(st, stub, testLogger(), validator.New())

		path, err := service.RecommendLearningPath(ctx, &LearningPathRequest{Goal: "become a penetration tester"})
		if err != nil {
			t.Fatalf("RecommendLearningPath failed: %v", err)
		}
		if path.Title == "" || len(path.Steps) == 0 {
			t.Errorf("Incomplete path: %+v", path)
		}
	})

	t.Run("BlankGoalRejected", func(t *testing.T) {
		service := NewAssistantService(st, &stubGenerativeClient{}, testLogger(), validator.New())

		_, err := service.RecommendLearningPath(ctx, &LearningPathRequest{Goal: ""})

		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			t.Fatalf("Expected ValidationErrors, got %v", err)
		}
	})
}
