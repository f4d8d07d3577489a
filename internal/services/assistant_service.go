package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

// reportKeywords trigger the moderation shortcut instead of a model
// call. Arabic terms cover the common phrasing on campus.
var reportKeywords = []string{"report", "بلاغ", "شكوى"}

const reportAck = "Your report has been filed and the moderation team will review it. " +
	"You can follow up with a moderator if the issue is urgent."

const assistantFallback = "Ask Cyber is unavailable right now. Please try again in a few minutes."

type assistantService struct {
	store     *store.Store
	client    generativeClient
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAssistantService(st *store.Store, client generativeClient, logger *slog.Logger, v *validator.Validator) AssistantService {
	return &assistantService{
		store:     st,
		client:    client,
		logger:    logger,
		validator: v,
	}
}

func (s *assistantService) Chat(ctx context.Context, userID string, req *ChatRequest) (*ChatResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if containsReportKeyword(req.Message) {
		return s.fileReportFromChat(ctx, userID, req.Message)
	}

	text, sources, err := s.client.GenerateText(ctx, req.History, req.Message, req.UseSearch)
	if err != nil {
		s.logger.Error("Assistant call failed", "user_id", userID, "error", err)
		return &ChatResponse{Text: assistantFallback}, NewExternalServiceError("gemini", err)
	}

	return &ChatResponse{Text: text, Sources: sources}, nil
}

// fileReportFromChat turns a report-flavored message into a real
// moderation report so it does not get lost in a chat transcript.
func (s *assistantService) fileReportFromChat(ctx context.Context, userID, message string) (*ChatResponse, error) {
	report, err := s.store.AddReport(ctx, userID, store.NewReportParams{
		TargetID:    "assistant-chat",
		TargetTitle: "Report filed via Ask Cyber",
		TargetType:  "chat",
		Reason:      message,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Report filed through assistant", "user_id", userID, "report_id", report.ID)

	return &ChatResponse{Text: reportAck, ReportFiled: true}, nil
}

func (s *assistantService) RecommendLearningPath(ctx context.Context, req *LearningPathRequest) (*LearningPath, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	path, err := s.client.GenerateLearningPath(ctx, req.Goal)
	if err != nil {
		s.logger.Error("Learning path generation failed", "error", err)
		return nil, NewExternalServiceError("gemini", err)
	}

	return path, nil
}

func containsReportKeyword(message string) bool {
	lowered := strings.ToLower(message)
	for _, kw := range reportKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
