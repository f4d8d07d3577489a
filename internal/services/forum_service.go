package services

import (
	"context"
	"log/slog"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/validator"
)

type forumService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewForumService(st *store.Store, logger *slog.Logger, v *validator.Validator) ForumService {
	return &forumService{store: st, logger: logger, validator: v}
}

func (s *forumService) CreateQuestion(ctx context.Context, authorID string, req *QuestionCreateRequest) (*models.Question, error) {
	s.logger.Info("Creating question", "author_id", authorID, "title", req.Title)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	return s.store.AddQuestion(ctx, authorID, req.Title, req.Body, req.Category)
}

func (s *forumService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.store.GetQuestion(ctx, id)
}

func (s *forumService) ListQuestions(ctx context.Context, filter string) ([]*models.Question, error) {
	var f store.QuestionFilter
	switch filter {
	case "answered":
		f = store.QuestionsAnswered
	case "unanswered":
		f = store.QuestionsUnanswered
	default:
		f = store.QuestionsAll
	}
	return s.store.ListQuestions(ctx, f), nil
}

// AppendAnswer gates the first answer to an open question behind the
// technical-answer capability; once a question is Answered, any
// authenticated user may add follow-up replies.
func (s *forumService) AppendAnswer(ctx context.Context, actorID, questionID string, req *AnswerCreateRequest) (*models.Question, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	question, err := s.store.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if question.Status == models.QuestionUnanswered && !models.CanAnswerUnanswered(actor.Role) {
		return nil, NewPermissionError("answer an unanswered question", actor.Role)
	}

	return s.store.AppendAnswer(ctx, questionID, actorID, req.Text)
}

func (s *forumService) ToggleFeatured(ctx context.Context, actorID, questionID string) (*models.Question, error) {
	actor, err := s.store.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !models.CanModerateForum(actor.Role) {
		return nil, NewPermissionError("feature a question", actor.Role)
	}

	return s.store.ToggleFeatured(ctx, questionID)
}

func (s *forumService) UpvoteAnswer(ctx context.Context, questionID, answerID string) (*models.Question, error) {
	return s.store.UpvoteAnswer(ctx, questionID, answerID)
}

func (s *forumService) ReportQuestion(ctx context.Context, reporterID, questionID, reason string) (*models.Report, error) {
	question, err := s.store.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	return s.store.AddReport(ctx, reporterID, store.NewReportParams{
		TargetID:    question.ID,
		TargetTitle: question.Title,
		TargetType:  "question",
		Reason:      reason,
	})
}
