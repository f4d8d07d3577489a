package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// AddQuestion inserts a new forum post at the head of the collection
// and rewards the author.
func (s *Store) AddQuestion(ctx context.Context, authorID, title, body, category string) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.findUser(authorID)
	if author == nil {
		return nil, ErrUserNotFound
	}

	q := &models.Question{
		ID:         "q-" + uuid.New().String(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		AuthorRole: author.Role,
		Title:      title,
		Body:       body,
		Category:   category,
		Status:     models.QuestionUnanswered,
		Answers:    []models.Answer{},
		CreatedAt:  time.Now().UTC(),
	}

	s.questions = append([]*models.Question{q}, s.questions...)

	addKarma(author, s.karma.QuestionReward)
	appendActivity(author, models.ActivityQuestion, q.ID, q.Title)
	s.persistUsers(ctx)

	return copyQuestion(q), nil
}

// AppendAnswer attaches a reply and flips the question to Answered.
// The verification flag is computed from the author's role at this
// moment and never recomputed. Appending to an already-Answered
// question leaves the status untouched.
func (s *Store) AppendAnswer(ctx context.Context, questionID, authorID, text string) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.findUser(authorID)
	if author == nil {
		return nil, ErrUserNotFound
	}

	q := s.findQuestion(questionID)
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	answer := models.Answer{
		ID:         "a-" + uuid.New().String(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		AuthorRole: author.Role,
		Text:       text,
		IsVerified: author.Role != models.RoleStudent,
		CreatedAt:  time.Now().UTC(),
	}

	q.Answers = append(q.Answers, answer)
	q.Status = models.QuestionAnswered

	appendActivity(author, models.ActivityAnswer, q.ID, q.Title)
	s.persistUsers(ctx)

	return copyQuestion(q), nil
}

// ToggleFeatured flips the moderator pin on a question.
func (s *Store) ToggleFeatured(ctx context.Context, questionID string) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuestion(questionID)
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	q.IsFeatured = !q.IsFeatured
	return copyQuestion(q), nil
}

// UpvoteAnswer increments the upvote counter on one answer.
func (s *Store) UpvoteAnswer(ctx context.Context, questionID, answerID string) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuestion(questionID)
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	for i := range q.Answers {
		if q.Answers[i].ID == answerID {
			q.Answers[i].Upvotes++
			return copyQuestion(q), nil
		}
	}

	return nil, ErrQuestionNotFound
}

// GetQuestion returns a copy of one question.
func (s *Store) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := s.findQuestion(id)
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return copyQuestion(q), nil
}

// QuestionFilter selects a status band for ListQuestions.
type QuestionFilter string

const (
	QuestionsAll        QuestionFilter = "all"
	QuestionsAnswered   QuestionFilter = "answered"
	QuestionsUnanswered QuestionFilter = "unanswered"
)

// ListQuestions projects the forum view: filtered by status, with
// featured questions pinned first and newest first within each band.
func (s *Store) ListQuestions(ctx context.Context, filter QuestionFilter) []*models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var featured, rest []*models.Question
	for _, q := range s.questions {
		switch filter {
		case QuestionsAnswered:
			if q.Status != models.QuestionAnswered {
				continue
			}
		case QuestionsUnanswered:
			if q.Status != models.QuestionUnanswered {
				continue
			}
		}
		if q.IsFeatured {
			featured = append(featured, copyQuestion(q))
		} else {
			rest = append(rest, copyQuestion(q))
		}
	}

	return append(featured, rest...)
}

// findQuestion must be called with the lock held.
func (s *Store) findQuestion(id string) *models.Question {
	for _, q := range s.questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}
