package store

import (
	"context"
	"testing"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

func TestAddQuestion(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	before, _ := st.GetUserByID(ctx, "u-student-1")

	q, err := st.AddQuestion(ctx, "u-student-1", "How does ARP spoofing work?", "Looking for a practical explanation.", "Networks")
	if err != nil {
		t.Fatalf("AddQuestion failed: %v", err)
	}

	if q.Status != models.QuestionUnanswered {
		t.Errorf("Expected unanswered status, got %q", q.Status)
	}

	after, _ := st.GetUserByID(ctx, "u-student-1")
	if after.Karma != before.Karma+10 {
		t.Errorf("Expected karma %d, got %d", before.Karma+10, after.Karma)
	}
	if len(after.Activity) != len(before.Activity)+1 {
		t.Error("Expected an activity entry for the new question")
	}

	// Newest first among non-featured questions.
	list := st.ListQuestions(ctx, QuestionsAll)
	var firstUnfeatured *models.Question
	for _, item := range list {
		if !item.IsFeatured {
			firstUnfeatured = item
			break
		}
	}
	if firstUnfeatured == nil || firstUnfeatured.ID != q.ID {
		t.Error("New question should lead the unfeatured band")
	}
}

func TestAppendAnswer(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("StudentAnswerIsUnverified", func(t *testing.T) {
		q, err := st.AppendAnswer(ctx, "q-seed-1", "u-student-2", "You can also use Cuckoo Sandbox.")
		if err != nil {
			t.Fatalf("AppendAnswer failed: %v", err)
		}
		last := q.Answers[len(q.Answers)-1]
		if last.IsVerified {
			t.Error("Student answer must not be verified")
		}
	})

	t.Run("ExpertAnswerIsVerified", func(t *testing.T) {
		q, err := st.AppendAnswer(ctx, "q-seed-2", "u-expert-1", "Symmetric for bulk data, asymmetric for key exchange.")
		if err != nil {
			t.Fatalf("AppendAnswer failed: %v", err)
		}
		last := q.Answers[len(q.Answers)-1]
		if !last.IsVerified {
			t.Error("Expert answer must be verified")
		}
		if q.Status != models.QuestionAnswered {
			t.Errorf("Expected answered status, got %q", q.Status)
		}
	})

	t.Run("VerificationFrozenAfterDemotion", func(t *testing.T) {
		// The flag reflects the author's role at answer time, not now.
		if _, err := st.UpdateRole(ctx, "u-owner", "u-expert-1", models.RoleStudent); err != nil {
			t.Fatalf("UpdateRole failed: %v", err)
		}

		q, err := st.GetQuestion(ctx, "q-seed-2")
		if err != nil {
			t.Fatalf("GetQuestion failed: %v", err)
		}
		if !q.Answers[len(q.Answers)-1].IsVerified {
			t.Error("Verification flag must stay frozen after a role change")
		}
	})

	t.Run("SecondAnswerKeepsAnsweredStatus", func(t *testing.T) {
		q, err := st.AppendAnswer(ctx, "q-seed-2", "u-student-1", "Real systems combine both, like TLS does.")
		if err != nil {
			t.Fatalf("AppendAnswer failed: %v", err)
		}
		if q.Status != models.QuestionAnswered {
			t.Errorf("Expected answered status to persist, got %q", q.Status)
		}
	})
}

func TestListQuestionsFeaturedFirst(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	list := st.ListQuestions(ctx, QuestionsAll)
	if len(list) == 0 || !list[0].IsFeatured {
		t.Error("Featured questions must lead the list")
	}

	unanswered := st.ListQuestions(ctx, QuestionsUnanswered)
	for _, q := range unanswered {
		if q.Status != models.QuestionUnanswered {
			t.Errorf("Filter leaked question with status %q", q.Status)
		}
	}
}

func TestUpvoteAnswer(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	q, err := st.UpvoteAnswer(ctx, "q-seed-1", "a-seed-1")
	if err != nil {
		t.Fatalf("UpvoteAnswer failed: %v", err)
	}
	if q.Answers[0].Upvotes != 13 {
		t.Errorf("Expected 13 upvotes, got %d", q.Answers[0].Upvotes)
	}
}
