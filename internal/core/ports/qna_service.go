package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// QuestionView is a question together with its answer, when one exists.
type QuestionView struct {
	domain.Question
	Answer *domain.Answer `json:"answer,omitempty"`
}

// QuestionPage is one zero-based page of questions.
type QuestionPage struct {
	Items      []domain.Question `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// CreateQuestionInput carries the writable fields of a question.
type CreateQuestionInput struct {
	Title   string
	Content string
}

// QnaService implements the question/answer use cases. Answering is the one
// operation gated by role rather than ownership: any admin may answer any
// question, exactly once per question.
type QnaService interface {
	ListQuestions(ctx context.Context, page, size int) (*QuestionPage, error)
	SearchQuestions(ctx context.Context, keyword string, page, size int) (*QuestionPage, error)
	GetQuestion(ctx context.Context, id string) (*QuestionView, error)
	MyQuestions(ctx context.Context, principal domain.Principal) ([]domain.Question, error)
	CreateQuestion(ctx context.Context, principal domain.Principal, input CreateQuestionInput) (*domain.Question, error)
	// DeleteQuestion is owner-only and removes any attached answer with it.
	DeleteQuestion(ctx context.Context, principal domain.Principal, id string) error
	// CreateAnswer is admin-only; it atomically flips the question's
	// answered flag alongside the answer write.
	CreateAnswer(ctx context.Context, principal domain.Principal, questionID, content string) (*domain.Answer, error)
}
