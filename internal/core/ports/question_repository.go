package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// QuestionRepository persists questions and their 1:1 answers. The two
// mutations that touch both records, attaching an answer and deleting a
// question, are atomic: the store commits both writes or neither, so the
// answered flag can never disagree with the presence of an answer row.
type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	// FindPage returns one zero-based page of questions, newest first, plus
	// the total count. Out-of-range pages yield an empty slice, not an error.
	FindPage(ctx context.Context, page, size int) ([]domain.Question, int64, error)
	// SearchPage is FindPage filtered by a keyword matched against title and
	// content with case-insensitive contains semantics.
	SearchPage(ctx context.Context, keyword string, page, size int) ([]domain.Question, int64, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Question, error)
	// Delete removes the question and any attached answer in one transaction.
	Delete(ctx context.Context, id string) error

	// CreateAnswer inserts the answer and flips the owning question's
	// answered flag in one transaction. A concurrent second answer for the
	// same question fails with domain.ErrAnswerExists (unique index on
	// question_id).
	CreateAnswer(ctx context.Context, answer *domain.Answer) error
	// FindAnswerByQuestionID returns (nil, nil) when the question has no
	// answer; errors are reserved for store failures.
	FindAnswerByQuestionID(ctx context.Context, questionID string) (*domain.Answer, error)
}
