package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
)

const defaultPageSize = 10

// QnaService implements the question/answer use cases.
type QnaService struct {
	questions ports.QuestionRepository
	logger    zerolog.Logger
}

func NewQnaService(questions ports.QuestionRepository, logger zerolog.Logger) *QnaService {
	return &QnaService{questions: questions, logger: logger}
}

func (s *QnaService) ListQuestions(ctx context.Context, page, size int) (*ports.QuestionPage, error) {
	page, size = normalizePage(page, size)
	items, total, err := s.questions.FindPage(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return buildQuestionPage(items, total, page, size), nil
}

func (s *QnaService) SearchQuestions(ctx context.Context, keyword string, page, size int) (*ports.QuestionPage, error) {
	page, size = normalizePage(page, size)
	items, total, err := s.questions.SearchPage(ctx, keyword, page, size)
	if err != nil {
		return nil, err
	}
	return buildQuestionPage(items, total, page, size), nil
}

func (s *QnaService) GetQuestion(ctx context.Context, id string) (*ports.QuestionView, error) {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	answer, err := s.questions.FindAnswerByQuestionID(ctx, question.ID)
	if err != nil {
		return nil, err
	}
	return &ports.QuestionView{Question: *question, Answer: answer}, nil
}

func (s *QnaService) MyQuestions(ctx context.Context, principal domain.Principal) ([]domain.Question, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return nil, err
	}
	return s.questions.FindByOwner(ctx, principal.ID)
}

func (s *QnaService) CreateQuestion(ctx context.Context, principal domain.Principal, input ports.CreateQuestionInput) (*domain.Question, error) {
	if err := domain.RequireAuthenticated(principal); err != nil {
		return nil, err
	}

	question := &domain.Question{
		ID:        uuid.NewString(),
		OwnerID:   principal.ID,
		Username:  principal.Username,
		Title:     input.Title,
		Content:   input.Content,
		Answered:  false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Info().Str("question_id", question.ID).Str("username", principal.Username).Msg("question created")
	return question, nil
}

// DeleteQuestion removes an owned question and any attached answer. The
// repository performs the two deletes in one transaction.
func (s *QnaService) DeleteQuestion(ctx context.Context, principal domain.Principal, id string) error {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.RequireOwner(principal, question.OwnerID); err != nil {
		return err
	}
	return s.questions.Delete(ctx, question.ID)
}

// CreateAnswer attaches the single admin answer to a question. The answer
// insert and the answered-flag flip commit together or not at all; a second
// answer for the same question loses with domain.ErrAnswerExists.
func (s *QnaService) CreateAnswer(ctx context.Context, principal domain.Principal, questionID, content string) (*domain.Answer, error) {
	if err := domain.RequireRole(principal, domain.RoleAdmin); err != nil {
		return nil, err
	}

	question, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.Answered {
		return nil, domain.ErrAnswerExists
	}

	answer := &domain.Answer{
		ID:         uuid.NewString(),
		QuestionID: question.ID,
		OwnerID:    principal.ID,
		Username:   principal.Username,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.questions.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	s.logger.Info().Str("question_id", question.ID).Str("username", principal.Username).Msg("question answered")
	return answer, nil
}

func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	return page, size
}

func buildQuestionPage(items []domain.Question, total int64, page, size int) *ports.QuestionPage {
	if items == nil {
		items = []domain.Question{}
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &ports.QuestionPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
