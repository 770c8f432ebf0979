package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

const (
	questionsCollection = "questions"
	answersCollection   = "answers"
)

// QuestionRepository persists questions and their 1:1 answers. The answer
// insert plus the answered-flag flip, and the question delete plus the
// answer cascade, each run in one multi-document transaction so the derived
// flag can never disagree with the answer rows.
type QuestionRepository struct {
	db        *mongo.Database
	questions *mongo.Collection
	answers   *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{
		db:        db,
		questions: db.Collection(questionsCollection),
		answers:   db.Collection(answersCollection),
	}
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	if _, err := r.questions.InsertOne(ctx, question); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	var question domain.Question
	if err := r.questions.FindOne(ctx, bson.M{"_id": id}).Decode(&question); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	return &question, nil
}

func (r *QuestionRepository) FindPage(ctx context.Context, page, size int) ([]domain.Question, int64, error) {
	return r.findPage(ctx, bson.M{}, page, size)
}

func (r *QuestionRepository) SearchPage(ctx context.Context, keyword string, page, size int) ([]domain.Question, int64, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": pattern},
		{"content": pattern},
	}}
	return r.findPage(ctx, filter, page, size)
}

func (r *QuestionRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.questions.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find questions by owner: %w", err)
	}
	defer cursor.Close(ctx)

	questions := []domain.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

// Delete removes the question and any attached answer; both deletes commit
// together or not at all.
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.questions.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		if res.DeletedCount == 0 {
			return domain.ErrQuestionNotFound
		}
		if _, err := r.answers.DeleteMany(sc, bson.M{"question_id": id}); err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}
		return nil
	})
}

// CreateAnswer inserts the answer and marks the question answered in one
// transaction. The unique index on question_id turns a concurrent second
// answer into domain.ErrAnswerExists with no partial write surviving.
func (r *QuestionRepository) CreateAnswer(ctx context.Context, answer *domain.Answer) error {
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := r.answers.InsertOne(sc, answer); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return domain.ErrAnswerExists
			}
			return fmt.Errorf("insert answer: %w", err)
		}

		res, err := r.questions.UpdateOne(sc,
			bson.M{"_id": answer.QuestionID},
			bson.M{"$set": bson.M{"answered": true}},
		)
		if err != nil {
			return fmt.Errorf("mark question answered: %w", err)
		}
		if res.MatchedCount == 0 {
			return domain.ErrQuestionNotFound
		}
		return nil
	})
}

func (r *QuestionRepository) FindAnswerByQuestionID(ctx context.Context, questionID string) (*domain.Answer, error) {
	var answer domain.Answer
	if err := r.answers.FindOne(ctx, bson.M{"question_id": questionID}).Decode(&answer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find answer: %w", err)
	}
	return &answer, nil
}

func (r *QuestionRepository) findPage(ctx context.Context, filter bson.M, page, size int) ([]domain.Question, int64, error) {
	total, err := r.questions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))

	cursor, err := r.questions.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find questions: %w", err)
	}
	defer cursor.Close(ctx)

	questions := []domain.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, 0, fmt.Errorf("decode questions: %w", err)
	}
	return questions, total, nil
}

func (r *QuestionRepository) inTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// EnsureIndexes creates the list/search indexes and the unique index that
// enforces one answer per question.
func (r *QuestionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	questionIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}
	if _, err := r.questions.Indexes().CreateMany(ctx, questionIndexes); err != nil {
		return err
	}

	answerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "question_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := r.answers.Indexes().CreateMany(ctx, answerIndexes)
	return err
}
