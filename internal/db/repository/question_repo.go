package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/trivia-api/internal/db/store"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]store.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]store.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]store.Question, error)
	GetQuestion(ctx context.Context, id int32) (store.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
	InsertQuestion(ctx context.Context, arg store.InsertQuestionParams) (store.Question, error)
}

// QuestionRepository adapts the question queries to trivia.QuestionStore.
type QuestionRepository struct {
	store questionStore
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

func (r *QuestionRepository) List(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

// ListByCategory returns no rows for ids outside the int4 column range.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	id, ok := toInt4(categoryID)
	if !ok {
		return []trivia.Question{}, nil
	}
	rows, err := r.store.ListQuestionsByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

func (r *QuestionRepository) Get(ctx context.Context, id int) (trivia.Question, error) {
	key, ok := toInt4(id)
	if !ok {
		return trivia.Question{}, fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
	}
	row, err := r.store.GetQuestion(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Question{}, fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
		}
		return trivia.Question{}, err
	}
	return toQuestion(row), nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	key, ok := toInt4(id)
	if !ok {
		return fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
	}
	affected, err := r.store.DeleteQuestion(ctx, key)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
	}
	return nil
}

func (r *QuestionRepository) Insert(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	category, err := nullableInt4(q.Category)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("category: %w", err)
	}
	difficulty, err := nullableInt4(q.Difficulty)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("difficulty: %w", err)
	}
	row, err := r.store.InsertQuestion(ctx, store.InsertQuestionParams{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		return trivia.Question{}, err
	}
	return toQuestion(row), nil
}

func toQuestions(rows []store.Question) []trivia.Question {
	out := make([]trivia.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toQuestion(row))
	}
	return out
}

func toQuestion(row store.Question) trivia.Question {
	return trivia.Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   intFromInt4(row.Category),
		Difficulty: intFromInt4(row.Difficulty),
	}
}

func toInt4(v int) (int32, bool) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int32(v), true
}

func nullableInt4(v *int) (pgtype.Int4, error) {
	if v == nil {
		return pgtype.Int4{}, nil
	}
	n, ok := toInt4(*v)
	if !ok {
		return pgtype.Int4{}, fmt.Errorf("value %d out of range", *v)
	}
	return pgtype.Int4{Int32: n, Valid: true}, nil
}

func intFromInt4(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}
