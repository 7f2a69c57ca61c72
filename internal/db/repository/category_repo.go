package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/db/store"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]store.Category, error)
}

// CategoryRepository adapts the category queries to trivia.CategoryStore.
type CategoryRepository struct {
	store categoryStore
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]trivia.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, trivia.Category{ID: int(row.ID), Type: row.Type})
	}
	return out, nil
}
