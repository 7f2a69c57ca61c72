package trivia

import (
	"fmt"
	"strconv"
)

// QuestionsPerPage is the fixed page size of every question listing.
const QuestionsPerPage = 10

// ParsePage reads a 1-based page number. An empty value means page 1.
func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPage, raw)
	}
	return page, nil
}

// Paginate returns the page-th window of QuestionsPerPage items. Pages past the
// end yield an empty, non-nil slice; callers decide whether that is "not found".
func Paginate[T any](items []T, page int) ([]T, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page > pages {
		return []T{}, nil
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end], nil
}
