package trivia

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// QuestionStore is the persistence capability set for questions. Every listing is
// ordered by id ascending.
type QuestionStore interface {
	List(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	Get(ctx context.Context, id int) (Question, error)
	Delete(ctx context.Context, id int) error
	Insert(ctx context.Context, q NewQuestion) (Question, error)
}

// CategoryStore lists categories ordered by id.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
}

// CategoryCache defines cache behavior (implemented by Redis-backed Cache).
type CategoryCache interface {
	Get(ctx context.Context) (CategoryMap, error)
	Set(ctx context.Context, categories CategoryMap) error
}

// Service implements the trivia operations over injected stores.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
	logger     zerolog.Logger
}

// NewService wires the stores. cache may be nil.
func NewService(questions QuestionStore, categories CategoryStore, cache CategoryCache, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// Categories returns the full category mapping, ErrNotFound when there are none.
func (s *Service) Categories(ctx context.Context) (CategoryMap, error) {
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("categories: %w", ErrNotFound)
	}
	return categories, nil
}

// ListQuestions returns one page of every question. An empty page is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	paged, err := Paginate(all, page)
	if err != nil {
		return QuestionPage{}, err
	}
	if len(paged) == 0 {
		return QuestionPage{}, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{
		Questions:      paged,
		TotalQuestions: len(all),
		Categories:     categories,
	}, nil
}

// DeleteQuestion removes question id permanently.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questions.Get(ctx, id); err != nil {
		return fmt.Errorf("get question %d: %w", id, err)
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

// CreateQuestion persists q and returns its assigned id. Store failures are
// reported as ErrUnprocessable.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion) (int, error) {
	created, err := s.questions.Insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w: %w", ErrUnprocessable, err)
	}
	s.logger.Info().Int("question_id", created.ID).Msg("question created")
	return created.ID, nil
}

// SearchQuestions returns one page of the questions whose text contains term,
// ignoring case, and the total match count. An empty page is not an error.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("search questions: %w", err)
	}
	paged, err := Paginate(matches, page)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{
		Questions:      paged,
		TotalQuestions: len(matches),
	}, nil
}

// QuestionsByCategory returns one page of the questions in categoryID.
// ErrNotFound when the category holds no questions.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (QuestionPage, error) {
	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list category %d questions: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return QuestionPage{}, fmt.Errorf("category %d questions: %w", categoryID, ErrNotFound)
	}
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	paged, err := Paginate(questions, page)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{
		Questions:      paged,
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// NextQuizQuestion returns the first question, in id order, that the quiz has
// not asked yet. The boolean is false when the candidates are exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (Question, bool, error) {
	var (
		candidates []Question
		err        error
	)
	if req.AllCategories() {
		candidates, err = s.questions.List(ctx)
	} else {
		candidates, err = s.questions.ListByCategory(ctx, req.CategoryID)
	}
	if err != nil {
		return Question{}, false, fmt.Errorf("quiz candidates: %w", err)
	}
	next, ok := NextQuestion(candidates, req.PreviousQuestions)
	return next, ok, nil
}

func (s *Service) categoryMap(ctx context.Context) (CategoryMap, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	m := categoryMapOf(categories)

	if s.cache != nil && len(m) > 0 {
		if err := s.cache.Set(ctx, m); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return m, nil
}
