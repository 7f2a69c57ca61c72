package trivia

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// memoryStore is an in-memory QuestionStore.
type memoryStore struct {
	mu        sync.Mutex
	nextID    int
	questions map[int]Question

	failWith error
}

func newMemoryStore(questions ...Question) *memoryStore {
	s := &memoryStore{
		questions: map[int]Question{},
	}
	for _, q := range questions {
		s.questions[q.ID] = q
		if q.ID >= s.nextID {
			s.nextID = q.ID
		}
	}
	return s
}

func (s *memoryStore) sorted(keep func(Question) bool) []Question {
	out := []Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memoryStore) List(ctx context.Context) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.sorted(func(Question) bool { return true }), nil
}

func (s *memoryStore) ListByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.sorted(func(q Question) bool { return q.InCategory(categoryID) }), nil
}

func (s *memoryStore) Search(ctx context.Context, term string) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	term = strings.ToLower(term)
	return s.sorted(func(q Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (s *memoryStore) Get(ctx context.Context, id int) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return Question{}, s.failWith
	}
	q, ok := s.questions[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	return q, nil
}

func (s *memoryStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.questions[id]; !ok {
		return ErrNotFound
	}
	delete(s.questions, id)
	return nil
}

func (s *memoryStore) Insert(ctx context.Context, nq NewQuestion) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return Question{}, s.failWith
	}
	s.nextID++
	q := Question{
		ID:         s.nextID,
		Question:   nq.Question,
		Answer:     nq.Answer,
		Category:   nq.Category,
		Difficulty: nq.Difficulty,
	}
	s.questions[q.ID] = q
	return q, nil
}

type memoryCategories struct {
	categories []Category
	calls      int
	err        error
}

func (c *memoryCategories) List(ctx context.Context) ([]Category, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.categories, nil
}

type memoryCache struct {
	stored  CategoryMap
	getErr  error
	setCall int
}

func (c *memoryCache) Get(context.Context) (CategoryMap, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *memoryCache) Set(_ context.Context, categories CategoryMap) error {
	c.setCall++
	c.stored = categories
	return nil
}

func intPtr(v int) *int {
	return &v
}

func question(id, category int, text string) Question {
	return Question{
		ID:         id,
		Question:   text,
		Answer:     "answer " + text,
		Category:   intPtr(category),
		Difficulty: intPtr(1 + id%5),
	}
}

var seedCategories = []Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// seedQuestions builds n questions spread across categories 1..4; category 6 stays empty.
func seedQuestions(n int) []Question {
	out := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, question(i, 1+(i-1)%4, "Question number "+strings.Repeat("x", i%3)))
	}
	return out
}
