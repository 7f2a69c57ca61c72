package trivia

// Category is a named grouping for questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap maps category id to its type, the shape clients render menus from.
type CategoryMap map[int]string

// Question is a quiz record. Category and Difficulty are nil when the creator omitted them.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   *int   `json:"category"`
	Difficulty *int   `json:"difficulty"`
}

// InCategory reports whether q belongs to category id.
func (q Question) InCategory(id int) bool {
	return q.Category != nil && *q.Category == id
}

// NewQuestion carries the fields accepted on creation.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   *int
	Difficulty *int
}

// QuestionPage is one window of an ordered question listing.
type QuestionPage struct {
	Questions      []Question
	TotalQuestions int
	Categories     CategoryMap
}

// QuizCategoryAll is the quiz category type that draws from every question.
const QuizCategoryAll = "click"

// QuizRequest asks for the next unseen question.
type QuizRequest struct {
	PreviousQuestions []int
	CategoryType      string
	CategoryID        int
}

// AllCategories reports whether the quiz spans every category.
func (r QuizRequest) AllCategories() bool {
	return r.CategoryType == QuizCategoryAll
}

func categoryMapOf(categories []Category) CategoryMap {
	m := make(CategoryMap, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
