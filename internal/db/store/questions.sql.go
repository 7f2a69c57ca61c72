package store

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const questionColumns = `id, question, answer, category, difficulty`

const listQuestions = `
SELECT ` + questionColumns + ` FROM questions
ORDER BY id
`

func (q *Queries) ListQuestions(ctx context.Context) ([]Question, error) {
	return q.collectQuestions(ctx, listQuestions)
}

const listQuestionsByCategory = `
SELECT ` + questionColumns + ` FROM questions
WHERE category = $1
ORDER BY id
`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, category int32) ([]Question, error) {
	return q.collectQuestions(ctx, listQuestionsByCategory, category)
}

const searchQuestions = `
SELECT ` + questionColumns + ` FROM questions
WHERE question ILIKE '%' || $1 || '%' ESCAPE '\'
ORDER BY id
`

// SearchQuestions matches term as a literal, case-insensitive substring of the question text.
func (q *Queries) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	return q.collectQuestions(ctx, searchQuestions, EscapeLike(term))
}

const getQuestion = `
SELECT ` + questionColumns + ` FROM questions
WHERE id = $1
`

func (q *Queries) GetQuestion(ctx context.Context, id int32) (Question, error) {
	rows, err := q.db.Query(ctx, getQuestion, id)
	if err != nil {
		return Question{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Question])
}

const deleteQuestion = `
DELETE FROM questions
WHERE id = $1
`

func (q *Queries) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const insertQuestion = `
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING ` + questionColumns

type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   pgtype.Int4
	Difficulty pgtype.Int4
}

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	rows, err := q.db.Query(ctx, insertQuestion, arg.Question, arg.Answer, arg.Category, arg.Difficulty)
	if err != nil {
		return Question{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Question])
}

func (q *Queries) collectQuestions(ctx context.Context, sql string, args ...interface{}) ([]Question, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralises LIKE wildcards so term is matched literally.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
