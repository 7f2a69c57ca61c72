package store

import "github.com/jackc/pgx/v5/pgtype"

type Category struct {
	ID   int32  `db:"id"`
	Type string `db:"type"`
}

type Question struct {
	ID         int32       `db:"id"`
	Question   string      `db:"question"`
	Answer     string      `db:"answer"`
	Category   pgtype.Int4 `db:"category"`
	Difficulty pgtype.Int4 `db:"difficulty"`
}
