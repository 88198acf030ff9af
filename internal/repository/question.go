package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mradulpatle03/IDE/pkg/model"
)

type QuestionRepository struct {
	db *pgxpool.Pool
}

// CreateBatch bulk-inserts generated questions for a session.
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	const q = `
INSERT INTO questions (question_id, session_id, question, answer, is_pinned, created_at)
VALUES ($1, $2, $3, $4, FALSE, now())
`
	for i := range questions {
		questions[i].QuestionID = uuid.New()
		batch.Queue(q, questions[i].QuestionID, questions[i].SessionID, questions[i].Question, questions[i].Answer)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < len(questions); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch insert question %d: %w", i, err)
		}
	}
	return nil
}

// TogglePin flips is_pinned in a single statement and reports the new value.
// Owner scoping goes through the owning session.
func (r *QuestionRepository) TogglePin(ctx context.Context, questionID, owner uuid.UUID) (bool, error) {
	const q = `
UPDATE questions q
SET is_pinned = NOT q.is_pinned
FROM sessions s
WHERE q.question_id = $1 AND s.session_id = q.session_id AND s.user_id = $2
RETURNING q.is_pinned
`
	var pinned bool
	if err := r.db.QueryRow(ctx, q, questionID, owner).Scan(&pinned); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("toggle question pin: %w", err)
	}
	return pinned, nil
}
