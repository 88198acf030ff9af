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

// SessionRepository stores interview-practice sessions. A session here is a
// saved role/experience/topics configuration, not the auth cookie.
type SessionRepository struct {
	db *pgxpool.Pool
}

// Create inserts a new session and fills in the generated id.
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	s.SessionID = uuid.New()
	const q = `
INSERT INTO sessions (session_id, user_id, role, experience, topics_to_focus, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
`
	_, err := r.db.Exec(ctx, q, s.SessionID, s.UserID, s.Role, s.Experience, s.TopicsToFocus)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// ListByUser returns the user's sessions newest first, questions attached.
func (r *SessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	const q = `
SELECT session_id, user_id, role, experience, topics_to_focus, created_at, updated_at
FROM sessions
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.SessionID, &s.UserID, &s.Role, &s.Experience, &s.TopicsToFocus, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Questions = []model.Question{}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(out))
	index := make(map[uuid.UUID]int, len(out))
	for i, s := range out {
		ids[i] = s.SessionID
		index[s.SessionID] = i
	}

	const qq = `
SELECT question_id, session_id, question, answer, is_pinned, created_at
FROM questions
WHERE session_id = ANY($1)
ORDER BY is_pinned DESC, created_at DESC
`
	qrows, err := r.db.Query(ctx, qq, ids)
	if err != nil {
		return nil, fmt.Errorf("query session questions: %w", err)
	}
	defer qrows.Close()

	for qrows.Next() {
		var qn model.Question
		if err := qrows.Scan(&qn.QuestionID, &qn.SessionID, &qn.Question, &qn.Answer, &qn.IsPinned, &qn.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		i := index[qn.SessionID]
		out[i].Questions = append(out[i].Questions, qn)
	}
	return out, qrows.Err()
}

// GetByIDAndOwner fetches one session with its questions, pinned first then
// newest.
func (r *SessionRepository) GetByIDAndOwner(ctx context.Context, sessionID, owner uuid.UUID) (model.Session, error) {
	const q = `
SELECT session_id, user_id, role, experience, topics_to_focus, created_at, updated_at
FROM sessions
WHERE session_id = $1 AND user_id = $2
`
	var s model.Session
	row := r.db.QueryRow(ctx, q, sessionID, owner)
	if err := row.Scan(&s.SessionID, &s.UserID, &s.Role, &s.Experience, &s.TopicsToFocus, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, ErrNotFound
		}
		return model.Session{}, fmt.Errorf("scan session: %w", err)
	}

	const qq = `
SELECT question_id, session_id, question, answer, is_pinned, created_at
FROM questions
WHERE session_id = $1
ORDER BY is_pinned DESC, created_at DESC
`
	rows, err := r.db.Query(ctx, qq, sessionID)
	if err != nil {
		return model.Session{}, fmt.Errorf("query session questions: %w", err)
	}
	defer rows.Close()

	s.Questions = []model.Question{}
	for rows.Next() {
		var qn model.Question
		if err := rows.Scan(&qn.QuestionID, &qn.SessionID, &qn.Question, &qn.Answer, &qn.IsPinned, &qn.CreatedAt); err != nil {
			return model.Session{}, fmt.Errorf("scan question: %w", err)
		}
		s.Questions = append(s.Questions, qn)
	}
	return s, rows.Err()
}

// Delete removes the session; questions go with it via the cascade.
func (r *SessionRepository) Delete(ctx context.Context, sessionID, owner uuid.UUID) error {
	const q = `DELETE FROM sessions WHERE session_id = $1 AND user_id = $2`
	ct, err := r.db.Exec(ctx, q, sessionID, owner)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
