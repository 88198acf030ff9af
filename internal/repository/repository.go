package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row does not exist or is owned by someone
// else; callers cannot tell the two apart.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when a signup hits the unique email index.
var ErrDuplicateEmail = errors.New("email already exists")

type Repository struct {
	User     *UserRepository
	Project  *ProjectRepository
	Session  *SessionRepository
	Question *QuestionRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:     &UserRepository{db: db},
		Project:  &ProjectRepository{db: db},
		Session:  &SessionRepository{db: db},
		Question: &QuestionRepository{db: db},
	}
}
