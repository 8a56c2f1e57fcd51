package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/speechwriter/internal/speech"
)

// User is a speaker. Email is the identity key.
type User struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	FirstName string     `db:"first_name" json:"firstName"`
	LastName  string     `db:"last_name" json:"lastName"`
	Sex       speech.Sex `db:"sex" json:"sex"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

// FullName is the speaker's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NewUser describes the user to find or create.
type NewUser struct {
	Email     string
	FirstName string
	LastName  string
	Sex       speech.Sex
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) q(query string) string { return s.db.Rebind(query) }

// FindOrCreateByEmail returns the user with nu.Email, inserting it first when
// no such user exists. created reports whether this call inserted the row. An
// existing user keeps its stored names and sex. Concurrent callers with the
// same email end up with the same row because the insert is a no-op on
// conflict with the unique email index.
func (s *UserStore) FindOrCreateByEmail(ctx context.Context, nu NewUser) (u *User, created bool, err error) {
	insert := `INSERT INTO users (id, email, first_name, last_name, sex, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING`
	if s.db.DriverName() == "mysql" {
		insert = `INSERT IGNORE INTO users (id, email, first_name, last_name, sex, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	}

	res, err := s.db.ExecContext(ctx, s.q(insert),
		uuid.New().String(), nu.Email, nu.FirstName, nu.LastName, string(nu.Sex), time.Now().UTC())
	if err != nil {
		return nil, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	u, err = s.GetByEmail(ctx, nu.Email)
	if err != nil {
		return nil, false, err
	}
	return u, n == 1, nil
}

// GetByEmail returns the user matching email, or ErrNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE email = ?`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user matching id, or ErrNotFound.
func (s *UserStore) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Count returns the number of users.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}
