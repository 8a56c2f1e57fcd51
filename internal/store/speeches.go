package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/speechwriter/internal/speech"
)

// slugAttempts bounds how many fresh slugs Create tries before giving up.
const slugAttempts = 5

// Speech is a generated speech and the request that produced it. Rows are
// never updated.
type Speech struct {
	ID           string        `db:"id" json:"id"`
	Slug         string        `db:"slug" json:"slug"`
	UserID       string        `db:"user_id" json:"userId"`
	Type         speech.Type   `db:"speech_type" json:"speechType"`
	GroomName    string        `db:"groom_name" json:"groomName"`
	BrideName    string        `db:"bride_name" json:"brideName"`
	Relationship string        `db:"relationship" json:"relationship"`
	Stories      *string       `db:"stories" json:"stories"`
	Tone         speech.Tone   `db:"tone" json:"tone"`
	Length       speech.Length `db:"speech_length" json:"length"`
	Body         string        `db:"body" json:"speech"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`

	// User is populated by GetByID and GetBySlug.
	User *User `db:"-" json:"user,omitempty"`
}

// SpeechSummary is the sidebar projection of a speech.
type SpeechSummary struct {
	ID        string      `db:"id" json:"id"`
	Type      speech.Type `db:"speech_type" json:"speechType"`
	GroomName string      `db:"groom_name" json:"groomName"`
	BrideName string      `db:"bride_name" json:"brideName"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

// NewSpeech holds the fields of a speech to persist.
type NewSpeech struct {
	UserID       string
	Type         speech.Type
	GroomName    string
	BrideName    string
	Relationship string
	Stories      string // empty is stored as NULL
	Tone         speech.Tone
	Length       speech.Length
	Body         string
}

// SpeechOption configures a SpeechStore.
type SpeechOption func(*SpeechStore)

// WithSlugFunc replaces the share slug generator.
func WithSlugFunc(fn func() (string, error)) SpeechOption {
	return func(s *SpeechStore) { s.newSlug = fn }
}

type SpeechStore struct {
	db      *sqlx.DB
	users   *UserStore
	newSlug func() (string, error)
}

func NewSpeechStore(db *sqlx.DB, users *UserStore, opts ...SpeechOption) *SpeechStore {
	s := &SpeechStore{db: db, users: users, newSlug: NewSlug}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SpeechStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a speech under a fresh share slug. A slug collision is
// retried with a new slug; any other error is returned as is.
func (s *SpeechStore) Create(ctx context.Context, ns NewSpeech) (*Speech, error) {
	var stories *string
	if ns.Stories != "" {
		stories = &ns.Stories
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	err := retry.Do(
		func() error {
			slug, err := s.newSlug()
			if err != nil {
				return retry.Unrecoverable(err)
			}
			_, err = s.db.ExecContext(ctx, s.q(`
				INSERT INTO speeches (id, slug, user_id, speech_type, groom_name, bride_name,
					relationship, stories, tone, speech_length, body, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`), id, slug, ns.UserID, string(ns.Type), ns.GroomName, ns.BrideName,
				ns.Relationship, stories, string(ns.Tone), string(ns.Length), ns.Body, now)
			if isUniqueConstraintError(err) {
				return ErrSlugTaken
			}
			return err
		},
		retry.Attempts(slugAttempts),
		retry.RetryIf(func(err error) bool { return errors.Is(err, ErrSlugTaken) }),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(0),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("insert speech: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the speech matching id with its user, or ErrNotFound.
func (s *SpeechStore) GetByID(ctx context.Context, id string) (*Speech, error) {
	return s.get(ctx, `SELECT * FROM speeches WHERE id = ?`, id)
}

// GetBySlug returns the speech matching a share slug with its user, or ErrNotFound.
func (s *SpeechStore) GetBySlug(ctx context.Context, slug string) (*Speech, error) {
	return s.get(ctx, `SELECT * FROM speeches WHERE slug = ?`, slug)
}

func (s *SpeechStore) get(ctx context.Context, query, arg string) (*Speech, error) {
	var sp Speech
	err := s.db.GetContext(ctx, &sp, s.q(query), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, sp.UserID)
	if err != nil {
		return nil, fmt.Errorf("load speech user: %w", err)
	}
	sp.User = u
	return &sp, nil
}

// ListByUser returns the user's speeches, newest first. It returns an empty
// slice, never nil, when the user has none.
func (s *SpeechStore) ListByUser(ctx context.Context, userID string) ([]*SpeechSummary, error) {
	speeches := []*SpeechSummary{}
	err := s.db.SelectContext(ctx, &speeches, s.q(`
		SELECT id, speech_type, groom_name, bride_name, created_at
		FROM speeches
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`), userID)
	if err != nil {
		return nil, err
	}
	return speeches, nil
}

// Count returns the number of stored speeches.
func (s *SpeechStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM speeches`)
	return n, err
}
