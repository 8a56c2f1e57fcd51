// Package writer orchestrates speech generation: render the prompt, call the
// generator, then persist the result. The JSON API and the pages share it.
package writer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joestump/speechwriter/internal/llm"
	"github.com/joestump/speechwriter/internal/metrics"
	"github.com/joestump/speechwriter/internal/prompt"
	"github.com/joestump/speechwriter/internal/speech"
	"github.com/joestump/speechwriter/internal/store"
)

// ErrNotConfigured is returned before any network attempt when generation is
// disabled because no API key is configured.
var ErrNotConfigured = llm.ErrNotConfigured

// UserStore is the subset of store.UserStore the writer needs.
type UserStore interface {
	FindOrCreateByEmail(ctx context.Context, nu store.NewUser) (*store.User, bool, error)
}

// SpeechStore is the subset of store.SpeechStore the writer needs.
type SpeechStore interface {
	Create(ctx context.Context, ns store.NewSpeech) (*store.Speech, error)
}

// Service generates and stores speeches. A nil generator disables generation.
type Service struct {
	gen      llm.Generator
	users    UserStore
	speeches SpeechStore
}

func New(gen llm.Generator, users UserStore, speeches SpeechStore) *Service {
	return &Service{gen: gen, users: users, speeches: speeches}
}

// Configured reports whether a generator is available.
func (s *Service) Configured() bool {
	return s.gen != nil
}

// Generated is a stored speech. NewUser is set when the speech's user was
// created by this generation rather than found by email.
type Generated struct {
	*store.Speech
	NewUser bool
}

// Generate writes a new speech for in and stores it under the user identified
// by in.Email, creating that user on first use. Nothing is stored when the
// generator fails.
func (s *Service) Generate(ctx context.Context, in speech.GenerateInput) (*Generated, error) {
	p, err := prompt.Generation(in)
	if err != nil {
		return nil, err
	}

	body, err := s.call(ctx, metrics.KindSpeech, p, prompt.GenerateMaxTokens)
	if err != nil {
		return nil, err
	}

	u, created, err := s.users.FindOrCreateByEmail(ctx, store.NewUser{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Sex:       in.Sex,
	})
	if err != nil {
		return nil, fmt.Errorf("find or create user: %w", err)
	}

	sp, err := s.speeches.Create(ctx, store.NewSpeech{
		UserID:       u.ID,
		Type:         in.Type,
		GroomName:    in.GroomName,
		BrideName:    in.BrideName,
		Relationship: in.Relationship,
		Stories:      in.Stories,
		Tone:         in.Tone,
		Length:       in.Length,
		Body:         body,
	})
	if err != nil {
		return nil, fmt.Errorf("create speech: %w", err)
	}
	metrics.SpeechesCreatedTotal.Inc()
	return &Generated{Speech: sp, NewUser: created}, nil
}

// AssistInput is a question or rewrite request about a speech.
type AssistInput struct {
	Mode          speech.Mode
	SpeechContext string
	Message       string
	Selected      string
}

// Assist answers a question about the speech or rewrites the selected text,
// depending on in.Mode. It never writes to the database.
func (s *Service) Assist(ctx context.Context, in AssistInput) (string, error) {
	p, maxTokens, err := prompt.ForMode(in.Mode, in.SpeechContext, in.Message, in.Selected)
	if err != nil {
		return "", err
	}
	kind := metrics.KindChat
	if in.Mode == speech.ModeRewrite {
		kind = metrics.KindRewrite
	}
	return s.call(ctx, kind, p, maxTokens)
}

func (s *Service) call(ctx context.Context, kind, p string, maxTokens int) (string, error) {
	if s.gen == nil {
		metrics.GenerationsTotal.WithLabelValues(kind, "not_configured").Inc()
		return "", ErrNotConfigured
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, p, maxTokens)
	metrics.GenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	switch {
	case errors.Is(err, ErrNotConfigured):
		metrics.GenerationsTotal.WithLabelValues(kind, "not_configured").Inc()
		return "", err
	case err != nil:
		metrics.GenerationsTotal.WithLabelValues(kind, "error").Inc()
		return "", fmt.Errorf("generate %s: %w", kind, err)
	}
	metrics.GenerationsTotal.WithLabelValues(kind, "ok").Inc()
	return text, nil
}
