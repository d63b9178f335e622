package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionStore keeps sessions for the lifetime of the process. Update runs
// fn against a private copy and commits it only when fn succeeds; calls for
// the same session are serialized.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateSessionInput struct {
	Sample   bool   `json:"sample"`
	Language string `json:"language"`
}

// Editor owns the update path of every session: each accepted change
// replaces the snapshot and recomputes its layout exactly once.
type Editor struct {
	store           SessionStore
	newID           IDFunc
	now             func() time.Time
	defaultLanguage string
	log             zerolog.Logger
}

type EditorOption func(*Editor)

// WithIDFunc overrides the generator used for new entry identifiers.
func WithIDFunc(f IDFunc) EditorOption {
	return func(e *Editor) { e.newID = f }
}

func WithClock(now func() time.Time) EditorOption {
	return func(e *Editor) { e.now = now }
}

func NewEditor(store SessionStore, defaultLanguage string, logger zerolog.Logger, opts ...EditorOption) *Editor {
	e := &Editor{
		store:           store,
		newID:           uuid.NewString,
		now:             time.Now,
		defaultLanguage: defaultLanguage,
		log:             logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Create(ctx context.Context, in CreateSessionInput) (*domain.Session, error) {
	r := model.Empty()
	if in.Sample {
		r = model.Sample()
	}
	lang := strings.TrimSpace(in.Language)
	if lang == "" {
		lang = e.defaultLanguage
	}

	now := e.now()
	s := &domain.Session{
		ID:        uuid.New(),
		Language:  lang,
		CreatedAt: now,
	}
	e.commit(s, r)

	if err := e.store.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	e.log.Info().Str("session", s.ID.String()).Bool("sample", in.Sample).Str("language", lang).Msg("session created")
	return s, nil
}

func (e *Editor) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return e.store.Get(ctx, id)
}

func (e *Editor) Delete(ctx context.Context, id uuid.UUID) error {
	return e.store.Delete(ctx, id)
}

// Apply reduces one action into the session's snapshot.
func (e *Editor) Apply(ctx context.Context, id uuid.UUID, a Action) (*domain.Session, error) {
	s, err := e.store.Update(ctx, id, func(s *domain.Session) error {
		next, err := Reduce(s.Resume, a, e.newID)
		if err != nil {
			return err
		}
		e.commit(s, next)
		return nil
	})
	if err != nil {
		e.log.Debug().Err(err).Str("session", id.String()).Str("section", sectionOf(a)).Msg("action rejected")
		return nil, err
	}
	e.log.Debug().
		Str("session", id.String()).
		Str("section", a.Section().String()).
		Str("action", fmt.Sprintf("%T", a)).
		Int("revision", s.Revision).
		Float64("score", s.Score).
		Int("font_base", s.Tier.Base).
		Msg("action applied")
	return s, nil
}

// Import replaces the whole snapshot, e.g. with a document loaded from disk.
func (e *Editor) Import(ctx context.Context, id uuid.UUID, r model.Resume) (*domain.Session, error) {
	r, err := model.Normalize(r)
	if err != nil {
		return nil, err
	}
	return e.store.Update(ctx, id, func(s *domain.Session) error {
		e.commit(s, r.Clone())
		return nil
	})
}

func (e *Editor) commit(s *domain.Session, next model.Resume) {
	s.Resume = next
	s.Score = layout.Score(next)
	s.Tier = layout.SelectTier(s.Score)
	s.Revision++
	s.UpdatedAt = e.now()
}

func sectionOf(a Action) string {
	if a == nil {
		return "none"
	}
	return a.Section().String()
}
