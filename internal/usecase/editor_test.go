package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newTestEditor() *Editor {
	fixed := time.Date(2026, 1, 23, 10, 0, 0, 0, time.UTC)
	return NewEditor(repository.NewSessionsMemory(), "en", zerolog.Nop(),
		WithIDFunc(sequentialIDs()),
		WithClock(func() time.Time { return fixed }),
	)
}

func TestEditorCreate(t *testing.T) {
	ed := newTestEditor()
	ctx := context.Background()

	empty, err := ed.Create(ctx, CreateSessionInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if empty.Score != 0 || empty.Tier.Base != 12 || empty.Revision != 1 || empty.Language != "en" {
		t.Fatalf("unexpected empty session: %+v", empty)
	}

	sample, err := ed.Create(ctx, CreateSessionInput{Sample: true, Language: "pt"})
	if err != nil {
		t.Fatalf("create sample: %v", err)
	}
	if sample.Score != 37.5 || sample.Tier.Base != 10 || sample.Language != "pt" {
		t.Fatalf("unexpected sample session: score=%v tier=%+v lang=%q", sample.Score, sample.Tier, sample.Language)
	}
}

func TestEditorApplyRecomputesLayout(t *testing.T) {
	ed := newTestEditor()
	ctx := context.Background()
	s, err := ed.Create(ctx, CreateSessionInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	s, err = ed.Apply(ctx, s.ID, AddExperience{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.Score != 3 || s.Revision != 2 {
		t.Fatalf("expected score 3 at revision 2, got %v at %d", s.Score, s.Revision)
	}

	expID := s.Resume.Experience[0].ID
	for i := 0; i < 11; i++ {
		if _, err := ed.Apply(ctx, s.ID, AddResponsibility{ExperienceID: expID}); err != nil {
			t.Fatalf("add responsibility: %v", err)
		}
		if s, err = ed.Apply(ctx, s.ID, UpdateResponsibility{ExperienceID: expID, Index: i, Value: "Delivered"}); err != nil {
			t.Fatalf("update responsibility: %v", err)
		}
	}
	// 3 + 11×2 = 25 → tier 11
	if s.Score != 25 || s.Tier.Base != 11 {
		t.Fatalf("expected score 25 and base 11, got %v and %d", s.Score, s.Tier.Base)
	}

	got, err := ed.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != s.Score || got.Revision != s.Revision {
		t.Fatalf("stored session differs from returned one")
	}
}

func TestEditorApplyErrorsLeaveSessionUnchanged(t *testing.T) {
	ed := newTestEditor()
	ctx := context.Background()
	s, _ := ed.Create(ctx, CreateSessionInput{Sample: true})

	if _, err := ed.Apply(ctx, s.ID, RemoveExperience{ID: "missing"}); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	got, _ := ed.Get(ctx, s.ID)
	if got.Revision != s.Revision || len(got.Resume.Experience) != len(s.Resume.Experience) {
		t.Fatalf("expected failed action to leave session untouched")
	}

	if _, err := ed.Apply(ctx, uuid.New(), AddSkill{Skill: "Go"}); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEditorImport(t *testing.T) {
	ed := newTestEditor()
	ctx := context.Background()
	s, _ := ed.Create(ctx, CreateSessionInput{})

	s, err := ed.Import(ctx, s.ID, model.Sample())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if s.Score != 37.5 || s.Resume.Personal.FullName == "" {
		t.Fatalf("expected imported sample, got score %v", s.Score)
	}

	bad := model.Sample()
	bad.Languages = append(bad.Languages, bad.Languages[0])
	if _, err := ed.Import(ctx, s.ID, bad); !errors.Is(err, model.ErrInvalidResume) {
		t.Fatalf("expected ErrInvalidResume, got %v", err)
	}
}

func TestEditorDelete(t *testing.T) {
	ed := newTestEditor()
	ctx := context.Background()
	s, _ := ed.Create(ctx, CreateSessionInput{})
	if err := ed.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := ed.Get(ctx, s.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
