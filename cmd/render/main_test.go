package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
)

const yamlResume = `
personal:
  fullName: Ada Lovelace
skills: [Go, SQL]
experience:
  - id: a
    company: Analytical Engines
    responsibilities:
      - Wrote the first program
      - "  "
`

func TestReadResumeYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	if err := os.WriteFile(path, []byte(yamlResume), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := readResume(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if r.Personal.FullName != "Ada Lovelace" || len(r.Experience) != 1 {
		t.Fatalf("unexpected resume %+v", r)
	}
	// 3 + 2 for the one non-blank bullet + 2×0.5
	if got := layout.Score(r); got != 6 {
		t.Fatalf("expected score 6, got %v", got)
	}
}

func TestReadResumeYAMLScalarsBecomeStrings(t *testing.T) {
	doc := `
personal: {fullName: Jane Doe, phone: 5550142291}
experience:
  - id: 1
    company: Acme
    period: 2020
education:
  - id: 2
    grade: 3.6
languages:
  - {id: 1, name: English, level: C2}
`
	path := filepath.Join(t.TempDir(), "resume.yml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := readResume(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if r.Personal.Phone != "5550142291" || r.Experience[0].ID != "1" || r.Experience[0].Period != "2020" {
		t.Fatalf("unexpected resume %+v", r)
	}
	if r.Education[0].ID != "2" || r.Education[0].Grade != "3.6" || r.Languages[0].ID != "1" {
		t.Fatalf("unexpected resume %+v", r)
	}
	if r.Skills == nil || r.Experience[0].Responsibilities == nil {
		t.Fatalf("expected empty sequences, got nil")
	}
}

func TestReadResumeRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"unknown.yml":  "hobbies: [chess]\n",
		"missing.json": `{"languages":[{"name":"English"}]}`,
		"missing.yaml": "languages:\n  - name: English\n",
		"dupes.yaml":   "skills: [Go]\nlanguages:\n  - {id: 1}\n  - {id: 1}\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := readResume(path); !errors.Is(err, model.ErrInvalidResume) {
			t.Fatalf("%s: expected ErrInvalidResume, got %v", name, err)
		}
	}
}
