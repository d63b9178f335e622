package layout

import (
	"strings"
	"testing"

	"resume-builder/internal/model"
)

func TestScoreEmptyResume(t *testing.T) {
	r := model.Empty()
	if got := Score(r); got != 0 {
		t.Fatalf("expected score 0, got %v", got)
	}
	if got := For(r).Base; got != 12 {
		t.Fatalf("expected base 12, got %d", got)
	}
}

func TestScoreZeroValueResume(t *testing.T) {
	if got := Score(model.Resume{}); got != 0 {
		t.Fatalf("expected score 0 for zero value, got %v", got)
	}
}

func TestScoreContributions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Resume)
		want   float64
	}{
		{
			name: "experience without responsibilities",
			mutate: func(r *model.Resume) {
				r.Experience = append(r.Experience, model.Experience{ID: "1"})
			},
			want: 3,
		},
		{
			name: "experience with only blank responsibilities",
			mutate: func(r *model.Resume) {
				r.Experience = append(r.Experience, model.Experience{ID: "1", Responsibilities: []string{"", "   "}})
			},
			want: 3,
		},
		{
			name: "experience with two filled and one blank responsibility",
			mutate: func(r *model.Resume) {
				r.Experience = append(r.Experience, model.Experience{
					ID:               "1",
					Responsibilities: []string{"Shipped", "Reviewed", " "},
				})
			},
			want: 7,
		},
		{
			name: "education",
			mutate: func(r *model.Resume) {
				r.Education = append(r.Education, model.Education{ID: "1"}, model.Education{ID: "2"})
			},
			want: 4,
		},
		{
			name: "achievements ignore blanks",
			mutate: func(r *model.Resume) {
				r.Achievements = append(r.Achievements, "Won", "", "Led")
			},
			want: 3,
		},
		{
			name: "skills are fractional",
			mutate: func(r *model.Resume) {
				r.Skills = append(r.Skills, "Go", "SQL", "Docker")
			},
			want: 1.5,
		},
		{
			name: "languages and web presence",
			mutate: func(r *model.Resume) {
				r.Languages = append(r.Languages, model.Language{ID: "1"})
				r.WebPresence = append(r.WebPresence, model.WebPresence{ID: "1"}, model.WebPresence{ID: "2"})
			},
			want: 3,
		},
		{
			name: "summary of 250 characters",
			mutate: func(r *model.Resume) {
				r.Summary = strings.Repeat("a", 250)
			},
			want: 3,
		},
		{
			name: "summary of exactly 100 characters",
			mutate: func(r *model.Resume) {
				r.Summary = strings.Repeat("a", 100)
			},
			want: 1,
		},
		{
			name: "summary counts characters not bytes",
			mutate: func(r *model.Resume) {
				r.Summary = strings.Repeat("é", 100)
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Empty()
			tt.mutate(&r)
			if got := Score(r); got != tt.want {
				t.Fatalf("expected score %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScoreSample(t *testing.T) {
	// 2 experiences × (3 + 3×2) + 1 education × 2 + 3 achievements × 1.5
	// + 14 skills × 0.5 + 2 languages + 2 links + ceil(summary/100).
	r := model.Sample()
	want := 18.0 + 2 + 4.5 + 7 + 2 + 2 + 2
	if got := Score(r); got != want {
		t.Fatalf("expected score %v, got %v", want, got)
	}
}

func TestScoreIsMonotonicWhenAppending(t *testing.T) {
	appends := []struct {
		name string
		add  func(*model.Resume)
	}{
		{"experience", func(r *model.Resume) { r.Experience = append(r.Experience, model.Experience{ID: "x"}) }},
		{"responsibility", func(r *model.Resume) {
			r.Experience[0].Responsibilities = append(r.Experience[0].Responsibilities, "More work")
		}},
		{"blank responsibility", func(r *model.Resume) {
			r.Experience[0].Responsibilities = append(r.Experience[0].Responsibilities, "")
		}},
		{"education", func(r *model.Resume) { r.Education = append(r.Education, model.Education{ID: "x"}) }},
		{"skill", func(r *model.Resume) { r.Skills = append(r.Skills, "Rust") }},
		{"achievement", func(r *model.Resume) { r.Achievements = append(r.Achievements, "Award") }},
		{"language", func(r *model.Resume) { r.Languages = append(r.Languages, model.Language{ID: "x"}) }},
		{"web presence", func(r *model.Resume) { r.WebPresence = append(r.WebPresence, model.WebPresence{ID: "x"}) }},
		{"summary character", func(r *model.Resume) { r.Summary += "." }},
	}

	for _, tt := range appends {
		t.Run(tt.name, func(t *testing.T) {
			before := model.Sample()
			after := before.Clone()
			tt.add(&after)
			if Score(after) < Score(before) {
				t.Fatalf("score decreased from %v to %v", Score(before), Score(after))
			}
		})
	}
}
