package preview

import (
	"strings"
	"testing"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return rd
}

func TestRenderEmptyResume(t *testing.T) {
	html, err := newTestRenderer(t).Render(model.Empty(), "en")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "YOUR NAME") {
		t.Fatalf("expected placeholder name in output")
	}
	if !strings.Contains(html, `id="resume-output"`) {
		t.Fatalf("expected render target element")
	}
	for _, heading := range []string{"PROFESSIONAL SUMMARY", "PROFESSIONAL EXPERIENCE", "EDUCATION", "KEY ACHIEVEMENTS", "CORE SKILLS"} {
		if strings.Contains(html, heading) {
			t.Fatalf("expected empty section %q to be omitted", heading)
		}
	}
	if !strings.Contains(html, "font-size: 12px") || !strings.Contains(html, "font-size: 20px") {
		t.Fatalf("expected default tier sizes in output")
	}
}

func TestRenderInlinesStylesheet(t *testing.T) {
	html, err := newTestRenderer(t).Render(model.Sample(), "en")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	head := strings.Index(html, "<head>")
	style := strings.Index(html, "<style>")
	if head < 0 || style != head+len("<head>") {
		t.Fatalf("expected stylesheet at the top of head, head=%d style=%d", head, style)
	}
}

func TestRenderFiltersBlankEntries(t *testing.T) {
	r := model.Empty()
	r.Personal.FullName = "Grace Hopper"
	r.Personal.Email = "grace@example.com"
	r.Experience = []model.Experience{{
		ID:               "e1",
		Company:          "Navy",
		JobTitle:         "Rear Admiral",
		Responsibilities: []string{"Wrote the first compiler", "   ", ""},
	}}
	r.Achievements = []string{"", "  "}

	html, err := newTestRenderer(t).Render(r, "en")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Grace Hopper") || !strings.Contains(html, "grace@example.com") {
		t.Fatalf("expected personal info in output")
	}
	if strings.Contains(html, "contact-phone") {
		t.Fatalf("expected blank phone to be omitted")
	}
	if got := strings.Count(html, "<li>"); got != 1 {
		t.Fatalf("expected one bullet, got %d", got)
	}
	if strings.Contains(html, "KEY ACHIEVEMENTS") {
		t.Fatalf("expected achievements section to be hidden when all entries are blank")
	}
}

func TestRenderUsesDensityTier(t *testing.T) {
	r := model.Sample()
	for i := 0; i < 10; i++ {
		r.Skills = append(r.Skills, "extra skill "+string(rune('a'+i)))
	}
	// Sample scores 37.5; ten more skills push it past 40.
	if tier := layout.For(r); tier.Base != 9 {
		t.Fatalf("expected dense resume to select base 9, got %d", tier.Base)
	}
	html, err := newTestRenderer(t).Render(r, "en")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `style="font-size: 9px"`) {
		t.Fatalf("expected base size 9px on the document root")
	}
	if !strings.Contains(html, "font-size: 18px") {
		t.Fatalf("expected header floor of 18px")
	}
}

func TestRenderLocalizedHeadings(t *testing.T) {
	html, err := newTestRenderer(t).Render(model.Sample(), "pt-BR")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "EXPERIÊNCIA PROFISSIONAL") {
		t.Fatalf("expected portuguese heading")
	}
}

func TestRenderEscapesUnsafeLinks(t *testing.T) {
	r := model.Empty()
	r.WebPresence = []model.WebPresence{{ID: "w1", Name: "bad", URL: "javascript:alert(1)"}}
	html, err := newTestRenderer(t).Render(r, "en")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "javascript:alert") {
		t.Fatalf("expected unsafe url to be sanitized")
	}
}

func TestLinkLabel(t *testing.T) {
	tests := []struct {
		in   model.WebPresence
		want string
	}{
		{in: model.WebPresence{Name: "GitHub", URL: "https://github.com/x"}, want: "GitHub"},
		{in: model.WebPresence{URL: "https://www.blog.example.co.uk/post"}, want: "example.co.uk"},
		{in: model.WebPresence{URL: "leetcode.com/u/someone"}, want: "leetcode.com"},
		{in: model.WebPresence{}, want: "link"},
	}
	for _, tt := range tests {
		if got := linkLabel(tt.in); got != tt.want {
			t.Fatalf("linkLabel(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabelsForFallsBackToEnglish(t *testing.T) {
	if got := LabelsFor("not a tag").Skills; got != "CORE SKILLS" {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := LabelsFor("es").Education; got != "EDUCACIÓN" {
		t.Fatalf("expected spanish heading, got %q", got)
	}
}
