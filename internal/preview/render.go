// Package preview renders a resume snapshot as a standalone HTML document.
// The same document is shown as the live preview and handed to the PDF
// renderer on export.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"golang.org/x/net/publicsuffix"
)

//go:embed templates/resume.html templates/style.css
var templatesFS embed.FS

// Renderer renders snapshots with the embedded template and stylesheet.
type Renderer struct {
	tpl *template.Template
	css string
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.ParseFS(templatesFS, "templates/resume.html")
	if err != nil {
		return nil, fmt.Errorf("parse resume template: %w", err)
	}
	css, err := templatesFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return &Renderer{tpl: tpl, css: string(css)}, nil
}

type contact struct {
	Kind  string
	Value string
}

type experienceView struct {
	ID       string
	Company  string
	JobTitle string
	Location string
	Period   string
	Bullets  []string
}

type linkView struct {
	ID    string
	Label string
	URL   string
}

type document struct {
	Lang         string
	Name         string
	Resume       model.Resume
	Tier         layout.FontTier
	Labels       Labels
	Contacts     []contact
	Experience   []experienceView
	Achievements []string
	Links        []linkView
}

// Render returns the HTML for r with the stylesheet inlined into <head>.
// Font sizes come from the density tier of r.
func (rd *Renderer) Render(r model.Resume, lang string) (string, error) {
	return rd.RenderWithTier(r, lang, layout.For(r))
}

// RenderWithTier renders r with a tier computed by the caller, so a session
// that already holds its tier does not score the snapshot again.
func (rd *Renderer) RenderWithTier(r model.Resume, lang string, tier layout.FontTier) (string, error) {
	labels := LabelsFor(lang)
	doc := document{
		Lang:         lang,
		Name:         r.Personal.FullName,
		Resume:       r,
		Tier:         tier,
		Labels:       labels,
		Contacts:     contacts(r.Personal),
		Achievements: nonBlank(r.Achievements),
	}
	if strings.TrimSpace(doc.Name) == "" {
		doc.Name = labels.DefaultName
	}
	for _, e := range r.Experience {
		doc.Experience = append(doc.Experience, experienceView{
			ID:       e.ID,
			Company:  e.Company,
			JobTitle: e.JobTitle,
			Location: e.Location,
			Period:   e.Period,
			Bullets:  nonBlank(e.Responsibilities),
		})
	}
	for _, w := range r.WebPresence {
		doc.Links = append(doc.Links, linkView{ID: w.ID, Label: linkLabel(w), URL: w.URL})
	}

	var buf bytes.Buffer
	if err := rd.tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("execute resume template: %w", err)
	}
	return inlineCSS(buf.String(), rd.css), nil
}

func contacts(p model.PersonalInfo) []contact {
	var out []contact
	for _, c := range []contact{
		{Kind: "email", Value: p.Email},
		{Kind: "phone", Value: p.Phone},
		{Kind: "linkedin", Value: p.LinkedIn},
		{Kind: "portfolio", Value: p.Portfolio},
	} {
		if c.Value != "" {
			out = append(out, c)
		}
	}
	return out
}

func nonBlank(items []string) []string {
	var out []string
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// linkLabel prefers the user's name for the link, then the registrable
// domain of its URL.
func linkLabel(w model.WebPresence) string {
	if strings.TrimSpace(w.Name) != "" {
		return w.Name
	}
	if w.URL == "" {
		return "link"
	}
	candidate := w.URL
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return w.URL
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// inlineCSS injects the stylesheet at the top of <head> so the document is
// self-contained.
func inlineCSS(html, css string) string {
	if css == "" {
		return html
	}
	block := "<style>" + css + "</style>"
	if i := strings.Index(strings.ToLower(html), "<head>"); i >= 0 {
		at := i + len("<head>")
		return html[:at] + block + html[at:]
	}
	return block + html
}
