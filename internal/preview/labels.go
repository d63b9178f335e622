package preview

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Labels are the fixed strings of the rendered document.
type Labels struct {
	Summary      string
	Experience   string
	Education    string
	Achievements string
	Skills       string
	Languages    string
	WebPresence  string
	Grade        string
	DefaultName  string
}

var supported = []language.Tag{language.English, language.Portuguese, language.Spanish}

var matcher = language.NewMatcher(supported)

var defaultLabels = []Labels{
	{
		Summary:      "Professional Summary",
		Experience:   "Professional Experience",
		Education:    "Education",
		Achievements: "Key Achievements",
		Skills:       "Core Skills",
		Languages:    "Languages",
		WebPresence:  "Web Presence",
		Grade:        "GPA",
		DefaultName:  "Your Name",
	},
	{
		Summary:      "Resumo Profissional",
		Experience:   "Experiência Profissional",
		Education:    "Formação Acadêmica",
		Achievements: "Principais Conquistas",
		Skills:       "Competências",
		Languages:    "Idiomas",
		WebPresence:  "Presença Online",
		Grade:        "Média",
		DefaultName:  "Seu Nome",
	},
	{
		Summary:      "Resumen Profesional",
		Experience:   "Experiencia Profesional",
		Education:    "Educación",
		Achievements: "Logros Destacados",
		Skills:       "Habilidades",
		Languages:    "Idiomas",
		WebPresence:  "Presencia en Línea",
		Grade:        "Promedio",
		DefaultName:  "Su Nombre",
	},
}

// LabelsFor returns the labels for a BCP 47 language string, falling back
// to English. Headings and the placeholder name are upper-cased using the
// rules of the matched language.
func LabelsFor(lang string) Labels {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, idx, _ := matcher.Match(tag)
	l := defaultLabels[idx]

	upper := cases.Upper(supported[idx])
	l.Summary = upper.String(l.Summary)
	l.Experience = upper.String(l.Experience)
	l.Education = upper.String(l.Education)
	l.Achievements = upper.String(l.Achievements)
	l.Skills = upper.String(l.Skills)
	l.Languages = upper.String(l.Languages)
	l.WebPresence = upper.String(l.WebPresence)
	l.DefaultName = upper.String(l.DefaultName)
	return l
}
