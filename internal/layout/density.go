// Package layout picks the preview font sizes from how much content a
// resume carries, so a dense resume still fits on one page.
package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"resume-builder/internal/model"
)

// Content weights. The total is additive and never normalized.
const (
	experienceWeight     = 3.0
	responsibilityWeight = 2.0
	educationWeight      = 2.0
	achievementWeight    = 1.5
	skillWeight          = 0.5
	languageWeight       = 1.0
	webPresenceWeight    = 1.0
	summaryCharsPerPoint = 100
)

// Score returns the content density of r. Blank responsibilities and
// achievements are placeholders still being typed and do not count.
func Score(r model.Resume) float64 {
	var score float64

	for _, e := range r.Experience {
		score += experienceWeight
		score += responsibilityWeight * float64(countNonBlank(e.Responsibilities))
	}
	score += educationWeight * float64(len(r.Education))
	score += achievementWeight * float64(countNonBlank(r.Achievements))
	score += skillWeight * float64(len(r.Skills))
	score += languageWeight * float64(len(r.Languages))
	score += webPresenceWeight * float64(len(r.WebPresence))
	score += math.Ceil(float64(utf8.RuneCountInString(r.Summary)) / summaryCharsPerPoint)

	return score
}

func countNonBlank(items []string) int {
	n := 0
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
