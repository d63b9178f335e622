package layout

import "resume-builder/internal/model"

// FontTier holds the pixel font sizes used by the preview.
type FontTier struct {
	Base         int `json:"base"`
	Header       int `json:"header"`
	SectionTitle int `json:"sectionTitle"`
	SubTitle     int `json:"subTitle"`
	Body         int `json:"body"`
	Detail       int `json:"detail"`
}

// DefaultBase is the base size for sparse resumes.
const DefaultBase = 12

var thresholds = []struct {
	above float64
	base  int
}{
	{above: 40, base: 9},
	{above: 30, base: 10},
	{above: 20, base: 11},
}

// SelectTier maps a density score to a font tier, densest first.
func SelectTier(score float64) FontTier {
	base := DefaultBase
	for _, t := range thresholds {
		if score > t.above {
			base = t.base
			break
		}
	}
	return TierFor(base)
}

// TierFor derives the full tier from a base size. Headings have floors;
// body and detail follow the base unclamped.
func TierFor(base int) FontTier {
	return FontTier{
		Base:         base,
		Header:       max(base+8, 18),
		SectionTitle: max(base+2, 13),
		SubTitle:     max(base+1, 12),
		Body:         base - 1,
		Detail:       base - 2,
	}
}

// For scores r and selects its tier.
func For(r model.Resume) FontTier {
	return SelectTier(Score(r))
}
