package model

// Go models for the resume snapshot edited by the builder and rendered by
// the preview. JSON names follow the editor payloads.

type PersonalInfo struct {
	FullName  string `json:"fullName" yaml:"fullName"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	LinkedIn  string `json:"linkedin" yaml:"linkedin"`
	Portfolio string `json:"portfolio" yaml:"portfolio"`
}

type Experience struct {
	ID               string   `json:"id" yaml:"id"`
	Company          string   `json:"company" yaml:"company"`
	JobTitle         string   `json:"jobTitle" yaml:"jobTitle"`
	Location         string   `json:"location" yaml:"location"`
	Period           string   `json:"period" yaml:"period"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
}

type Education struct {
	ID          string `json:"id" yaml:"id"`
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Location    string `json:"location" yaml:"location"`
	Period      string `json:"period" yaml:"period"`
	Grade       string `json:"grade,omitempty" yaml:"grade,omitempty"`
}

type Language struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Level string `json:"level" yaml:"level"`
}

type WebPresence struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Resume is one snapshot of everything the user has entered. Snapshots are
// treated as values: updates produce a new Resume via Clone rather than
// touching the slices of an existing one.
type Resume struct {
	Personal     PersonalInfo  `json:"personal" yaml:"personal"`
	Summary      string        `json:"summary" yaml:"summary"`
	Experience   []Experience  `json:"experience" yaml:"experience"`
	Education    []Education   `json:"education" yaml:"education"`
	Skills       []string      `json:"skills" yaml:"skills"`
	Achievements []string      `json:"achievements" yaml:"achievements"`
	Languages    []Language    `json:"languages" yaml:"languages"`
	WebPresence  []WebPresence `json:"webPresence" yaml:"webPresence"`
}

// Empty returns a snapshot with no content and non-nil sequences so it
// encodes as empty arrays.
func Empty() Resume {
	return Resume{
		Experience:   []Experience{},
		Education:    []Education{},
		Skills:       []string{},
		Achievements: []string{},
		Languages:    []Language{},
		WebPresence:  []WebPresence{},
	}
}

// Clone returns a deep copy of r.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.Responsibilities = cloneStrings(e.Responsibilities)
		out.Experience[i] = e
	}
	out.Education = append(make([]Education, 0, len(r.Education)), r.Education...)
	out.Skills = cloneStrings(r.Skills)
	out.Achievements = cloneStrings(r.Achievements)
	out.Languages = append(make([]Language, 0, len(r.Languages)), r.Languages...)
	out.WebPresence = append(make([]WebPresence, 0, len(r.WebPresence)), r.WebPresence...)
	return out
}

func cloneStrings(in []string) []string {
	return append(make([]string, 0, len(in)), in...)
}
