package usecase

import "resume-builder/internal/model"

// Section names the part of the resume an Action updates.
type Section int

const (
	SectionPersonal Section = iota + 1
	SectionExperience
	SectionEducation
	SectionSkills
	SectionOptional
)

func (s Section) String() string {
	switch s {
	case SectionPersonal:
		return "personal"
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	case SectionSkills:
		return "skills"
	case SectionOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// Action is one edit of a resume snapshot. The set of actions is closed;
// Reduce is the only place they are interpreted.
type Action interface {
	Section() Section
	action()
}

type PersonalField string

const (
	PersonalFullName  PersonalField = "fullName"
	PersonalEmail     PersonalField = "email"
	PersonalPhone     PersonalField = "phone"
	PersonalLinkedIn  PersonalField = "linkedin"
	PersonalPortfolio PersonalField = "portfolio"
)

type ExperienceField string

const (
	ExperienceCompany  ExperienceField = "company"
	ExperienceJobTitle ExperienceField = "jobTitle"
	ExperienceLocation ExperienceField = "location"
	ExperiencePeriod   ExperienceField = "period"
)

type EducationField string

const (
	EducationInstitution EducationField = "institution"
	EducationDegree      EducationField = "degree"
	EducationLocation    EducationField = "location"
	EducationPeriod      EducationField = "period"
	EducationGrade       EducationField = "grade"
)

type LanguageField string

const (
	LanguageName  LanguageField = "name"
	LanguageLevel LanguageField = "level"
)

type WebPresenceField string

const (
	WebPresenceName WebPresenceField = "name"
	WebPresenceURL  WebPresenceField = "url"
)

// Personal section.

type SetPersonalField struct {
	Field PersonalField `json:"field"`
	Value string        `json:"value"`
}

type ReplacePersonal struct {
	Personal model.PersonalInfo `json:"personal"`
}

// Experience section.

type AddExperience struct{}

type UpdateExperience struct {
	ID    string          `json:"id"`
	Field ExperienceField `json:"field"`
	Value string          `json:"value"`
}

type RemoveExperience struct {
	ID string `json:"id"`
}

type AddResponsibility struct {
	ExperienceID string `json:"experienceId"`
}

type UpdateResponsibility struct {
	ExperienceID string `json:"experienceId"`
	Index        int    `json:"index"`
	Value        string `json:"value"`
}

type RemoveResponsibility struct {
	ExperienceID string `json:"experienceId"`
	Index        int    `json:"index"`
}

// Education section.

type AddEducation struct{}

type UpdateEducation struct {
	ID    string         `json:"id"`
	Field EducationField `json:"field"`
	Value string         `json:"value"`
}

type RemoveEducation struct {
	ID string `json:"id"`
}

// Skills section.

type AddSkill struct {
	Skill string `json:"skill"`
}

type RemoveSkill struct {
	Skill string `json:"skill"`
}

// Optional sections: summary, achievements, languages, web presence.

type SetSummary struct {
	Summary string `json:"summary"`
}

type AddAchievement struct{}

type UpdateAchievement struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

type RemoveAchievement struct {
	Index int `json:"index"`
}

type AddLanguage struct{}

type UpdateLanguage struct {
	ID    string        `json:"id"`
	Field LanguageField `json:"field"`
	Value string        `json:"value"`
}

type RemoveLanguage struct {
	ID string `json:"id"`
}

type AddWebPresence struct{}

type UpdateWebPresence struct {
	ID    string           `json:"id"`
	Field WebPresenceField `json:"field"`
	Value string           `json:"value"`
}

type RemoveWebPresence struct {
	ID string `json:"id"`
}

func (SetPersonalField) Section() Section     { return SectionPersonal }
func (ReplacePersonal) Section() Section      { return SectionPersonal }
func (AddExperience) Section() Section        { return SectionExperience }
func (UpdateExperience) Section() Section     { return SectionExperience }
func (RemoveExperience) Section() Section     { return SectionExperience }
func (AddResponsibility) Section() Section    { return SectionExperience }
func (UpdateResponsibility) Section() Section { return SectionExperience }
func (RemoveResponsibility) Section() Section { return SectionExperience }
func (AddEducation) Section() Section         { return SectionEducation }
func (UpdateEducation) Section() Section      { return SectionEducation }
func (RemoveEducation) Section() Section      { return SectionEducation }
func (AddSkill) Section() Section             { return SectionSkills }
func (RemoveSkill) Section() Section          { return SectionSkills }
func (SetSummary) Section() Section           { return SectionOptional }
func (AddAchievement) Section() Section       { return SectionOptional }
func (UpdateAchievement) Section() Section    { return SectionOptional }
func (RemoveAchievement) Section() Section    { return SectionOptional }
func (AddLanguage) Section() Section          { return SectionOptional }
func (UpdateLanguage) Section() Section       { return SectionOptional }
func (RemoveLanguage) Section() Section       { return SectionOptional }
func (AddWebPresence) Section() Section       { return SectionOptional }
func (UpdateWebPresence) Section() Section    { return SectionOptional }
func (RemoveWebPresence) Section() Section    { return SectionOptional }

func (SetPersonalField) action()     {}
func (ReplacePersonal) action()      {}
func (AddExperience) action()        {}
func (UpdateExperience) action()     {}
func (RemoveExperience) action()     {}
func (AddResponsibility) action()    {}
func (UpdateResponsibility) action() {}
func (RemoveResponsibility) action() {}
func (AddEducation) action()         {}
func (UpdateEducation) action()      {}
func (RemoveEducation) action()      {}
func (AddSkill) action()             {}
func (RemoveSkill) action()          {}
func (SetSummary) action()           {}
func (AddAchievement) action()       {}
func (UpdateAchievement) action()    {}
func (RemoveAchievement) action()    {}
func (AddLanguage) action()          {}
func (UpdateLanguage) action()       {}
func (RemoveLanguage) action()       {}
func (AddWebPresence) action()       {}
func (UpdateWebPresence) action()    {}
func (RemoveWebPresence) action()    {}
