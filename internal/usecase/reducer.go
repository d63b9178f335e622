package usecase

import (
	"fmt"
	"slices"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// IDFunc produces identifiers for new entries.
type IDFunc func() string

// maxIDAttempts bounds how often a colliding id is redrawn.
const maxIDAttempts = 16

// Reduce applies a to r and returns the next snapshot. r is never modified;
// on error the returned snapshot is r itself.
func Reduce(r model.Resume, a Action, newID IDFunc) (model.Resume, error) {
	if newID == nil {
		newID = uuid.NewString
	}
	next := r.Clone()

	var err error
	switch a := a.(type) {
	case SetPersonalField:
		err = setPersonalField(&next.Personal, a.Field, a.Value)
	case ReplacePersonal:
		next.Personal = a.Personal

	case AddExperience:
		var id string
		if id, err = freshID(newID, func(id string) bool {
			return indexByID(next.Experience, id, experienceID) >= 0
		}); err == nil {
			next.Experience = append(next.Experience, model.Experience{ID: id, Responsibilities: []string{""}})
		}
	case UpdateExperience:
		err = updateByID(next.Experience, a.ID, experienceID, func(e *model.Experience) error {
			return setExperienceField(e, a.Field, a.Value)
		})
	case RemoveExperience:
		next.Experience, err = removeByID(next.Experience, a.ID, experienceID)
	case AddResponsibility:
		err = updateByID(next.Experience, a.ExperienceID, experienceID, func(e *model.Experience) error {
			e.Responsibilities = append(e.Responsibilities, "")
			return nil
		})
	case UpdateResponsibility:
		err = updateByID(next.Experience, a.ExperienceID, experienceID, func(e *model.Experience) error {
			if err := checkIndex(a.Index, len(e.Responsibilities)); err != nil {
				return err
			}
			e.Responsibilities[a.Index] = a.Value
			return nil
		})
	case RemoveResponsibility:
		err = updateByID(next.Experience, a.ExperienceID, experienceID, func(e *model.Experience) error {
			var rerr error
			e.Responsibilities, rerr = removeAt(e.Responsibilities, a.Index)
			return rerr
		})

	case AddEducation:
		var id string
		if id, err = freshID(newID, func(id string) bool {
			return indexByID(next.Education, id, educationID) >= 0
		}); err == nil {
			next.Education = append(next.Education, model.Education{ID: id})
		}
	case UpdateEducation:
		err = updateByID(next.Education, a.ID, educationID, func(e *model.Education) error {
			return setEducationField(e, a.Field, a.Value)
		})
	case RemoveEducation:
		next.Education, err = removeByID(next.Education, a.ID, educationID)

	case AddSkill:
		skill := strings.TrimSpace(a.Skill)
		if skill == "" || slices.Contains(next.Skills, skill) {
			return r, nil
		}
		next.Skills = append(next.Skills, skill)
	case RemoveSkill:
		kept := next.Skills[:0]
		for _, s := range next.Skills {
			if s != a.Skill {
				kept = append(kept, s)
			}
		}
		next.Skills = kept

	case SetSummary:
		next.Summary = a.Summary
	case AddAchievement:
		next.Achievements = append(next.Achievements, "")
	case UpdateAchievement:
		if err = checkIndex(a.Index, len(next.Achievements)); err == nil {
			next.Achievements[a.Index] = a.Value
		}
	case RemoveAchievement:
		next.Achievements, err = removeAt(next.Achievements, a.Index)

	case AddLanguage:
		var id string
		if id, err = freshID(newID, func(id string) bool {
			return indexByID(next.Languages, id, languageID) >= 0
		}); err == nil {
			next.Languages = append(next.Languages, model.Language{ID: id})
		}
	case UpdateLanguage:
		err = updateByID(next.Languages, a.ID, languageID, func(l *model.Language) error {
			switch a.Field {
			case LanguageName:
				l.Name = a.Value
			case LanguageLevel:
				l.Level = a.Value
			default:
				return unknownField(a.Field)
			}
			return nil
		})
	case RemoveLanguage:
		next.Languages, err = removeByID(next.Languages, a.ID, languageID)

	case AddWebPresence:
		var id string
		if id, err = freshID(newID, func(id string) bool {
			return indexByID(next.WebPresence, id, webPresenceID) >= 0
		}); err == nil {
			next.WebPresence = append(next.WebPresence, model.WebPresence{ID: id})
		}
	case UpdateWebPresence:
		err = updateByID(next.WebPresence, a.ID, webPresenceID, func(w *model.WebPresence) error {
			switch a.Field {
			case WebPresenceName:
				w.Name = a.Value
			case WebPresenceURL:
				w.URL = a.Value
			default:
				return unknownField(a.Field)
			}
			return nil
		})
	case RemoveWebPresence:
		next.WebPresence, err = removeByID(next.WebPresence, a.ID, webPresenceID)

	default:
		err = fmt.Errorf("%w: unsupported action %T", domain.ErrInvalidAction, a)
	}

	if err != nil {
		return r, err
	}
	return next, nil
}

func setPersonalField(p *model.PersonalInfo, field PersonalField, value string) error {
	switch field {
	case PersonalFullName:
		p.FullName = value
	case PersonalEmail:
		p.Email = value
	case PersonalPhone:
		p.Phone = value
	case PersonalLinkedIn:
		p.LinkedIn = value
	case PersonalPortfolio:
		p.Portfolio = value
	default:
		return unknownField(field)
	}
	return nil
}

func setExperienceField(e *model.Experience, field ExperienceField, value string) error {
	switch field {
	case ExperienceCompany:
		e.Company = value
	case ExperienceJobTitle:
		e.JobTitle = value
	case ExperienceLocation:
		e.Location = value
	case ExperiencePeriod:
		e.Period = value
	default:
		return unknownField(field)
	}
	return nil
}

func setEducationField(e *model.Education, field EducationField, value string) error {
	switch field {
	case EducationInstitution:
		e.Institution = value
	case EducationDegree:
		e.Degree = value
	case EducationLocation:
		e.Location = value
	case EducationPeriod:
		e.Period = value
	case EducationGrade:
		e.Grade = value
	default:
		return unknownField(field)
	}
	return nil
}

func unknownField[F ~string](field F) error {
	return fmt.Errorf("%w: unknown field %q", domain.ErrInvalidAction, string(field))
}

func experienceID(e model.Experience) string   { return e.ID }
func educationID(e model.Education) string     { return e.ID }
func languageID(l model.Language) string       { return l.ID }
func webPresenceID(w model.WebPresence) string { return w.ID }

func freshID(newID IDFunc, taken func(string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := newID()
		if id != "" && !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a unique id", domain.ErrInvalidAction)
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

func updateByID[T any](items []T, id string, idOf func(T) string, fn func(*T) error) error {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return fmt.Errorf("%w: %q", domain.ErrEntryNotFound, id)
	}
	return fn(&items[i])
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, error) {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items, fmt.Errorf("%w: %q", domain.ErrEntryNotFound, id)
	}
	return append(items[:i], items[i+1:]...), nil
}

func removeAt(items []string, index int) ([]string, error) {
	if err := checkIndex(index, len(items)); err != nil {
		return items, err
	}
	return append(items[:index], items[index+1:]...), nil
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d (len %d)", domain.ErrIndexOutOfRange, index, n)
	}
	return nil
}
