package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"resume-builder/internal/domain"
)

// ActionEnvelope is the wire form of an Action:
//
//	{"type": "experience.update", "payload": {"id": "...", "field": "company", "value": "Acme"}}
type ActionEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// actionDecoders maps envelope types to decoders. The listed keys must be
// present and non-null in the payload; a missing index would otherwise
// decode as 0 and address the first entry.
var actionDecoders = map[string]func(json.RawMessage) (Action, error){
	"personal.set":          decodeAction[SetPersonalField]("field", "value"),
	"personal.replace":      decodeAction[ReplacePersonal]("personal"),
	"experience.add":        decodeAction[AddExperience](),
	"experience.update":     decodeAction[UpdateExperience]("id", "field", "value"),
	"experience.remove":     decodeAction[RemoveExperience]("id"),
	"responsibility.add":    decodeAction[AddResponsibility]("experienceId"),
	"responsibility.update": decodeAction[UpdateResponsibility]("experienceId", "index", "value"),
	"responsibility.remove": decodeAction[RemoveResponsibility]("experienceId", "index"),
	"education.add":         decodeAction[AddEducation](),
	"education.update":      decodeAction[UpdateEducation]("id", "field", "value"),
	"education.remove":      decodeAction[RemoveEducation]("id"),
	"skill.add":             decodeAction[AddSkill]("skill"),
	"skill.remove":          decodeAction[RemoveSkill]("skill"),
	"summary.set":           decodeAction[SetSummary]("summary"),
	"achievement.add":       decodeAction[AddAchievement](),
	"achievement.update":    decodeAction[UpdateAchievement]("index", "value"),
	"achievement.remove":    decodeAction[RemoveAchievement]("index"),
	"language.add":          decodeAction[AddLanguage](),
	"language.update":       decodeAction[UpdateLanguage]("id", "field", "value"),
	"language.remove":       decodeAction[RemoveLanguage]("id"),
	"webPresence.add":       decodeAction[AddWebPresence](),
	"webPresence.update":    decodeAction[UpdateWebPresence]("id", "field", "value"),
	"webPresence.remove":    decodeAction[RemoveWebPresence]("id"),
}

// DecodeAction parses an ActionEnvelope.
func DecodeAction(data []byte) (Action, error) {
	var env ActionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAction, err)
	}
	decode, ok := actionDecoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidAction, env.Type)
	}
	return decode(env.Payload)
}

// ActionTypes lists the accepted envelope types.
func ActionTypes() []string {
	out := make([]string, 0, len(actionDecoders))
	for k := range actionDecoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var jsonNull = []byte("null")

func decodeAction[A Action](required ...string) func(json.RawMessage) (Action, error) {
	return func(payload json.RawMessage) (Action, error) {
		var a A
		trimmed := bytes.TrimSpace(payload)
		empty := len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
		if err := checkRequired(trimmed, empty, required); err != nil {
			return nil, err
		}
		if empty {
			return a, nil
		}
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("%w: payload: %v", domain.ErrInvalidAction, err)
		}
		return a, nil
	}
}

func checkRequired(payload []byte, empty bool, required []string) error {
	if len(required) == 0 {
		return nil
	}
	if empty {
		return fmt.Errorf("%w: payload missing %q", domain.ErrInvalidAction, required[0])
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(payload, &keys); err != nil {
		return fmt.Errorf("%w: payload: %v", domain.ErrInvalidAction, err)
	}
	for _, k := range required {
		v, ok := keys[k]
		if !ok || bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return fmt.Errorf("%w: payload missing %q", domain.ErrInvalidAction, k)
		}
	}
	return nil
}
