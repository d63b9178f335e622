package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ErrInvalidResume is returned (wrapped) when an imported document does not
// describe a usable snapshot.
var ErrInvalidResume = errors.New("invalid resume")

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// ValidateJSON validates a raw JSON document against resume.schema.json.
func ValidateJSON(doc []byte) error {
	return validate(gojsonschema.NewBytesLoader(doc))
}

func validate(doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: schema validation failed: %s", ErrInvalidResume, strings.Join(msgs, "; "))
}

// ValidateIDs checks that identifiers are unique within each sequence.
func ValidateIDs(r Resume) error {
	check := func(section string, ids []string) error {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidResume, section, id)
			}
			seen[id] = struct{}{}
		}
		return nil
	}

	ids := make([]string, 0, len(r.Experience))
	for _, e := range r.Experience {
		ids = append(ids, e.ID)
	}
	if err := check("experience", ids); err != nil {
		return err
	}
	ids = ids[:0]
	for _, e := range r.Education {
		ids = append(ids, e.ID)
	}
	if err := check("education", ids); err != nil {
		return err
	}
	ids = ids[:0]
	for _, l := range r.Languages {
		ids = append(ids, l.ID)
	}
	if err := check("language", ids); err != nil {
		return err
	}
	ids = ids[:0]
	for _, w := range r.WebPresence {
		ids = append(ids, w.ID)
	}
	return check("webPresence", ids)
}

// Decode validates doc and returns the snapshot it describes.
func Decode(doc []byte) (Resume, error) {
	if err := ValidateJSON(doc); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := json.Unmarshal(doc, &r); err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}
	return Normalize(r)
}

// Normalize replaces nil sequences with empty ones and checks id
// uniqueness.
func Normalize(r Resume) (Resume, error) {
	if err := ValidateIDs(r); err != nil {
		return Resume{}, err
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Responsibilities == nil {
			r.Experience[i].Responsibilities = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Achievements == nil {
		r.Achievements = []string{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	if r.WebPresence == nil {
		r.WebPresence = []WebPresence{}
	}
	return r, nil
}
