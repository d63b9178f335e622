package domain

import (
	"time"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// Session is one editing context: a single resume snapshot that is
// replaced wholesale on every accepted update. Score and Tier are computed
// from Resume whenever it is replaced.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	Language  string          `json:"language"`
	Revision  int             `json:"revision"`
	Resume    model.Resume    `json:"resume"`
	Score     float64         `json:"score"`
	Tier      layout.FontTier `json:"tier"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Clone returns a copy that shares no slices with s.
func (s Session) Clone() Session {
	s.Resume = s.Resume.Clone()
	return s
}
