package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

// Export records one PDF export attempt of a session.
type Export struct {
	ID        uuid.UUID              `json:"id"`
	SessionID uuid.UUID              `json:"session_id"`
	FileName  string                 `json:"file_name"`
	Status    string                 `json:"status"`
	Pages     int                    `json:"pages"`
	SizeBytes int                    `json:"size_bytes"`
	FontBase  int                    `json:"font_base"`
	Score     float64                `json:"score"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
}

// PDFOptions is handed to the PDF renderer together with the document.
type PDFOptions struct {
	// Format is a paper name: "a4" or "letter".
	Format          string
	Landscape       bool
	MarginMM        float64
	Scale           float64
	PrintBackground bool
}
