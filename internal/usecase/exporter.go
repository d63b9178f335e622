package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Renderer turns a rendered HTML document into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string, opts domain.PDFOptions) ([]byte, error)
}

// DocumentRenderer produces the HTML document that is previewed and exported.
type DocumentRenderer interface {
	RenderWithTier(r model.Resume, lang string, tier layout.FontTier) (string, error)
}

type PageCounter interface {
	CountPages(pdf []byte) (int, error)
}

// ArtifactStore keeps exported files and returns where they were written.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type ExportsRepo interface {
	Save(ctx context.Context, e *domain.Export) error
}

type SessionReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

type ExporterDeps struct {
	Sessions SessionReader
	Document DocumentRenderer
	Renderer Renderer
	// Optional collaborators; nil disables them.
	Pages PageCounter
	Store ArtifactStore
	Repo  ExportsRepo

	Options domain.PDFOptions
	Logger  zerolog.Logger
}

// Exporter renders a session's snapshot to PDF.
type Exporter struct {
	sessions SessionReader
	document DocumentRenderer
	renderer Renderer
	pages    PageCounter
	store    ArtifactStore
	repo     ExportsRepo
	opts     domain.PDFOptions
	now      func() time.Time
	log      zerolog.Logger
}

func NewExporter(deps ExporterDeps) *Exporter {
	return &Exporter{
		sessions: deps.Sessions,
		document: deps.Document,
		renderer: deps.Renderer,
		pages:    deps.Pages,
		store:    deps.Store,
		repo:     deps.Repo,
		opts:     deps.Options,
		now:      time.Now,
		log:      deps.Logger,
	}
}

type ExportResult struct {
	Export domain.Export
	PDF    []byte
}

var pdfSignature = []byte("%PDF")

// Export renders the current snapshot of a session. Any failure after the
// session is found is reported as domain.ErrExportFailed; the cause is
// logged and recorded on the export row.
func (x *Exporter) Export(ctx context.Context, sessionID uuid.UUID) (*ExportResult, error) {
	s, err := x.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := x.now()
	exp := domain.Export{
		ID:        uuid.New(),
		SessionID: s.ID,
		FileName:  FileName(s.Resume.Personal.FullName),
		FontBase:  s.Tier.Base,
		Score:     s.Score,
		Metadata:  map[string]interface{}{"revision": s.Revision},
		CreatedAt: now,
	}
	logger := x.log.With().Str("session", s.ID.String()).Str("export", exp.ID.String()).Logger()
	keyBase := fmt.Sprintf("%s/resume_%s_%s", s.ID, now.UTC().Format("20060102T150405"), exp.ID)

	fail := func(stage string, cause error) (*ExportResult, error) {
		logger.Error().Err(cause).Str("stage", stage).Msg("export failed")
		exp.Status = domain.ExportStatusFailed
		exp.Metadata["error"] = fmt.Sprintf("%s: %v", stage, cause)
		x.record(ctx, logger, &exp)
		return nil, domain.ErrExportFailed
	}

	html, err := x.document.RenderWithTier(s.Resume, s.Language, s.Tier)
	if err != nil {
		return fail("render_html", err)
	}
	if !strings.Contains(html, `id="resume-output"`) {
		return fail("render_html", errors.New("render target not found in document"))
	}

	// keep the HTML even if PDF rendering fails
	if loc, ok := x.put(ctx, logger, keyBase+".html", []byte(html), "text/html; charset=utf-8"); ok {
		exp.Metadata["generated_html"] = loc
	}

	pdf, err := x.renderer.RenderHTMLToPDF(ctx, html, x.opts)
	if err != nil {
		return fail("render_pdf", err)
	}
	if !bytes.HasPrefix(pdf, pdfSignature) {
		return fail("render_pdf", fmt.Errorf("invalid PDF output (len=%d)", len(pdf)))
	}
	exp.SizeBytes = len(pdf)

	if x.pages != nil {
		n, err := x.pages.CountPages(pdf)
		if err != nil {
			logger.Warn().Err(err).Msg("could not count PDF pages")
		} else {
			exp.Pages = n
			if n > 1 {
				logger.Warn().Int("pages", n).Int("font_base", s.Tier.Base).Float64("score", s.Score).Msg("export does not fit on one page")
			}
		}
	}

	if loc, ok := x.put(ctx, logger, keyBase+".pdf", pdf, "application/pdf"); ok {
		exp.Metadata["generated_pdf"] = loc
	}

	exp.Status = domain.ExportStatusCompleted
	x.record(ctx, logger, &exp)
	logger.Info().Str("file", exp.FileName).Int("bytes", exp.SizeBytes).Int("pages", exp.Pages).Msg("export completed")

	return &ExportResult{Export: exp, PDF: pdf}, nil
}

func (x *Exporter) put(ctx context.Context, logger zerolog.Logger, key string, data []byte, contentType string) (string, bool) {
	if x.store == nil {
		return "", false
	}
	loc, err := x.store.Put(ctx, key, data, contentType)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("could not store export artifact")
		return "", false
	}
	return loc, true
}

func (x *Exporter) record(ctx context.Context, logger zerolog.Logger, exp *domain.Export) {
	if x.repo == nil {
		return
	}
	if err := x.repo.Save(ctx, exp); err != nil {
		logger.Warn().Err(err).Msg("could not record export")
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName builds the download name: whitespace runs in the full name become
// a single "-", followed by "-Resume.pdf".
func FileName(fullName string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(fullName), "-")
	if name == "" {
		return "Resume.pdf"
	}
	return name + "-Resume.pdf"
}
