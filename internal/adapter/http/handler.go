package http

import (
	"context"
	"errors"
	"strconv"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ExportLister returns the recorded exports of a session, newest first.
type ExportLister interface {
	ListForSession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.Export, error)
}

type Handler struct {
	editor   *usecase.Editor
	exporter *usecase.Exporter
	preview  *preview.Renderer
	exports  ExportLister
	log      zerolog.Logger
}

func NewHandler(ed *usecase.Editor, x *usecase.Exporter, pr *preview.Renderer, exports ExportLister, logger zerolog.Logger) *Handler {
	return &Handler{editor: ed, exporter: x, preview: pr, exports: exports, log: logger}
}

type sessionView struct {
	ID        uuid.UUID       `json:"id"`
	Revision  int             `json:"revision"`
	Language  string          `json:"language"`
	Resume    model.Resume    `json:"resume"`
	Score     float64         `json:"score"`
	Tier      layout.FontTier `json:"tier"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func viewOf(s *domain.Session) sessionView {
	return sessionView{
		ID:        s.ID,
		Revision:  s.Revision,
		Language:  s.Language,
		Resume:    s.Resume,
		Score:     s.Score,
		Tier:      s.Tier,
		UpdatedAt: s.UpdatedAt,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Layout scores a posted snapshot without creating a session.
func (h *Handler) Layout(c *fiber.Ctx) error {
	r, err := model.Decode(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	score := layout.Score(r)
	return c.JSON(fiber.Map{"score": score, "tier": layout.SelectTier(score)})
}

type createReq struct {
	Sample   bool   `json:"sample"`
	Language string `json:"language"`
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var req createReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
	}
	s, err := h.editor.Create(c.UserContext(), usecase.CreateSessionInput{Sample: req.Sample, Language: req.Language})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(viewOf(s))
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	s, err := h.editor.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(viewOf(s))
}

func (h *Handler) ImportResume(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	r, err := model.Decode(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	s, err := h.editor.Import(c.UserContext(), id, r)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(viewOf(s))
}

func (h *Handler) ApplyAction(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	a, err := usecase.DecodeAction(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	s, err := h.editor.Apply(c.UserContext(), id, a)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(viewOf(s))
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	s, err := h.editor.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	html, err := h.preview.RenderWithTier(s.Resume, s.Language, s.Tier)
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	res, err := h.exporter.Export(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	c.Attachment(res.Export.FileName)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set("X-Resume-Pages", strconv.Itoa(res.Export.Pages))
	return c.Send(res.PDF)
}

func (h *Handler) ListExports(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if _, err := h.editor.Get(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	exports := []domain.Export{}
	if h.exports != nil {
		list, err := h.exports.ListForSession(c.UserContext(), id, c.QueryInt("limit", 20))
		if err != nil {
			return h.fail(c, err)
		}
		if list != nil {
			exports = list
		}
	}
	return c.JSON(fiber.Map{"exports": exports})
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.editor.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	return id, nil
}

// fail maps domain errors to statuses. Unexpected errors are logged and
// answered with a bare 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrEntryNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAction), errors.Is(err, domain.ErrIndexOutOfRange):
		status = fiber.StatusBadRequest
	case errors.Is(err, model.ErrInvalidResume):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExportFailed):
		status = fiber.StatusBadGateway
	}
	if status == fiber.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
