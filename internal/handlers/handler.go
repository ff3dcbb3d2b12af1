package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/speakgrade/speakgrade/internal/config"
	"github.com/speakgrade/speakgrade/internal/models"
	"github.com/speakgrade/speakgrade/internal/render"
	"github.com/speakgrade/speakgrade/internal/report"
	"github.com/speakgrade/speakgrade/internal/services"
)

type Handler struct {
	Evaluator   *services.Evaluator
	Synthesizer *report.Synthesizer
	Cfg         *config.Config
}

func NewHandler(evaluator *services.Evaluator, synthesizer *report.Synthesizer, cfg *config.Config) *Handler {
	return &Handler{
		Evaluator:   evaluator,
		Synthesizer: synthesizer,
		Cfg:         cfg,
	}
}

func (h *Handler) IndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"ToastIntervalMs": h.Cfg.ToastInterval.Milliseconds(),
		"DefaultDuration": 52,
	})
}

// Evaluate receives the transcript+duration pair, runs the evaluation and
// answers with the scoring service's envelope shape.
func (h *Handler) Evaluate(c *fiber.Ctx) error {
	var req models.EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body.",
		})
	}

	result, err := h.Evaluator.Submit(c.Context(), req.Transcript, req.Duration)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"results": result,
	})
}

// Sample returns a predefined transcript+duration pair for the input form.
func (h *Handler) Sample(c *fiber.Ctx) error {
	sample, err := h.Evaluator.LoadSample(c.Context())
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(sample)
}

// Results renders the results section from the latest result.
func (h *Handler) Results(c *fiber.Ctx) error {
	result, err := h.Evaluator.Latest()
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.Render("results", render.BuildView(result))
}

// ExportJSON offers the latest result as a downloadable snapshot file.
func (h *Handler) ExportJSON(c *fiber.Ctx) error {
	result, _ := h.Evaluator.Latest()
	data, filename, err := h.Synthesizer.Snapshot(result, time.Now())
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

// Report serves the self-contained printable report document.
func (h *Handler) Report(c *fiber.Ctx) error {
	result, _ := h.Evaluator.Latest()
	doc, err := h.Synthesizer.PrintableReport(result, time.Now())
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(doc)
}

// Summary serves the shareable plain-text digest.
func (h *Handler) Summary(c *fiber.Ctx) error {
	result, _ := h.Evaluator.Latest()
	text, err := h.Synthesizer.TextSummary(result)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

func statusFor(err error) int {
	var validationErr *models.ValidationError
	var noResultErr *models.NoResultError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &noResultErr):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}
