package logbook

import (
	"errors"

	"logbook-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the logbook.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the logbook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/logbook")
	group.Get("/", h.HandleList)
	group.Get("/options", h.HandleGetOptions)
	group.Put("/options", h.HandleSetOptions)
	group.Get("/objects", h.HandleListObjects)
	group.Post("/load", h.HandleLoad)
	group.Post("/load-object", h.HandleLoadObject)
	group.Post("/save", h.HandleSave)
	group.Post("/publish", h.HandlePublish)
	group.Post("/reset", h.HandleReset)
}

type loadRequest struct {
	Path   string `json:"path"`
	Object string `json:"object"`
}

type saveRequest struct {
	Path   string `json:"path"`
	Object string `json:"object"`
}

type optionsRequest struct {
	MergeMode        *string `json:"merge_mode"`
	DropCallsignOnly *bool   `json:"drop_callsign_only"`
}

// HandleList returns the current record list.
// @Summary List Records
// @Description Returns the reconciled record list, record count, and dirty state.
// @Tags logbook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Record list"
// @Router /logbook [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	m := h.service.Manager()
	records := m.Records()
	return c.JSON(fiber.Map{
		"count":               len(records),
		"has_unsaved_changes": m.HasUnsavedChanges(),
		"merge_mode":          m.MergeMode().Key(),
		"drop_callsign_only":  m.DropCallsignOnly(),
		"records":             records,
	})
}

// HandleGetOptions returns the active reconciliation options.
// @Summary Get Options
// @Description Returns the active merge mode and callsign-only filter state.
// @Tags logbook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Options"
// @Router /logbook/options [get]
func (h *Handler) HandleGetOptions(c *fiber.Ctx) error {
	m := h.service.Manager()
	return c.JSON(fiber.Map{
		"merge_mode":         m.MergeMode().Key(),
		"drop_callsign_only": m.DropCallsignOnly(),
	})
}

// HandleSetOptions updates the reconciliation options.
// @Summary Set Options
// @Description Sets the merge mode (keep-all, keep-recent, smart-merge) and/or the callsign-only filter. Takes effect on the next mutation.
// @Tags logbook
// @Accept json
// @Produce json
// @Param options body optionsRequest true "Options"
// @Success 200 {object} map[string]interface{} "Updated options"
// @Failure 400 {object} map[string]string "Invalid merge mode"
// @Router /logbook/options [put]
func (h *Handler) HandleSetOptions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req optionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	m := h.service.Manager()
	if req.MergeMode != nil {
		mode, err := ParseMergeMode(*req.MergeMode)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		m.SetMergeMode(mode)
	}
	if req.DropCallsignOnly != nil {
		m.SetDropCallsignOnly(*req.DropCallsignOnly)
	}

	l.Info("Options updated",
		zap.String("merge_mode", m.MergeMode().Key()),
		zap.Bool("drop_callsign_only", m.DropCallsignOnly()),
	)
	return h.HandleGetOptions(c)
}

// HandleListObjects lists contest log files in the storage bucket.
// @Summary List Remote Logs
// @Description Lists contest log files available in the object-storage bucket.
// @Tags logbook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Object keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /logbook/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	keys, err := h.service.ListObjects(c.Context())
	if err != nil {
		l.Error("Failed to list remote logs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"objects": keys})
}

// HandleLoad ingests a contest log from a local path.
// @Summary Load Log File
// @Description Loads a contest log (.csl, .edi, .adi, .adif, .minos) from a server-local path and merges it into the record list.
// @Tags logbook
// @Accept json
// @Produce json
// @Param request body loadRequest true "Load request"
// @Success 200 {object} MergeSummary "Merge summary"
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 422 {object} map[string]string "Malformed file"
// @Router /logbook/load [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req loadRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing path"})
	}

	summary, err := h.service.Manager().Load(req.Path, progressLogger(l))
	if err != nil {
		l.Error("Load failed", zap.String("path", req.Path), zap.Error(err))
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

// HandleLoadObject ingests a contest log from the storage bucket.
// @Summary Load Remote Log
// @Description Fetches a contest log from the object-storage bucket and merges it into the record list.
// @Tags logbook
// @Accept json
// @Produce json
// @Param request body loadRequest true "Load request (object key)"
// @Success 200 {object} MergeSummary "Merge summary"
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 422 {object} map[string]string "Malformed file"
// @Router /logbook/load-object [post]
func (h *Handler) HandleLoadObject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req loadRequest
	if err := c.BodyParser(&req); err != nil || req.Object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object"})
	}

	summary, err := h.service.LoadObject(c.Context(), req.Object, progressLogger(l))
	if err != nil {
		l.Error("Remote load failed", zap.String("object", req.Object), zap.Error(err))
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

// HandleSave writes the canonical CSL export to a local path.
// @Summary Save Logbook
// @Description Writes the reconciled record list to a server-local CSL file.
// @Tags logbook
// @Accept json
// @Produce json
// @Param request body saveRequest true "Save request"
// @Success 200 {object} map[string]interface{} "Save result"
// @Failure 500 {object} map[string]string "Write error"
// @Router /logbook/save [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req saveRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing path"})
	}

	if err := h.service.Manager().Save(req.Path); err != nil {
		l.Error("Save failed", zap.String("path", req.Path), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "saved", "records": h.service.Manager().Count()})
}

// HandlePublish uploads the canonical CSL export to the storage bucket.
// @Summary Publish Logbook
// @Description Serializes the record list as CSL and uploads it to the object-storage bucket.
// @Tags logbook
// @Accept json
// @Produce json
// @Param request body saveRequest true "Publish request (object key)"
// @Success 200 {object} map[string]interface{} "Publish result"
// @Failure 500 {object} map[string]string "Write error"
// @Router /logbook/publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req saveRequest
	if err := c.BodyParser(&req); err != nil || req.Object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object"})
	}

	if err := h.service.PublishObject(c.Context(), req.Object); err != nil {
		l.Error("Publish failed", zap.String("object", req.Object), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "published", "records": h.service.Manager().Count()})
}

// HandleReset clears the record store.
// @Summary Reset Logbook
// @Description Clears the record store unconditionally.
// @Tags logbook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Reset result"
// @Router /logbook/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	h.service.Manager().Reset()
	l.Info("Logbook reset")
	return c.JSON(fiber.Map{"status": "reset", "records": 0})
}

// statusForError maps the typed error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	var notFound *NotFoundError
	var unsupported *UnsupportedFormatError
	var formatErr *FormatError
	var parseErr *ParseError
	var emptyErr *EmptyResultError

	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &unsupported):
		return fiber.StatusBadRequest
	case errors.As(err, &formatErr), errors.As(err, &parseErr), errors.As(err, &emptyErr):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// progressLogger reports load progress to the request log in 25% steps.
func progressLogger(l *zap.Logger) ProgressFunc {
	next := 25.0
	return func(p float64) {
		for p >= next {
			l.Debug("Load progress", zap.Float64("percent", next))
			next += 25
		}
	}
}
