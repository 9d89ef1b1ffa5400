package archive

import (
	"errors"

	"logbook-manager/core/logger"
	"logbook-manager/feature/logbook"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the snapshot archive.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleSnapshot)
	group.Post("/:id/restore", h.HandleRestore)
	group.Delete("/:id", h.HandleDelete)
}

type snapshotRequest struct {
	Name string `json:"name"`
}

// HandleList returns the stored snapshots.
// @Summary List Snapshots
// @Description Returns all stored logbook snapshots, newest first.
// @Tags archive
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Snapshot list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snapshots, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Failed to list snapshots", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"snapshots": snapshots})
}

// HandleSnapshot stores a named copy of the current record list.
// @Summary Create Snapshot
// @Description Stores a named point-in-time copy of the reconciled record list.
// @Tags archive
// @Accept json
// @Produce json
// @Param request body snapshotRequest true "Snapshot request"
// @Success 201 {object} Snapshot "Created snapshot"
// @Failure 400 {object} map[string]string "Empty record list"
// @Router /archive [post]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req snapshotRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing name"})
	}

	snap, err := h.service.Snapshot(c.Context(), req.Name)
	if err != nil {
		l.Error("Snapshot failed", zap.String("name", req.Name), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// HandleRestore replays a snapshot through the reconciliation engine.
// @Summary Restore Snapshot
// @Description Replays an archived snapshot through the merge engine under the active policy.
// @Tags archive
// @Accept json
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} logbook.MergeSummary "Merge summary"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Router /archive/{id}/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id := c.Params("id")

	summary, err := h.service.Restore(c.Context(), id)
	if err != nil {
		l.Error("Restore failed", zap.String("id", id), zap.Error(err))
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

// HandleDelete removes a snapshot.
// @Summary Delete Snapshot
// @Description Removes a snapshot and its archived records.
// @Tags archive
// @Accept json
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} map[string]string "Delete result"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Router /archive/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id := c.Params("id")

	if err := h.service.Delete(c.Context(), id); err != nil {
		l.Error("Delete failed", zap.String("id", id), zap.Error(err))
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "deleted", "id": id})
}

func statusForError(err error) int {
	var notFound *logbook.NotFoundError
	if errors.As(err, &notFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
