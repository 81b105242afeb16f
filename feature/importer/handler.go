package importer

import (
	"bytes"
	"errors"

	"catalog-impex/core/impex"
	"catalog-impex/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for imports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the import routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/impex")
	group.Post("/import", h.HandleImport)
	group.Post("/bucket", h.HandleBucketImport)
	group.Get("/handlers", h.HandleListHandlers)
}

func (h *Handler) options(c *fiber.Ctx) impex.Options {
	return impex.Options{
		DryRun:   c.QueryBool("dry_run", false),
		FailFast: c.QueryBool("fail_fast", h.service.cfg.FailFast),
	}
}

// HandleImport imports the XML document sent as request body.
// @Summary Import Document
// @Description Reconciles every record of the XML document with the catalog. Failed records are reported in the summary.
// @Tags impex
// @Accept xml
// @Produce json
// @Param dry_run query boolean false "Reconcile the document in one transaction and roll it back"
// @Param fail_fast query boolean false "Stop at the first failed record"
// @Success 200 {object} impex.Summary "Import Summary"
// @Failure 400 {object} map[string]string "Empty Document"
// @Failure 422 {object} map[string]interface{} "Malformed Document"
// @Router /impex/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "request body is empty"})
	}

	opts := h.options(c)
	summary, err := h.service.Import(c.Context(), bytes.NewReader(body), opts)
	if err != nil {
		l.Error("Import aborted", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   err.Error(),
			"summary": summary,
		})
	}

	return c.JSON(summary)
}

// HandleBucketImport imports every document waiting in the bucket inbox.
// @Summary Import Bucket Inbox
// @Description Imports the inbox documents matching the descriptor and moves them to the processed or failed prefix.
// @Tags impex
// @Produce json
// @Param dry_run query boolean false "Import without committing or moving documents"
// @Param fail_fast query boolean false "Stop each document at its first failed record"
// @Success 200 {array} FileReport "Document Reports"
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /impex/bucket [post]
func (h *Handler) HandleBucketImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting bucket import")

	reports, err := h.service.ImportBucket(c.Context(), h.options(c))
	if errors.Is(err, ErrStorageUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Bucket import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(reports)
}

// HandleListHandlers lists the registered record handlers.
// @Summary List Handlers
// @Description Lists the (namespace, element) identities records are dispatched by.
// @Tags impex
// @Produce json
// @Success 200 {object} map[string]interface{} "Handlers"
// @Router /impex/handlers [get]
func (h *Handler) HandleListHandlers(c *fiber.Ctx) error {
	descriptor := h.service.Descriptor()
	return c.JSON(fiber.Map{
		"descriptor": descriptor.Name,
		"namespace":  descriptor.ContextNamespace,
		"elements":   descriptor.Elements,
		"handlers":   h.service.Handlers(),
	})
}
