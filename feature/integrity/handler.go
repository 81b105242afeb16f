package integrity

import (
	"catalog-impex/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the integrity checks over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the import prefixes of the bucket and the catalog schema. Never fixes anything.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Running all integrity checks")
	return c.JSON(h.service.CheckAll(c.Context()))
}

// HandleStructureCheck checks and optionally fixes the bucket structure.
// @Summary Check Structure
// @Description Checks that the import prefixes (inbox, processed, failed) exist in the storage bucket. Optionally creates missing prefixes.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing prefixes"
// @Success 200 {object} StructureReport "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Structure(c.Context(), c.QueryBool("fix", false))
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status != "ok" {
		l.Warn("Missing prefixes detected", zap.Strings("missing", report.Missing), zap.String("status", report.Status))
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the catalog database schema.
// @Summary Check Catalog Schema
// @Description Checks that the catalog tables match the catalog models (columns, declared types).
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Catalog schema drift detected")
	}

	return c.JSON(report)
}
