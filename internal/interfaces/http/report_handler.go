package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scms-api/internal/application/usecase"
)

// ReportHandler maneja el resumen operativo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen operativo: órdenes, stock crítico y costo logístico
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SummaryReportResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	report, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(report)
}
