package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/greenforce/gf-crm/internal/application/analytics"
	"github.com/greenforce/gf-crm/internal/application/dto"
)

// DashboardHandler expone el resumen de solo lectura del inventario.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del inventario
// @Description  Unidades totales, conteos, alertas de stock bajo y totales por
//
//	categoría. No modifica estado.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
