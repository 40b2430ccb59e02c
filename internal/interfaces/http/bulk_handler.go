package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/greenforce/gf-crm/internal/application/bulk"
	"github.com/greenforce/gf-crm/internal/application/dto"
	"github.com/greenforce/gf-crm/internal/domain"
)

// BulkHandler maneja la importación y exportación masiva del catálogo en CSV.
type BulkHandler struct {
	uc *bulk.BulkTransferUseCase
}

func NewBulkHandler(uc *bulk.BulkTransferUseCase) *BulkHandler {
	return &BulkHandler{uc: uc}
}

// Import godoc
// @Summary      Importar catálogo desde CSV
// @Description  El cuerpo es el CSV crudo. La cabecera debe incluir name,
//
//	category, cost, price, stock y reorderPoint; una cabecera
//	incompleta rechaza el archivo completo sin tocar el catálogo.
//
// @Tags         bulk
// @Security     Bearer
// @Accept       plain
// @Produce      json
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/import [post]
func (h *BulkHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "IMPORT_REJECTED", Message: "el archivo está vacío"})
	}
	out, err := h.uc.ImportCSV(c.Context(), string(body))
	if err != nil {
		if errors.Is(err, domain.ErrImportRejected) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "IMPORT_REJECTED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar catálogo a CSV
// @Tags         bulk
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/inventory/export [get]
func (h *BulkHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.ExportCSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory.csv"`)
	return c.SendString(out)
}
