package http

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/application/inventory"
	"github.com/jhoicas/Logistica-api/internal/domain"
)

// InventoryHandler maneja la carga de reportes de inventario y los listados
// de registros reconciliados y snapshots legados (protegido).
type InventoryHandler struct {
	reconcileUC *inventory.ReconcileUseCase
	updatesUC   *inventory.UpdatesUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(reconcileUC *inventory.ReconcileUseCase, updatesUC *inventory.UpdatesUseCase) *InventoryHandler {
	return &InventoryHandler{reconcileUC: reconcileUC, updatesUC: updatesUC}
}

// Reconcile godoc
// @Summary      Reconciliar inventario desde reportes FBA y AWD
// @Description  Ambos archivos son requeridos; con uno solo se rechaza antes de procesar nada.
// @Tags         inventory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        fba_file       formData  file    true   "Reporte FBA (CSV posicional con banner)"
// @Param        awd_file       formData  file    true   "Reporte AWD (CSV posicional con banner)"
// @Param        snapshot_date  query     string  false  "Fecha del snapshot (YYYY-MM-DD, default hoy)"
// @Success      200  {object}  dto.ReconcileSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/reconcile [post]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	// Los dos reportes se validan antes de abrir nada: la corrida es todo o
	// nada en la admisión, parcial solo en las escrituras.
	fbaHeader, fbaErr := c.FormFile("fba_file")
	awdHeader, awdErr := c.FormFile("awd_file")
	if fbaErr != nil || awdErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_REPORT", Message: "fba_file y awd_file son requeridos",
		})
	}

	snapshotDate := time.Now()
	if raw := c.Query("snapshot_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "snapshot_date debe ser YYYY-MM-DD",
			})
		}
		snapshotDate = parsed
	}

	fba, err := openUpload(fbaHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir fba_file"})
	}
	defer fba.Close()
	awd, err := openUpload(awdHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir awd_file"})
	}
	defer awd.Close()

	summary, err := h.reconcileUC.Run(c.UserContext(), fba, awd, snapshotDate)
	if err != nil {
		if errors.Is(err, domain.ErrMissingReport) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REPORT", Message: "ambos reportes son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// ListRecords godoc
// @Summary      Listar registros de inventario reconciliados
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryRecordListResponse
// @Router       /api/inventory/records [get]
func (h *InventoryHandler) ListRecords(c *fiber.Ctx) error {
	out, err := h.reconcileUC.ListRecords(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UploadUpdates godoc
// @Summary      Cargar snapshots de inventario en el formato legado
// @Tags         inventory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV con encabezados asin, sku, availableunits, reservedunits, inboundunits"
// @Success      200   {object}  dto.UpdatesUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/updates/upload [post]
func (h *InventoryHandler) UploadUpdates(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file (CSV) es requerido"})
	}
	f, err := openUpload(fh)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	out, err := h.updatesUC.BulkUpload(c.UserContext(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListUpdates godoc
// @Summary      Listar snapshots legados
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryUpdateListResponse
// @Router       /api/inventory/updates [get]
func (h *InventoryHandler) ListUpdates(c *fiber.Ctx) error {
	out, err := h.updatesUC.ListUpdates(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func openUpload(fh *multipart.FileHeader) (multipart.File, error) {
	return fh.Open()
}
