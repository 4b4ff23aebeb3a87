package inventory

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/reconcile"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// UpdatesUseCase maneja el formato legado de carga: un CSV con encabezados
// asin, sku, availableunits, reservedunits, inboundunits. Cada carga es
// append-only, sin merge contra cargas anteriores.
type UpdatesUseCase struct {
	updates repository.InventoryUpdateRepository
	log     *logger.Logger
}

func NewUpdatesUseCase(updates repository.InventoryUpdateRepository, log *logger.Logger) *UpdatesUseCase {
	return &UpdatesUseCase{updates: updates, log: log}
}

// BulkUpload ingiere un CSV legado. Filas sin asin o sin sku se saltan con
// warning; cantidades no numéricas o ausentes se tratan como 0. Una falla de
// escritura en una fila no aborta el resto.
func (uc *UpdatesUseCase) BulkUpload(ctx context.Context, file io.Reader) (*dto.UpdatesUploadResponse, error) {
	rows, err := reconcile.ReadHeaderRows(file)
	if err != nil {
		return nil, fmt.Errorf("parsear CSV legado: %w", err)
	}

	resp := &dto.UpdatesUploadResponse{TotalRows: len(rows)}
	now := time.Now()

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		asin := row["asin"]
		sku := row["sku"]
		if asin == "" || sku == "" {
			resp.Skipped++
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("fila %d: asin o sku vacío, se salta", i+1))
			continue
		}

		update := &entity.InventoryUpdate{
			ASIN:           asin,
			SKU:            sku,
			AvailableUnits: atoiOrZero(row["availableunits"]),
			ReservedUnits:  atoiOrZero(row["reservedunits"]),
			InboundUnits:   atoiOrZero(row["inboundunits"]),
			Timestamp:      now,
		}
		if _, err := uc.updates.Create(ctx, update); err != nil {
			uc.log.Warn().Err(err).Str("asin", asin).Msg("fallo al escribir snapshot legado")
			resp.Skipped++
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("fila %d (%s): %v", i+1, asin, err))
			continue
		}
		resp.Added++
	}

	return resp, nil
}

// ListUpdates lista los snapshots legados.
func (uc *UpdatesUseCase) ListUpdates(ctx context.Context) (*dto.InventoryUpdateListResponse, error) {
	updates, err := uc.updates.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryUpdateResponse, 0, len(updates))
	for _, u := range updates {
		items = append(items, dto.InventoryUpdateResponse{
			ID:             u.ID,
			ASIN:           u.ASIN,
			SKU:            u.SKU,
			AvailableUnits: u.AvailableUnits,
			ReservedUnits:  u.ReservedUnits,
			InboundUnits:   u.InboundUnits,
			Timestamp:      u.Timestamp,
		})
	}
	return &dto.InventoryUpdateListResponse{Items: items, Total: len(items)}, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
