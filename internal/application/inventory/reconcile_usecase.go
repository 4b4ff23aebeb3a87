package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/reconcile"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// ReconcileUseCase orquesta el pipeline completo de reconciliación para una
// carga (par de reportes FBA + AWD):
//
//	Normalizer → Resolver → Merger → Dispatcher
//
// Una corrida procesa una interacción de carga; re-ejecutar con los mismos
// archivos re-deriva los totales desde cero porque la persistencia es upsert
// por ASIN, no append.
type ReconcileUseCase struct {
	products repository.ProductRepository
	records  repository.InventoryRecordRepository
	log      *logger.Logger

	resolver   *CatalogResolver
	dispatcher *UpsertDispatcher
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(
	products repository.ProductRepository,
	records repository.InventoryRecordRepository,
	log *logger.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		products:   products,
		records:    records,
		log:        log,
		resolver:   NewCatalogResolver(products, log),
		dispatcher: NewUpsertDispatcher(records, log),
	}
}

// Run ejecuta una corrida. Ambos reportes son requeridos: con uno solo se
// rechaza antes de procesar nada (fatal solo para esta corrida). snapshotDate
// en cero se defaultea a ahora.
func (uc *ReconcileUseCase) Run(
	ctx context.Context,
	fbaReport, awdReport io.Reader,
	snapshotDate time.Time,
) (*dto.ReconcileSummary, error) {
	if fbaReport == nil || awdReport == nil {
		return nil, domain.ErrMissingReport
	}
	if snapshotDate.IsZero() {
		snapshotDate = time.Now()
	}

	fbaRows, fbaStats, err := reconcile.ParseFBA(fbaReport)
	if err != nil {
		return nil, fmt.Errorf("parsear reporte FBA: %w", err)
	}
	awdRows, awdStats, err := reconcile.ParseAWD(awdReport)
	if err != nil {
		return nil, fmt.Errorf("parsear reporte AWD: %w", err)
	}

	// Snapshot del catálogo: un solo fetch por corrida, no uno por fila.
	catalog, err := uc.products.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot del catálogo: %w", err)
	}
	snap := NewCatalogSnapshot(catalog)

	summary := &dto.ReconcileSummary{
		FBARows:    fbaStats.Rows,
		FBASkipped: fbaStats.Skipped,
		AWDRows:    awdStats.Rows,
		AWDSkipped: awdStats.Skipped,
	}

	// Resolver + Merger: cada fila se resuelve contra el snapshot (creando
	// placeholders para ASIN desconocidos) y se pliega en el acumulador.
	now := time.Now()
	acc := reconcile.NewAccumulator()
	for _, row := range fbaRows {
		if _, created := uc.resolver.Resolve(ctx, snap, row.ASIN, row.SKU, now); created {
			summary.ProductsAdded++
		}
		acc.AddFBA(row)
	}
	for _, row := range awdRows {
		if _, created := uc.resolver.Resolve(ctx, snap, row.ASIN, row.SKU, now); created {
			summary.ProductsAdded++
		}
		acc.AddAWD(row)
	}

	res, err := uc.dispatcher.Dispatch(ctx, acc.Records(), snap, snapshotDate)
	summary.RecordsCreated = res.Created
	summary.RecordsUpdated = res.Updated
	summary.WriteFailures = res.Failures
	summary.Warnings = res.Warnings
	if err != nil {
		// Cancelación del caller entre escrituras: lo aplicado queda aplicado.
		return summary, err
	}

	uc.log.Info().
		Int("fba_rows", summary.FBARows).
		Int("awd_rows", summary.AWDRows).
		Int("created", summary.RecordsCreated).
		Int("updated", summary.RecordsUpdated).
		Int("failures", summary.WriteFailures).
		Msg("corrida de reconciliación completada")

	return summary, nil
}

// ListRecords lista los registros reconciliados.
func (uc *ReconcileUseCase) ListRecords(ctx context.Context) (*dto.InventoryRecordListResponse, error) {
	records, err := uc.records.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, *toRecordResponse(r))
	}
	return &dto.InventoryRecordListResponse{Items: items, Total: len(items)}, nil
}

func toRecordResponse(r *entity.InventoryRecord) *dto.InventoryRecordResponse {
	if r == nil {
		return nil
	}
	return &dto.InventoryRecordResponse{
		ID:                    r.ID,
		ASIN:                  r.ASIN,
		SKU:                   r.SKU,
		FBA:                   r.FBA,
		ReservedFCTransfer:    r.ReservedFCTransfer,
		ReservedFCProcessing:  r.ReservedFCProcessing,
		ReservedCustomerOrder: r.ReservedCustomerOrder,
		InboundWorking:        r.InboundWorking,
		InboundShipped:        r.InboundShipped,
		InboundReceived:       r.InboundReceived,
		AWD:                   r.AWD,
		InboundToAWD:          r.InboundToAWD,
		TotalUnits:            r.TotalUnits,
		SnapshotDate:          r.SnapshotDate,
		Notes:                 r.Notes,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}
