package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/reconcile"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// DispatchResult resultado del despacho de una corrida.
type DispatchResult struct {
	Created  int
	Updated  int
	Failures int
	Warnings []string
}

// UpsertDispatcher decide, por registro plegado, crear o actualizar el
// documento persistido (upsert por ASIN). Las escrituras son secuenciales en
// el orden de acumulación; el almacén garantiza atomicidad por documento y el
// pipeline no necesita atomicidad entre documentos: un batch aplicado a medias
// es un estado intermedio aceptado, no un error.
type UpsertDispatcher struct {
	records repository.InventoryRecordRepository
	log     *logger.Logger
}

// NewUpsertDispatcher construye el dispatcher.
func NewUpsertDispatcher(records repository.InventoryRecordRepository, log *logger.Logger) *UpsertDispatcher {
	return &UpsertDispatcher{records: records, log: log}
}

// Dispatch persiste los registros plegados. Una falla de escritura en un ASIN
// se registra y se acumula como warning sin abortar el resto del batch.
// Cancelación cooperativa: el ctx se verifica entre escrituras; no hay
// rollback de lo ya escrito.
func (d *UpsertDispatcher) Dispatch(
	ctx context.Context,
	merged []*reconcile.MergedRecord,
	snap *CatalogSnapshot,
	snapshotDate time.Time,
) (DispatchResult, error) {
	res := DispatchResult{}

	for _, m := range merged {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		asin := m.Record.ASIN
		sku := reconcile.ResolveSKU(m.Record.SKU, snap.SKUFor(asin))

		existing, err := d.records.FindByASIN(ctx, asin)
		if err != nil {
			d.fail(&res, asin, "buscar registro", err)
			continue
		}

		now := time.Now()
		if existing == nil {
			rec := m.Record
			rec.SKU = sku
			rec.SnapshotDate = snapshotDate
			rec.CreatedAt = now
			rec.UpdatedAt = now
			rec.TotalUnits = rec.ComputeTotalUnits()
			if _, err := d.records.Create(ctx, &rec); err != nil {
				d.fail(&res, asin, "crear registro", err)
				continue
			}
			res.Created++
			continue
		}

		patch := buildPatch(m, sku, snapshotDate)
		if err := d.records.ApplyPatch(ctx, existing.ID, patch); err != nil {
			d.fail(&res, asin, "actualizar registro", err)
			continue
		}
		res.Updated++
	}

	return res, nil
}

func (d *UpsertDispatcher) fail(res *DispatchResult, asin, op string, err error) {
	d.log.Error().Err(err).Str("asin", asin).Msg(op + " falló")
	res.Failures++
	res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s (%v)", asin, op, err))
}

// buildPatch arma la actualización parcial: solo los campos de los formatos
// vistos en esta corrida. Una corrida con solo datos FBA no debe anular los
// campos AWD ya persistidos, y viceversa. TotalUnits lo recalcula el
// repositorio dentro del read-modify-write, desde la unión de campos
// actualizados y preservados.
func buildPatch(m *reconcile.MergedRecord, sku string, snapshotDate time.Time) *entity.RecordPatch {
	patch := &entity.RecordPatch{
		SKU:          &sku,
		SnapshotDate: &snapshotDate,
	}
	if m.SeenFBA {
		patch.FBA = iptr(m.Record.FBA)
		patch.ReservedFCTransfer = iptr(m.Record.ReservedFCTransfer)
		patch.ReservedFCProcessing = iptr(m.Record.ReservedFCProcessing)
		patch.ReservedCustomerOrder = iptr(m.Record.ReservedCustomerOrder)
		patch.InboundWorking = iptr(m.Record.InboundWorking)
		patch.InboundShipped = iptr(m.Record.InboundShipped)
		patch.InboundReceived = iptr(m.Record.InboundReceived)
	}
	if m.SeenAWD {
		patch.AWD = iptr(m.Record.AWD)
		patch.InboundToAWD = iptr(m.Record.InboundToAWD)
	}
	return patch
}

func iptr(n int) *int { return &n }
