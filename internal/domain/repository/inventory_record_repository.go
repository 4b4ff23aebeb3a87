package repository

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// InventoryRecordRepository define el puerto de persistencia para InventoryRecord.
//
// FindByASIN busca por campo (no por clave de documento) porque datos legados
// pueden tener múltiples documentos por ASIN de versiones anteriores sin upsert;
// se toma el primer match y se devuelve nil si no existe ninguno.
//
// ApplyPatch ejecuta un read-modify-write transaccional: lee el documento,
// aplica solo los campos presentes del patch y recalcula TotalUnits desde la
// unión de campos actualizados y preservados, evitando lost updates cuando dos
// cargas concurrentes tocan el mismo ASIN.
type InventoryRecordRepository interface {
	Create(ctx context.Context, record *entity.InventoryRecord) (string, error)
	FindByASIN(ctx context.Context, asin string) (*entity.InventoryRecord, error)
	ApplyPatch(ctx context.Context, id string, patch *entity.RecordPatch) error
	ListAll(ctx context.Context) ([]*entity.InventoryRecord, error)
}
