package repository

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// InventoryUpdateRepository define el puerto de persistencia para el formato
// legado de snapshots (append-only: nunca se actualiza un documento existente).
type InventoryUpdateRepository interface {
	Create(ctx context.Context, update *entity.InventoryUpdate) (string, error)
	ListAll(ctx context.Context) ([]*entity.InventoryUpdate, error)
}
