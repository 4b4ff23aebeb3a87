package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

const inventoryUpdatesCollection = "inventory_updates"

// InventoryUpdateRepo implementación Firestore del puerto de snapshots legados.
// La colección es append-only: nunca se actualiza un documento existente.
type InventoryUpdateRepo struct {
	client *Client
}

var _ repository.InventoryUpdateRepository = (*InventoryUpdateRepo)(nil)

// NewInventoryUpdateRepo construye el repositorio.
func NewInventoryUpdateRepo(client *Client) *InventoryUpdateRepo {
	return &InventoryUpdateRepo{client: client}
}

func (r *InventoryUpdateRepo) col() *firestore.CollectionRef {
	return r.client.FS.Collection(inventoryUpdatesCollection)
}

// Create agrega un snapshot legado y devuelve el ID del documento.
func (r *InventoryUpdateRepo) Create(ctx context.Context, update *entity.InventoryUpdate) (string, error) {
	if update == nil {
		return "", errors.New("snapshot nil")
	}
	ref := r.col().NewDoc()
	doc := map[string]any{
		"asin":           update.ASIN,
		"sku":            update.SKU,
		"availableUnits": update.AvailableUnits,
		"reservedUnits":  update.ReservedUnits,
		"inboundUnits":   update.InboundUnits,
		"timestamp":      update.Timestamp,
	}
	if _, err := ref.Set(ctx, doc); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// ListAll lista los snapshots legados ordenados del más reciente al más viejo.
func (r *InventoryUpdateRepo) ListAll(ctx context.Context) ([]*entity.InventoryUpdate, error) {
	it := r.col().OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var out []*entity.InventoryUpdate
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		data := doc.Data()
		out = append(out, &entity.InventoryUpdate{
			ID:             doc.Ref.ID,
			ASIN:           getStr(data, "asin"),
			SKU:            getStr(data, "sku"),
			AvailableUnits: getInt(data, "availableUnits"),
			ReservedUnits:  getInt(data, "reservedUnits"),
			InboundUnits:   getInt(data, "inboundUnits"),
			Timestamp:      getTime(data, "timestamp"),
		})
	}
}
