package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

const inventoryRecordsCollection = "inventory_records"

// InventoryRecordRepo implementación Firestore de repository.InventoryRecordRepository.
//
// Los nombres de campo de los documentos son contractuales con datos ya
// persistidos: las cantidades van en snake_case y los metadatos en camelCase.
type InventoryRecordRepo struct {
	client *Client
}

var _ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)

// NewInventoryRecordRepo construye el repositorio.
func NewInventoryRecordRepo(client *Client) *InventoryRecordRepo {
	return &InventoryRecordRepo{client: client}
}

func (r *InventoryRecordRepo) col() *firestore.CollectionRef {
	return r.client.FS.Collection(inventoryRecordsCollection)
}

// Create persiste un registro nuevo y devuelve el ID del documento.
func (r *InventoryRecordRepo) Create(ctx context.Context, record *entity.InventoryRecord) (string, error) {
	if record == nil {
		return "", errors.New("registro nil")
	}
	ref := r.col().NewDoc()
	if _, err := ref.Set(ctx, recordToDoc(record)); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// FindByASIN busca por campo asin, no por clave de documento: datos de
// generaciones sin upsert pueden tener más de un documento por ASIN y se toma
// el primero. Devuelve nil si no hay ninguno.
func (r *InventoryRecordRepo) FindByASIN(ctx context.Context, asin string) (*entity.InventoryRecord, error) {
	it := r.col().Where("asin", "==", asin).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return docToRecord(doc), nil
}

// ApplyPatch ejecuta el read-modify-write transaccional: lee el documento,
// aplica los campos presentes del patch y recalcula totalUnits desde la unión
// de campos actualizados y preservados. Dos corridas concurrentes sobre el
// mismo ASIN serializan aquí en vez de perderse actualizaciones.
func (r *InventoryRecordRepo) ApplyPatch(ctx context.Context, id string, patch *entity.RecordPatch) error {
	if patch == nil {
		return errors.New("patch nil")
	}
	ref := r.col().Doc(id)

	return r.client.FS.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrNotFound
			}
			return err
		}

		record := docToRecord(snap)
		patch.ApplyTo(record)
		record.TotalUnits = record.ComputeTotalUnits()
		record.UpdatedAt = time.Now()

		return tx.Set(ref, recordToDoc(record))
	})
}

// ListAll lista todos los registros reconciliados.
func (r *InventoryRecordRepo) ListAll(ctx context.Context) ([]*entity.InventoryRecord, error) {
	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []*entity.InventoryRecord
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, docToRecord(doc))
	}
}

func recordToDoc(r *entity.InventoryRecord) map[string]any {
	return map[string]any{
		"asin":                    r.ASIN,
		"sku":                     r.SKU,
		"fba":                     r.FBA,
		"reserved_fc_transfer":    r.ReservedFCTransfer,
		"reserved_fc_processing":  r.ReservedFCProcessing,
		"reserved_customer_order": r.ReservedCustomerOrder,
		"inbound_working":         r.InboundWorking,
		"inbound_shipped":         r.InboundShipped,
		"inbound_received":        r.InboundReceived,
		"awd":                     r.AWD,
		"inbound_to_awd":          r.InboundToAWD,
		"totalUnits":              r.TotalUnits,
		"snapshotDate":            r.SnapshotDate,
		"notes":                   r.Notes,
		"createdAt":               r.CreatedAt,
		"updatedAt":               r.UpdatedAt,
	}
}

func docToRecord(doc *firestore.DocumentSnapshot) *entity.InventoryRecord {
	data := doc.Data()
	if data == nil {
		return &entity.InventoryRecord{ID: doc.Ref.ID}
	}
	return &entity.InventoryRecord{
		ID:                    doc.Ref.ID,
		ASIN:                  getStr(data, "asin"),
		SKU:                   getStr(data, "sku"),
		FBA:                   getInt(data, "fba"),
		ReservedFCTransfer:    getInt(data, "reserved_fc_transfer"),
		ReservedFCProcessing:  getInt(data, "reserved_fc_processing"),
		ReservedCustomerOrder: getInt(data, "reserved_customer_order"),
		InboundWorking:        getInt(data, "inbound_working"),
		InboundShipped:        getInt(data, "inbound_shipped"),
		InboundReceived:       getInt(data, "inbound_received"),
		AWD:                   getInt(data, "awd"),
		InboundToAWD:          getInt(data, "inbound_to_awd"),
		TotalUnits:            getInt(data, "totalUnits"),
		SnapshotDate:          getTime(data, "snapshotDate"),
		Notes:                 getStr(data, "notes"),
		CreatedAt:             getTime(data, "createdAt"),
		UpdatedAt:             getTime(data, "updatedAt"),
	}
}
