package entity

import "time"

// InventoryUpdate es una fila de snapshot del formato legado de carga
// (CSV con encabezados availableunits/reservedunits/inboundunits).
// A diferencia de InventoryRecord, es append-only: cada carga agrega documentos.
type InventoryUpdate struct {
	ID             string // ID del documento Firestore
	ASIN           string
	SKU            string
	AvailableUnits int
	ReservedUnits  int
	InboundUnits   int
	Timestamp      time.Time // momento de la carga
}
