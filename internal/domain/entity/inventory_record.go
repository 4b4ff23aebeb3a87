package entity

import "time"

// UnknownSKU es el marcador usado cuando ni la fila ni el catálogo aportan SKU.
const UnknownSKU = "Unknown SKU"

// InventoryRecord es la unidad de persistencia del pipeline de reconciliación.
// Un registro vivo por ASIN, actualizado in place en cada carga (upsert).
// Forma canónica plana: los agregados históricos (inbound_to_fba, reserved_units)
// eran duplicados derivables y no se persisten; TotalUnits se recalcula siempre
// desde los campos de cantidad vigentes, nunca se acumula sobre un total previo.
type InventoryRecord struct {
	ID   string // ID del documento Firestore
	ASIN string
	SKU  string

	// Cantidades FBA (centro de fulfillment)
	FBA                   int // unidades disponibles
	ReservedFCTransfer    int
	ReservedFCProcessing  int
	ReservedCustomerOrder int
	InboundWorking        int
	InboundShipped        int
	InboundReceived       int

	// Cantidades AWD (distribución de almacén)
	AWD          int // unidades disponibles
	InboundToAWD int

	TotalUnits   int
	SnapshotDate time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ComputeTotalUnits suma todos los campos de cantidad vigentes.
// Función pura: con el mismo conjunto de campos siempre produce el mismo valor.
func (r *InventoryRecord) ComputeTotalUnits() int {
	return r.FBA +
		r.ReservedFCTransfer +
		r.ReservedFCProcessing +
		r.ReservedCustomerOrder +
		r.InboundWorking +
		r.InboundShipped +
		r.InboundReceived +
		r.AWD +
		r.InboundToAWD
}

// RecordPatch es una actualización parcial de un InventoryRecord: solo los
// campos no-nil se aplican. Una corrida que trae solo datos FBA no debe anular
// los campos AWD ya persistidos, y viceversa.
type RecordPatch struct {
	SKU *string

	FBA                   *int
	ReservedFCTransfer    *int
	ReservedFCProcessing  *int
	ReservedCustomerOrder *int
	InboundWorking        *int
	InboundShipped        *int
	InboundReceived       *int

	AWD          *int
	InboundToAWD *int

	SnapshotDate *time.Time
	Notes        *string
}

// ApplyTo aplica los campos presentes del patch sobre el registro.
// No toca TotalUnits: el caller debe recalcularlo con ComputeTotalUnits
// después de aplicar, desde la unión de campos actualizados y preservados.
func (p *RecordPatch) ApplyTo(r *InventoryRecord) {
	if p.SKU != nil {
		r.SKU = *p.SKU
	}
	if p.FBA != nil {
		r.FBA = *p.FBA
	}
	if p.ReservedFCTransfer != nil {
		r.ReservedFCTransfer = *p.ReservedFCTransfer
	}
	if p.ReservedFCProcessing != nil {
		r.ReservedFCProcessing = *p.ReservedFCProcessing
	}
	if p.ReservedCustomerOrder != nil {
		r.ReservedCustomerOrder = *p.ReservedCustomerOrder
	}
	if p.InboundWorking != nil {
		r.InboundWorking = *p.InboundWorking
	}
	if p.InboundShipped != nil {
		r.InboundShipped = *p.InboundShipped
	}
	if p.InboundReceived != nil {
		r.InboundReceived = *p.InboundReceived
	}
	if p.AWD != nil {
		r.AWD = *p.AWD
	}
	if p.InboundToAWD != nil {
		r.InboundToAWD = *p.InboundToAWD
	}
	if p.SnapshotDate != nil {
		r.SnapshotDate = *p.SnapshotDate
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
