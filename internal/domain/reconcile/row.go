// Package reconcile implementa el núcleo del pipeline de reconciliación de
// inventario: normalización de filas CSV de los reportes FBA y AWD y el
// plegado (merge) de esas filas en un acumulador por ASIN.
//
// El flujo es estrictamente hacia adelante:
//
//	Normalizer → Resolver (application/inventory) → Merger → Dispatcher
//
// Este paquete es puro: no conoce Firestore ni HTTP, solo entidades y bytes.
package reconcile

// SourceFormat identifica el formato de reporte de origen de una fila.
type SourceFormat string

const (
	SourceFBA SourceFormat = "FBA" // centro de fulfillment
	SourceAWD SourceFormat = "AWD" // distribución de almacén
)

// Mapas de columnas posicionales. Los layouts de los reportes son fijos por
// proveedor: las posiciones, no los encabezados, son la referencia autoritativa.
// No son entrada de usuario.
var fbaColumns = struct {
	ASIN                  int
	SKU                   int
	Available             int
	ReservedFCTransfer    int
	ReservedFCProcessing  int
	ReservedCustomerOrder int
	InboundWorking        int
	InboundShipped        int
	InboundReceived       int
}{
	ASIN:                  3,
	SKU:                   1,
	Available:             6,
	ReservedFCTransfer:    93,
	ReservedFCProcessing:  94,
	ReservedCustomerOrder: 95,
	InboundWorking:        89,
	InboundShipped:        90,
	InboundReceived:       91,
}

// El reporte AWD también trae reserved_awd (col 8) y outbound_to_fba (col 10);
// no participan del merge, así que no se mapean.
var awdColumns = struct {
	ASIN         int
	SKU          int
	InboundToAWD int
	Available    int
}{
	ASIN:         3,
	SKU:          1,
	InboundToAWD: 4,
	Available:    6,
}

// Filas de metadatos (banner del proveedor) antes del encabezado real.
const (
	fbaBannerRows = 1
	awdBannerRows = 1
)

// FBARow es la vista tipada de una línea del reporte FBA. Efímera: la produce
// el Normalizer y la consume solo el Merger; no se persiste.
type FBARow struct {
	ASIN                  string
	SKU                   string
	Available             int
	ReservedFCTransfer    int
	ReservedFCProcessing  int
	ReservedCustomerOrder int
	InboundWorking        int
	InboundShipped        int
	InboundReceived       int
}

// AWDRow es la vista tipada de una línea del reporte AWD.
type AWDRow struct {
	ASIN         string
	SKU          string
	Available    int
	InboundToAWD int
}
