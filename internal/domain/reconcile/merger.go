package reconcile

import (
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// MergedRecord es el registro acumulado para un ASIN dentro de una corrida,
// junto con qué formatos de origen lo alimentaron. La progresión por ASIN es
// monótona: no visto → inicializado por FBA o AWD → ambos; nunca retrocede.
type MergedRecord struct {
	Record  entity.InventoryRecord
	SeenFBA bool
	SeenAWD bool
}

// Accumulator pliega filas de uno o más reportes en un mapa ASIN → registro.
//
// Reglas de merge:
//   - La primera fila de un ASIN inicializa el registro: campos del formato
//     propio verbatim, campos del otro formato en cero.
//   - Filas posteriores del mismo formato SUMAN sus cantidades (un reporte
//     puede listar el mismo ASIN más de una vez, ej. embarques divididos).
//   - Una fila del otro formato toca solo los campos de su formato; los del
//     formato ya inicializado quedan intactos.
//   - Campos escalares (SKU): la última fila procesada con valor no vacío gana.
//
// Cada fila física se pliega exactamente una vez, así que ninguna cantidad se
// suma dos veces. Re-ejecutar la corrida completa re-deriva los totales desde
// cero (la persistencia es upsert por ASIN, no append).
type Accumulator struct {
	records map[string]*MergedRecord
	order   []string // orden de primera aparición, para despacho determinista
}

// NewAccumulator construye un acumulador vacío para una corrida.
func NewAccumulator() *Accumulator {
	return &Accumulator{records: make(map[string]*MergedRecord)}
}

func (a *Accumulator) entry(asin string) *MergedRecord {
	m, ok := a.records[asin]
	if !ok {
		m = &MergedRecord{Record: entity.InventoryRecord{ASIN: asin}}
		a.records[asin] = m
		a.order = append(a.order, asin)
	}
	return m
}

// AddFBA pliega una fila FBA en el acumulador.
func (a *Accumulator) AddFBA(row FBARow) {
	m := a.entry(row.ASIN)
	if row.SKU != "" {
		m.Record.SKU = row.SKU
	}
	// Sumar es equivalente a asignar en la primera fila del formato: los
	// campos parten en cero.
	m.Record.FBA += row.Available
	m.Record.ReservedFCTransfer += row.ReservedFCTransfer
	m.Record.ReservedFCProcessing += row.ReservedFCProcessing
	m.Record.ReservedCustomerOrder += row.ReservedCustomerOrder
	m.Record.InboundWorking += row.InboundWorking
	m.Record.InboundShipped += row.InboundShipped
	m.Record.InboundReceived += row.InboundReceived
	m.SeenFBA = true
}

// AddAWD pliega una fila AWD en el acumulador.
func (a *Accumulator) AddAWD(row AWDRow) {
	m := a.entry(row.ASIN)
	if row.SKU != "" {
		m.Record.SKU = row.SKU
	}
	m.Record.AWD += row.Available
	m.Record.InboundToAWD += row.InboundToAWD
	m.SeenAWD = true
}

// Records devuelve los registros acumulados en orden de primera aparición.
func (a *Accumulator) Records() []*MergedRecord {
	out := make([]*MergedRecord, 0, len(a.order))
	for _, asin := range a.order {
		out = append(out, a.records[asin])
	}
	return out
}

// Len devuelve cuántos ASIN distintos acumuló la corrida.
func (a *Accumulator) Len() int { return len(a.records) }

// ResolveSKU aplica la precedencia histórica de resolución de SKU cuando la
// fila y el catálogo difieren: SKU de la fila → SKU del catálogo → marcador.
// El orden es contractual; cambiarlo rompe consistencia con datos existentes.
func ResolveSKU(rowSKU, catalogSKU string) string {
	if rowSKU != "" {
		return rowSKU
	}
	if catalogSKU != "" {
		return catalogSKU
	}
	return entity.UnknownSKU
}
