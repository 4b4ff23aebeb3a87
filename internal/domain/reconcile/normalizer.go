package reconcile

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ParseStats resume una pasada del Normalizer sobre un reporte.
// Las filas malformadas no generan error por fila: solo cuentan como Skipped.
type ParseStats struct {
	Rows    int // filas convertidas a SourceRow
	Skipped int // filas descartadas (ASIN vacío o línea ilegible)
}

// ParseFBA convierte el contenido crudo del reporte FBA en filas tipadas.
// Descarta las filas de banner del proveedor y la fila de encabezado; las
// posiciones de columna son la referencia, no los nombres de encabezado.
// El orden de salida no es contractual para el merge posterior.
func ParseFBA(r io.Reader) ([]FBARow, ParseStats, error) {
	var rows []FBARow
	stats := ParseStats{}
	err := eachDataRow(r, fbaBannerRows, func(rec []string) {
		asin := cell(rec, fbaColumns.ASIN)
		if asin == "" {
			stats.Skipped++
			return
		}
		rows = append(rows, FBARow{
			ASIN:                  asin,
			SKU:                   cell(rec, fbaColumns.SKU),
			Available:             cellInt(rec, fbaColumns.Available),
			ReservedFCTransfer:    cellInt(rec, fbaColumns.ReservedFCTransfer),
			ReservedFCProcessing:  cellInt(rec, fbaColumns.ReservedFCProcessing),
			ReservedCustomerOrder: cellInt(rec, fbaColumns.ReservedCustomerOrder),
			InboundWorking:        cellInt(rec, fbaColumns.InboundWorking),
			InboundShipped:        cellInt(rec, fbaColumns.InboundShipped),
			InboundReceived:       cellInt(rec, fbaColumns.InboundReceived),
		})
		stats.Rows++
	}, &stats)
	return rows, stats, err
}

// ParseAWD convierte el contenido crudo del reporte AWD en filas tipadas.
func ParseAWD(r io.Reader) ([]AWDRow, ParseStats, error) {
	var rows []AWDRow
	stats := ParseStats{}
	err := eachDataRow(r, awdBannerRows, func(rec []string) {
		asin := cell(rec, awdColumns.ASIN)
		if asin == "" {
			stats.Skipped++
			return
		}
		rows = append(rows, AWDRow{
			ASIN:         asin,
			SKU:          cell(rec, awdColumns.SKU),
			Available:    cellInt(rec, awdColumns.Available),
			InboundToAWD: cellInt(rec, awdColumns.InboundToAWD),
		})
		stats.Rows++
	}, &stats)
	return rows, stats, err
}

// eachDataRow itera las filas de datos del CSV: salta bannerRows líneas de
// metadatos más la línea de encabezado, y tolera filas con distinto número de
// celdas. Una línea ilegible se salta y se cuenta, nunca aborta el reporte;
// un error de lectura del stream sí aborta, porque se repetiría en cada Read.
func eachDataRow(r io.Reader, bannerRows int, fn func(rec []string), stats *ParseStats) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	skip := bannerRows + 1 // banner + encabezado
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return err
			}
			if skip > 0 {
				skip--
				continue
			}
			stats.Skipped++
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if isBlank(rec) {
			continue
		}
		fn(rec)
	}
}

// cell devuelve la celda idx o "" si la fila es más corta que el mapa de
// columnas (los reportes reales traen filas truncadas al final).
func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// cellInt parsea la celda como entero, con 0 como valor por defecto ante
// celda vacía, ausente o no numérica.
func cellInt(rec []string, idx int) int {
	n, err := strconv.Atoi(cell(rec, idx))
	if err != nil {
		return 0
	}
	return n
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
