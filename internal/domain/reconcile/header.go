package reconcile

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ReadHeaderRows parsea un CSV cuyo encabezado sí es autoritativo (variantes
// nuevas de carga). Los nombres de encabezado se normalizan a minúsculas para
// un matching case-insensitive; cada fila se devuelve como mapa encabezado →
// celda. Filas con menos celdas que encabezados se completan con "".
func ReadHeaderRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return rows, err
			}
			continue
		}
		if isBlank(rec) {
			continue
		}
		row := make(map[string]string, len(keys))
		for i, k := range keys {
			if k == "" {
				continue
			}
			row[k] = cell(rec, i)
		}
		rows = append(rows, row)
	}
}
