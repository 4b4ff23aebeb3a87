package reconcile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/internal/domain/reconcile"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: los reportes reales traen una línea de banner del proveedor, luego
// el encabezado y recién después los datos. Las columnas relevantes del FBA
// están dispersas hasta el índice 95, así que las filas se construyen por
// posición y se truncan donde haga falta.
// ──────────────────────────────────────────────────────────────────────────────

func fbaLine(asin, sku, available, resTransfer, resProcessing, resCustomer, inbWorking, inbShipped, inbReceived string) string {
	rec := make([]string, 96)
	rec[3] = asin
	rec[1] = sku
	rec[6] = available
	rec[93] = resTransfer
	rec[94] = resProcessing
	rec[95] = resCustomer
	rec[89] = inbWorking
	rec[90] = inbShipped
	rec[91] = inbReceived
	return strings.Join(rec, ",")
}

func awdLine(asin, sku, inboundToAwd, available string) string {
	rec := make([]string, 12)
	rec[3] = asin
	rec[1] = sku
	rec[4] = inboundToAwd
	rec[6] = available
	return strings.Join(rec, ",")
}

func fbaReport(dataLines ...string) string {
	lines := []string{
		"FBA Manage Inventory Report - generated 2025-01-15", // banner
		fbaLine("asin", "sku", "available", "t", "p", "c", "w", "s", "r"), // encabezado
	}
	lines = append(lines, dataLines...)
	return strings.Join(lines, "\n")
}

func awdReport(dataLines ...string) string {
	lines := []string{
		"AWD Inventory Report - generated 2025-01-15",
		awdLine("asin", "sku", "inbound_to_awd", "awd"),
	}
	lines = append(lines, dataLines...)
	return strings.Join(lines, "\n")
}

func TestParseFBA_FilaCompleta(t *testing.T) {
	report := fbaReport(fbaLine("B0EXAMPLE1", "SKU-1", "100", "20", "30", "50", "10", "40", "60"))

	rows, stats, err := reconcile.ParseFBA(strings.NewReader(report))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, stats.Rows)
	assert.Equal(t, 0, stats.Skipped)

	row := rows[0]
	assert.Equal(t, "B0EXAMPLE1", row.ASIN)
	assert.Equal(t, "SKU-1", row.SKU)
	assert.Equal(t, 100, row.Available)
	assert.Equal(t, 20, row.ReservedFCTransfer)
	assert.Equal(t, 30, row.ReservedFCProcessing)
	assert.Equal(t, 50, row.ReservedCustomerOrder)
	assert.Equal(t, 10, row.InboundWorking)
	assert.Equal(t, 40, row.InboundShipped)
	assert.Equal(t, 60, row.InboundReceived)
}

// TestParseFBA_SaltaBannerYEncabezado verifica que ni el banner del proveedor
// ni la fila de encabezado terminan convertidos en filas de datos (el
// encabezado tiene "asin" en la columna del ASIN y se colaría como producto).
func TestParseFBA_SaltaBannerYEncabezado(t *testing.T) {
	report := fbaReport(fbaLine("B0EXAMPLE1", "SKU-1", "5", "", "", "", "", "", ""))

	rows, _, err := reconcile.ParseFBA(strings.NewReader(report))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B0EXAMPLE1", rows[0].ASIN)
}

func TestParseFBA_ASINVacioSeSaltaEnSilencio(t *testing.T) {
	report := fbaReport(
		fbaLine("", "SKU-SIN-ASIN", "5", "", "", "", "", "", ""),
		fbaLine("B0EXAMPLE2", "SKU-2", "7", "", "", "", "", "", ""),
	)

	rows, stats, err := reconcile.ParseFBA(strings.NewReader(report))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B0EXAMPLE2", rows[0].ASIN)
	assert.Equal(t, 1, stats.Skipped)
}

// TestParseFBA_FilaCorta: los reportes reales traen filas truncadas; una celda
// fuera de rango cuenta como vacía, nunca como panic.
func TestParseFBA_FilaCorta(t *testing.T) {
	short := strings.Join([]string{"x", "SKU-CORTO", "x", "B0SHORT123", "x", "x", "12"}, ",")
	report := fbaReport(short)

	rows, _, err := reconcile.ParseFBA(strings.NewReader(report))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B0SHORT123", rows[0].ASIN)
	assert.Equal(t, 12, rows[0].Available)
	assert.Equal(t, 0, rows[0].ReservedFCTransfer, "columna ausente debe valer 0")
}

func TestParseFBA_CeldaNoNumericaDefaultCero(t *testing.T) {
	report := fbaReport(fbaLine("B0EXAMPLE3", "SKU-3", "n/a", "", "", "", "10", "", ""))

	rows, _, err := reconcile.ParseFBA(strings.NewReader(report))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Available)
	assert.Equal(t, 10, rows[0].InboundWorking)
}

func TestParseAWD_FilaCompleta(t *testing.T) {
	report := awdReport(awdLine("B0EXAMPLE1", "SKU-1", "2", "5"))

	rows, stats, err := reconcile.ParseAWD(strings.NewReader(report))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, stats.Rows)
	assert.Equal(t, "B0EXAMPLE1", rows[0].ASIN)
	assert.Equal(t, "SKU-1", rows[0].SKU)
	assert.Equal(t, 5, rows[0].Available)
	assert.Equal(t, 2, rows[0].InboundToAWD)
}

func TestParseAWD_LineasEnBlancoIgnoradas(t *testing.T) {
	report := awdReport(
		awdLine("B0EXAMPLE1", "SKU-1", "2", "5"),
		strings.Repeat(",", 11),
	)

	rows, stats, err := reconcile.ParseAWD(strings.NewReader(report))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 0, stats.Skipped, "una línea en blanco no es una fila malformada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores del stream: una fila malformada se tolera, pero un error de lectura
// del reader subyacente se repetiría en cada Read y debe abortar la pasada.
// ──────────────────────────────────────────────────────────────────────────────

// failingReader entrega prefix y después falla siempre con err.
type failingReader struct {
	prefix *strings.Reader
	err    error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.prefix.Len() > 0 {
		return r.prefix.Read(p)
	}
	return 0, r.err
}

func TestParseFBA_ErrorDeLecturaAbortaLaPasada(t *testing.T) {
	errConn := errors.New("connection reset")
	r := &failingReader{prefix: strings.NewReader(""), err: errConn}

	_, _, err := reconcile.ParseFBA(r)
	require.ErrorIs(t, err, errConn, "el error del reader debe propagarse, no saltarse como fila")
}

func TestParseFBA_ErrorDeLecturaAMitadDelReporte(t *testing.T) {
	errConn := errors.New("connection reset")
	report := fbaReport(fbaLine("B0EXAMPLE1", "SKU-1", "100", "", "", "", "10", "", "")) + "\n"
	r := &failingReader{prefix: strings.NewReader(report), err: errConn}

	rows, _, err := reconcile.ParseFBA(r)
	require.ErrorIs(t, err, errConn)
	assert.Len(t, rows, 1, "las filas leídas antes del corte se conservan")
}

func TestParseAWD_ErrorDeLecturaAbortaLaPasada(t *testing.T) {
	errConn := errors.New("connection reset")
	r := &failingReader{prefix: strings.NewReader(""), err: errConn}

	_, _, err := reconcile.ParseAWD(r)
	require.ErrorIs(t, err, errConn)
}
