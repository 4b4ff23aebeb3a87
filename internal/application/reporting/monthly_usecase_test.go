package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/application/reporting"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) (string, error) {
	f.orders = append(f.orders, o)
	return o.OrderID, nil
}
func (f *fakeOrderRepo) GetByID(_ context.Context, _ string) (*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) Update(_ context.Context, _ *entity.Order) error { return nil }
func (f *fakeOrderRepo) Delete(_ context.Context, _ string) error        { return nil }
func (f *fakeOrderRepo) ListAll(_ context.Context) ([]*entity.Order, error) {
	return f.orders, nil
}

type fakeCatalog struct {
	products []*entity.Product
}

func (f *fakeCatalog) Create(_ context.Context, p *entity.Product) (string, error) { return p.ASIN, nil }
func (f *fakeCatalog) GetByID(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) GetByASIN(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) FetchAll(_ context.Context) ([]*entity.Product, error) {
	return f.products, nil
}
func (f *fakeCatalog) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeCatalog) Delete(_ context.Context, _ string) error          { return nil }

type stubGenerator struct {
	lastReport *dto.MonthlyReportResponse
}

func (s *stubGenerator) GenerateMonthlyReportPDF(_ context.Context, r *dto.MonthlyReportResponse) ([]byte, error) {
	s.lastReport = r
	return []byte("%PDF-stub"), nil
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMonthly_AgregaPorSKUDentroDelMes(t *testing.T) {
	orders := &fakeOrderRepo{orders: []*entity.Order{
		{
			OrderID:   "PO-2025-001",
			OrderDate: datePtr(2025, time.March, 5),
			Items: []entity.OrderItem{
				{SKU: "SKU-A", TotalUnitCount: 100, TotalCartonCount: 10},
				{SKU: "SKU-B", TotalUnitCount: 50, TotalCartonCount: 5},
			},
		},
		{
			OrderID:   "PO-2025-002",
			OrderDate: datePtr(2025, time.March, 28),
			Items: []entity.OrderItem{
				{SKU: "SKU-A", TotalUnitCount: 30, TotalCartonCount: 3},
			},
		},
		{
			// Fuera del mes: no cuenta.
			OrderID:   "PO-2025-003",
			OrderDate: datePtr(2025, time.April, 1),
			Items: []entity.OrderItem{
				{SKU: "SKU-A", TotalUnitCount: 999, TotalCartonCount: 99},
			},
		},
		{
			// Sin fecha de orden: no cuenta.
			OrderID: "PO-SIN-FECHA",
			Items:   []entity.OrderItem{{SKU: "SKU-B", TotalUnitCount: 7}},
		},
	}}
	catalog := &fakeCatalog{products: []*entity.Product{
		{ASIN: "B0A", SKU: "SKU-A", ProductType: "Wool Runner"},
	}}
	uc := reporting.NewMonthlyUseCase(orders, catalog, &stubGenerator{})

	report, err := uc.Monthly(context.Background(), "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", report.Month)
	assert.Equal(t, 2, report.Orders)
	require.Len(t, report.Rows, 2)

	// Filas ordenadas por SKU.
	assert.Equal(t, "SKU-A", report.Rows[0].SKU)
	assert.Equal(t, 130, report.Rows[0].TotalUnits)
	assert.Equal(t, 13, report.Rows[0].TotalCartons)
	assert.Equal(t, "Wool Runner", report.Rows[0].ProductName)

	assert.Equal(t, "SKU-B", report.Rows[1].SKU)
	assert.Equal(t, 50, report.Rows[1].TotalUnits)
	assert.Empty(t, report.Rows[1].ProductName) // SKU sin entrada de catálogo
}

func TestMonthly_MesSinOrdenesReporteVacio(t *testing.T) {
	uc := reporting.NewMonthlyUseCase(&fakeOrderRepo{}, &fakeCatalog{}, &stubGenerator{})

	report, err := uc.Monthly(context.Background(), "2025-07")
	require.NoError(t, err)
	assert.Zero(t, report.Orders)
	assert.Empty(t, report.Rows)
}

func TestMonthly_MesInvalido(t *testing.T) {
	uc := reporting.NewMonthlyUseCase(&fakeOrderRepo{}, &fakeCatalog{}, &stubGenerator{})

	_, err := uc.Monthly(context.Background(), "marzo-2025")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDownloadMonthlyPDF_NombreDeArchivo(t *testing.T) {
	gen := &stubGenerator{}
	uc := reporting.NewMonthlyUseCase(&fakeOrderRepo{}, &fakeCatalog{}, gen)

	pdf, filename, err := uc.DownloadMonthlyPDF(context.Background(), "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "reporte_mensual_2025-03.pdf", filename)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, gen.lastReport)
	assert.Equal(t, "2025-03", gen.lastReport.Month)
}
