package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

// ReportPDFGenerator define el puerto de salida para la representación gráfica
// del reporte mensual. Cualquier adaptador (maroto, mock) implementa este
// contrato; la aplicación no conoce la librería concreta.
type ReportPDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, report *dto.MonthlyReportResponse) ([]byte, error)
}

// MonthlyUseCase arma el reporte mensual de órdenes: unidades y cartones
// planificados por SKU sobre las órdenes cuya fecha de orden cae en el mes.
type MonthlyUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	generator ReportPDFGenerator
}

// NewMonthlyUseCase construye el caso de uso.
func NewMonthlyUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	generator ReportPDFGenerator,
) *MonthlyUseCase {
	return &MonthlyUseCase{orders: orders, products: products, generator: generator}
}

// Monthly agrega las órdenes del mes (formato YYYY-MM). Órdenes sin fecha de
// orden no se consideran. Un mes sin órdenes produce un reporte vacío, no un
// error.
func (uc *MonthlyUseCase) Monthly(ctx context.Context, month string) (*dto.MonthlyReportResponse, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("%w: mes inválido %q, se espera YYYY-MM", domain.ErrInvalidInput, month)
	}
	end := start.AddDate(0, 1, 0)

	orders, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type agg struct {
		units   int
		cartons int
	}
	bySKU := make(map[string]*agg)
	considered := 0
	for _, o := range orders {
		if o.OrderDate == nil || o.OrderDate.Before(start) || !o.OrderDate.Before(end) {
			continue
		}
		considered++
		for _, it := range o.Items {
			a, ok := bySKU[it.SKU]
			if !ok {
				a = &agg{}
				bySKU[it.SKU] = a
			}
			a.units += it.TotalUnitCount
			a.cartons += it.TotalCartonCount
		}
	}

	names, err := uc.productNamesBySKU(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.MonthlyReportRow, 0, len(bySKU))
	for sku, a := range bySKU {
		rows = append(rows, dto.MonthlyReportRow{
			SKU:          sku,
			ProductName:  names[sku],
			TotalUnits:   a.units,
			TotalCartons: a.cartons,
		})
	}
	// Orden estable por SKU para que el reporte sea reproducible.
	sort.Slice(rows, func(i, j int) bool { return rows[i].SKU < rows[j].SKU })

	return &dto.MonthlyReportResponse{Month: month, Rows: rows, Orders: considered}, nil
}

// DownloadMonthlyPDF arma el reporte del mes y lo renderiza a PDF.
func (uc *MonthlyUseCase) DownloadMonthlyPDF(ctx context.Context, month string) (pdfBytes []byte, filename string, err error) {
	report, err := uc.Monthly(ctx, month)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateMonthlyReportPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación de PDF fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("reporte_mensual_%s.pdf", month), nil
}

// productNamesBySKU indexa el nombre descriptivo por SKU. Si varios productos
// comparten SKU (histórico), gana el primero.
func (uc *MonthlyUseCase) productNamesBySKU(ctx context.Context) (map[string]string, error) {
	products, err := uc.products.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		if p.SKU == "" {
			continue
		}
		if _, ok := names[p.SKU]; !ok {
			names[p.SKU] = p.ProductType
		}
	}
	return names, nil
}
