package dto

// MonthlyReportRow una línea del reporte mensual: unidades y cartones
// planificados por SKU según las órdenes del mes.
type MonthlyReportRow struct {
	SKU          string `json:"sku"`
	ProductName  string `json:"product_name"`
	TotalUnits   int    `json:"total_units"`
	TotalCartons int    `json:"total_cartons"`
}

// MonthlyReportResponse reporte mensual de órdenes.
type MonthlyReportResponse struct {
	Month  string             `json:"month"` // YYYY-MM
	Rows   []MonthlyReportRow `json:"rows"`
	Orders int                `json:"orders"` // órdenes consideradas
}
