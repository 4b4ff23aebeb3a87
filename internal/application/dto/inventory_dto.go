package dto

import "time"

// ReconcileSummary resume una corrida del pipeline de reconciliación.
// Semántica de fallo parcial: una corrida de 500 filas con 3 escrituras
// fallidas reporta 497 éxitos y las 3 fallas como Warnings, no como error.
type ReconcileSummary struct {
	FBARows        int      `json:"fba_rows"`
	FBASkipped     int      `json:"fba_skipped"`
	AWDRows        int      `json:"awd_rows"`
	AWDSkipped     int      `json:"awd_skipped"`
	RecordsCreated int      `json:"records_created"`
	RecordsUpdated int      `json:"records_updated"`
	WriteFailures  int      `json:"write_failures"`
	ProductsAdded  int      `json:"products_added"`
	Warnings       []string `json:"warnings,omitempty"`
}

// InventoryRecordResponse salida de un registro de inventario reconciliado.
type InventoryRecordResponse struct {
	ID                    string    `json:"id"`
	ASIN                  string    `json:"asin"`
	SKU                   string    `json:"sku"`
	FBA                   int       `json:"fba"`
	ReservedFCTransfer    int       `json:"reserved_fc_transfer"`
	ReservedFCProcessing  int       `json:"reserved_fc_processing"`
	ReservedCustomerOrder int       `json:"reserved_customer_order"`
	InboundWorking        int       `json:"inbound_working"`
	InboundShipped        int       `json:"inbound_shipped"`
	InboundReceived       int       `json:"inbound_received"`
	AWD                   int       `json:"awd"`
	InboundToAWD          int       `json:"inbound_to_awd"`
	TotalUnits            int       `json:"total_units"`
	SnapshotDate          time.Time `json:"snapshot_date"`
	Notes                 string    `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// InventoryRecordListResponse lista de registros reconciliados.
type InventoryRecordListResponse struct {
	Items []InventoryRecordResponse `json:"items"`
	Total int                       `json:"total"`
}

// UpdatesUploadResponse resumen de una carga del formato legado (CSV con
// encabezados). Filas sin asin o sku se saltan y quedan en Warnings.
type UpdatesUploadResponse struct {
	TotalRows int      `json:"total_rows"`
	Added     int      `json:"added"`
	Skipped   int      `json:"skipped"`
	Warnings  []string `json:"warnings,omitempty"`
}

// InventoryUpdateResponse salida de un snapshot del formato legado.
type InventoryUpdateResponse struct {
	ID             string    `json:"id"`
	ASIN           string    `json:"asin"`
	SKU            string    `json:"sku"`
	AvailableUnits int       `json:"available_units"`
	ReservedUnits  int       `json:"reserved_units"`
	InboundUnits   int       `json:"inbound_units"`
	Timestamp      time.Time `json:"timestamp"`
}

// InventoryUpdateListResponse lista de snapshots legados.
type InventoryUpdateListResponse struct {
	Items []InventoryUpdateResponse `json:"items"`
	Total int                       `json:"total"`
}
