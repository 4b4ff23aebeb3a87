package dto

import "time"

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	ASIN                  string   `json:"asin" validate:"required,min=1,max=20"`
	SKU                   string   `json:"sku"`
	UPC                   string   `json:"upc"`
	ProductType           string   `json:"product" validate:"required"`
	Material              string   `json:"material"`
	Color                 string   `json:"color"`
	Size                  string   `json:"size" validate:"required"`
	ValidColors           []string `json:"valid_colors"`
	ValidSizes            []string `json:"valid_sizes"`
	OptimalUnitsPerCarton int      `json:"optimal_units_per_carton"`
}

// UpdateProductRequest entrada para actualizar un producto. El ASIN es
// inmutable una vez asignado y no aparece aquí.
type UpdateProductRequest struct {
	SKU                   *string  `json:"sku"`
	UPC                   *string  `json:"upc"`
	ProductType           *string  `json:"product"`
	Material              *string  `json:"material"`
	Color                 *string  `json:"color"`
	Size                  *string  `json:"size"`
	ValidColors           []string `json:"valid_colors"`
	ValidSizes            []string `json:"valid_sizes"`
	OptimalUnitsPerCarton *int     `json:"optimal_units_per_carton"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                    string    `json:"id"`
	ASIN                  string    `json:"asin"`
	SKU                   string    `json:"sku"`
	UPC                   string    `json:"upc"`
	ProductType           string    `json:"product"`
	Material              string    `json:"material"`
	Color                 string    `json:"color"`
	Size                  string    `json:"size"`
	ValidColors           []string  `json:"valid_colors,omitempty"`
	ValidSizes            []string  `json:"valid_sizes,omitempty"`
	OptimalUnitsPerCarton int       `json:"optimal_units_per_carton,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ProductListResponse lista de productos del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// BulkUploadResponse resumen de una carga masiva de catálogo por CSV.
// Las filas saltadas (duplicados, campos requeridos ausentes) quedan en
// Warnings; la carga nunca falla completa por filas individuales.
type BulkUploadResponse struct {
	TotalRows int      `json:"total_rows"`
	Added     int      `json:"added"`
	Skipped   int      `json:"skipped"`
	Warnings  []string `json:"warnings,omitempty"`
}
