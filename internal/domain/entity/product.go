package entity

import "time"

// AttrUnknown es el valor centinela para atributos descriptivos que aún no se conocen.
// El Resolver crea productos placeholder con este valor; se corrigen luego desde el catálogo.
const AttrUnknown = "Unknown"

// Product representa una variante vendible del catálogo.
// El ASIN es la clave externa de marketplace y la clave de join del pipeline de
// reconciliación; es inmutable una vez asignada. El SKU es el código interno
// secundario y no está garantizado único a lo largo del histórico.
type Product struct {
	ID                    string // ID del documento Firestore
	ASIN                  string
	SKU                   string
	UPC                   string
	ProductType           string // nombre descriptivo del producto
	Material              string
	Color                 string
	Size                  string
	ValidColors           []string
	ValidSizes            []string
	OptimalUnitsPerCarton int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewPlaceholder construye la entrada mínima de catálogo que el Resolver crea
// cuando una fila de inventario referencia un ASIN desconocido.
func NewPlaceholder(asin, sku string, now time.Time) *Product {
	return &Product{
		ASIN:        asin,
		SKU:         sku,
		ProductType: AttrUnknown,
		Material:    AttrUnknown,
		Color:       AttrUnknown,
		Size:        AttrUnknown,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
