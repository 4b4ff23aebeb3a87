package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem totaliza unidades y cartones de un SKU dentro de la orden.
type OrderItem struct {
	SKU              string
	TotalUnitCount   int
	TotalCartonCount int
}

// ShipmentItem unidades de un SKU dentro de un embarque.
type ShipmentItem struct {
	SKU       string
	UnitCount int
}

// Shipment es un embarque de una orden de compra: contenedores, volumen,
// referencias de Amazon y del forwarder, y fechas de tránsito.
type Shipment struct {
	ShipmentID       string
	Destination      string
	Cartons          int
	CBM              float64
	Weight           float64
	AmazonShipmentID string
	AmazonReference  string
	GiHBL            string
	GiQuote          string
	Insurance        float64
	Items            []ShipmentItem
	Boats            string
	DepartureDate    *time.Time
	ArrivalDate      *time.Time
}

// Order es una orden de compra al fabricante con su ciclo de vida logístico
// completo (producción → puerto → Amazon) y sus embarques.
type Order struct {
	ID      string // ID del documento Firestore
	OrderID string // identificador de negocio (ej. PO-2024-001)

	OrderDate             *time.Time
	FinalCountDate        *time.Time
	FinishManufactureDate *time.Time
	LeavePortDate         *time.Time
	ArrivePortDate        *time.Time
	DeliveredToAmazonDate *time.Time
	AvailableInAmazonDate *time.Time
	CoverageDate          *time.Time

	Contract  string
	Deposit   decimal.Decimal
	TotalCost decimal.Decimal

	Items     []OrderItem
	Shipments []Shipment

	CreatedAt time.Time
	UpdatedAt time.Time
}
