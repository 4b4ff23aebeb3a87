package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO unidades y cartones planificados de un SKU en la orden.
type OrderItemDTO struct {
	SKU              string `json:"sku"`
	TotalUnitCount   int    `json:"total_unit_count"`
	TotalCartonCount int    `json:"total_carton_count"`
}

// ShipmentItemDTO unidades de un SKU en un embarque.
type ShipmentItemDTO struct {
	SKU       string `json:"sku"`
	UnitCount int    `json:"unit_count"`
}

// ShipmentDTO un embarque de la orden.
type ShipmentDTO struct {
	ShipmentID       string            `json:"shipment_id"`
	Destination      string            `json:"destination"`
	Cartons          int               `json:"cartons"`
	CBM              float64           `json:"cbm"`
	Weight           float64           `json:"weight"`
	AmazonShipmentID string            `json:"amazon_shipment_id"`
	AmazonReference  string            `json:"amazon_reference"`
	GiHBL            string            `json:"gi_hbl"`
	GiQuote          string            `json:"gi_quote"`
	Insurance        float64           `json:"insurance"`
	Items            []ShipmentItemDTO `json:"items"`
	Boats            string            `json:"boats"`
	DepartureDate    *time.Time        `json:"departure_date"`
	ArrivalDate      *time.Time        `json:"arrival_date"`
}

// CreateOrderRequest entrada para crear una orden de compra.
type CreateOrderRequest struct {
	OrderID               string          `json:"order_id" validate:"required"`
	OrderDate             *time.Time      `json:"order_date"`
	FinalCountDate        *time.Time      `json:"final_count_date"`
	FinishManufactureDate *time.Time      `json:"finish_manufacture_date"`
	LeavePortDate         *time.Time      `json:"leave_port_date"`
	ArrivePortDate        *time.Time      `json:"arrive_port_date"`
	DeliveredToAmazonDate *time.Time      `json:"delivered_to_amazon_date"`
	AvailableInAmazonDate *time.Time      `json:"available_in_amazon_date"`
	CoverageDate          *time.Time      `json:"coverage_date"`
	Contract              string          `json:"contract"`
	Deposit               decimal.Decimal `json:"deposit"`
	TotalCost             decimal.Decimal `json:"total_cost"`
	Items                 []OrderItemDTO  `json:"items"`
	Shipments             []ShipmentDTO   `json:"shipments"`
}

// UpdateOrderRequest entrada para actualizar una orden (reemplazo de campos
// presentes; Items y Shipments se reemplazan completos si vienen).
type UpdateOrderRequest struct {
	OrderDate             *time.Time       `json:"order_date"`
	FinalCountDate        *time.Time       `json:"final_count_date"`
	FinishManufactureDate *time.Time       `json:"finish_manufacture_date"`
	LeavePortDate         *time.Time       `json:"leave_port_date"`
	ArrivePortDate        *time.Time       `json:"arrive_port_date"`
	DeliveredToAmazonDate *time.Time       `json:"delivered_to_amazon_date"`
	AvailableInAmazonDate *time.Time       `json:"available_in_amazon_date"`
	CoverageDate          *time.Time       `json:"coverage_date"`
	Contract              *string          `json:"contract"`
	Deposit               *decimal.Decimal `json:"deposit"`
	TotalCost             *decimal.Decimal `json:"total_cost"`
	Items                 []OrderItemDTO   `json:"items"`
	Shipments             []ShipmentDTO    `json:"shipments"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID                    string          `json:"id"`
	OrderID               string          `json:"order_id"`
	OrderDate             *time.Time      `json:"order_date"`
	FinalCountDate        *time.Time      `json:"final_count_date"`
	FinishManufactureDate *time.Time      `json:"finish_manufacture_date"`
	LeavePortDate         *time.Time      `json:"leave_port_date"`
	ArrivePortDate        *time.Time      `json:"arrive_port_date"`
	DeliveredToAmazonDate *time.Time      `json:"delivered_to_amazon_date"`
	AvailableInAmazonDate *time.Time      `json:"available_in_amazon_date"`
	CoverageDate          *time.Time      `json:"coverage_date"`
	Contract              string          `json:"contract"`
	Deposit               decimal.Decimal `json:"deposit"`
	TotalCost             decimal.Decimal `json:"total_cost"`
	Items                 []OrderItemDTO  `json:"items"`
	Shipments             []ShipmentDTO   `json:"shipments"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// OrderListResponse lista de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
