package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para órdenes de compra y sus embarques.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea una orden de compra. Los embarques sin ShipmentID reciben uno.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.OrderID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		OrderID:               in.OrderID,
		OrderDate:             in.OrderDate,
		FinalCountDate:        in.FinalCountDate,
		FinishManufactureDate: in.FinishManufactureDate,
		LeavePortDate:         in.LeavePortDate,
		ArrivePortDate:        in.ArrivePortDate,
		DeliveredToAmazonDate: in.DeliveredToAmazonDate,
		AvailableInAmazonDate: in.AvailableInAmazonDate,
		CoverageDate:          in.CoverageDate,
		Contract:              in.Contract,
		Deposit:               in.Deposit,
		TotalCost:             in.TotalCost,
		Items:                 toOrderItems(in.Items),
		Shipments:             toShipments(in.Shipments),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	id, err := uc.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID de documento.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// Update actualiza una orden. Items y Shipments se reemplazan completos
// cuando vienen en la petición; las fechas solo si están presentes.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.OrderDate != nil {
		order.OrderDate = in.OrderDate
	}
	if in.FinalCountDate != nil {
		order.FinalCountDate = in.FinalCountDate
	}
	if in.FinishManufactureDate != nil {
		order.FinishManufactureDate = in.FinishManufactureDate
	}
	if in.LeavePortDate != nil {
		order.LeavePortDate = in.LeavePortDate
	}
	if in.ArrivePortDate != nil {
		order.ArrivePortDate = in.ArrivePortDate
	}
	if in.DeliveredToAmazonDate != nil {
		order.DeliveredToAmazonDate = in.DeliveredToAmazonDate
	}
	if in.AvailableInAmazonDate != nil {
		order.AvailableInAmazonDate = in.AvailableInAmazonDate
	}
	if in.CoverageDate != nil {
		order.CoverageDate = in.CoverageDate
	}
	if in.Contract != nil {
		order.Contract = *in.Contract
	}
	if in.Deposit != nil {
		order.Deposit = *in.Deposit
	}
	if in.TotalCost != nil {
		order.TotalCost = *in.TotalCost
	}
	if in.Items != nil {
		order.Items = toOrderItems(in.Items)
	}
	if in.Shipments != nil {
		order.Shipments = toShipments(in.Shipments)
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista todas las órdenes.
func (uc *OrderUseCase) List(ctx context.Context) (*dto.OrderListResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una orden por ID de documento.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toOrderItems(in []dto.OrderItemDTO) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.OrderItem{
			SKU:              it.SKU,
			TotalUnitCount:   it.TotalUnitCount,
			TotalCartonCount: it.TotalCartonCount,
		})
	}
	return out
}

func toShipments(in []dto.ShipmentDTO) []entity.Shipment {
	out := make([]entity.Shipment, 0, len(in))
	for _, s := range in {
		shipmentID := s.ShipmentID
		if shipmentID == "" {
			shipmentID = uuid.New().String()
		}
		out = append(out, entity.Shipment{
			ShipmentID:       shipmentID,
			Destination:      s.Destination,
			Cartons:          s.Cartons,
			CBM:              s.CBM,
			Weight:           s.Weight,
			AmazonShipmentID: s.AmazonShipmentID,
			AmazonReference:  s.AmazonReference,
			GiHBL:            s.GiHBL,
			GiQuote:          s.GiQuote,
			Insurance:        s.Insurance,
			Items:            toShipmentItems(s.Items),
			Boats:            s.Boats,
			DepartureDate:    s.DepartureDate,
			ArrivalDate:      s.ArrivalDate,
		})
	}
	return out
}

func toShipmentItems(in []dto.ShipmentItemDTO) []entity.ShipmentItem {
	out := make([]entity.ShipmentItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.ShipmentItem{SKU: it.SKU, UnitCount: it.UnitCount})
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{
			SKU:              it.SKU,
			TotalUnitCount:   it.TotalUnitCount,
			TotalCartonCount: it.TotalCartonCount,
		})
	}
	shipments := make([]dto.ShipmentDTO, 0, len(o.Shipments))
	for _, s := range o.Shipments {
		sItems := make([]dto.ShipmentItemDTO, 0, len(s.Items))
		for _, it := range s.Items {
			sItems = append(sItems, dto.ShipmentItemDTO{SKU: it.SKU, UnitCount: it.UnitCount})
		}
		shipments = append(shipments, dto.ShipmentDTO{
			ShipmentID:       s.ShipmentID,
			Destination:      s.Destination,
			Cartons:          s.Cartons,
			CBM:              s.CBM,
			Weight:           s.Weight,
			AmazonShipmentID: s.AmazonShipmentID,
			AmazonReference:  s.AmazonReference,
			GiHBL:            s.GiHBL,
			GiQuote:          s.GiQuote,
			Insurance:        s.Insurance,
			Items:            sItems,
			Boats:            s.Boats,
			DepartureDate:    s.DepartureDate,
			ArrivalDate:      s.ArrivalDate,
		})
	}
	return &dto.OrderResponse{
		ID:                    o.ID,
		OrderID:               o.OrderID,
		OrderDate:             o.OrderDate,
		FinalCountDate:        o.FinalCountDate,
		FinishManufactureDate: o.FinishManufactureDate,
		LeavePortDate:         o.LeavePortDate,
		ArrivePortDate:        o.ArrivePortDate,
		DeliveredToAmazonDate: o.DeliveredToAmazonDate,
		AvailableInAmazonDate: o.AvailableInAmazonDate,
		CoverageDate:          o.CoverageDate,
		Contract:              o.Contract,
		Deposit:               o.Deposit,
		TotalCost:             o.TotalCost,
		Items:                 items,
		Shipments:             shipments,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}
