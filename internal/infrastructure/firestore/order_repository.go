package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

const ordersCollection = "orders"

// OrderRepo implementación Firestore de repository.OrderRepository.
// Los montos decimal se persisten como string para no perder precisión en el
// viaje por float64.
type OrderRepo struct {
	client *Client
}

var _ repository.OrderRepository = (*OrderRepo)(nil)

// NewOrderRepo construye el repositorio.
func NewOrderRepo(client *Client) *OrderRepo {
	return &OrderRepo{client: client}
}

func (r *OrderRepo) col() *firestore.CollectionRef {
	return r.client.FS.Collection(ordersCollection)
}

// Create persiste una orden nueva y devuelve el ID del documento.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) (string, error) {
	if order == nil {
		return "", errors.New("orden nil")
	}
	ref := r.col().NewDoc()
	if _, err := ref.Set(ctx, orderToDoc(order)); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetByID obtiene una orden por ID de documento. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return docToOrder(snap), nil
}

// Update reemplaza el documento completo de la orden.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("orden sin ID")
	}
	_, err := r.col().Doc(order.ID).Set(ctx, orderToDoc(order))
	return err
}

// Delete elimina una orden por ID de documento.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

// ListAll lista todas las órdenes.
func (r *OrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []*entity.Order
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, docToOrder(doc))
	}
}

func orderToDoc(o *entity.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"sku":              it.SKU,
			"totalUnitCount":   it.TotalUnitCount,
			"totalCartonCount": it.TotalCartonCount,
		})
	}
	shipments := make([]map[string]any, 0, len(o.Shipments))
	for _, s := range o.Shipments {
		sItems := make([]map[string]any, 0, len(s.Items))
		for _, it := range s.Items {
			sItems = append(sItems, map[string]any{
				"sku":       it.SKU,
				"unitCount": it.UnitCount,
			})
		}
		shipments = append(shipments, map[string]any{
			"shipmentId":       s.ShipmentID,
			"destination":      s.Destination,
			"cartons":          s.Cartons,
			"cbm":              s.CBM,
			"weight":           s.Weight,
			"amazonShipmentId": s.AmazonShipmentID,
			"amazonReference":  s.AmazonReference,
			"giHbl":            s.GiHBL,
			"giQuote":          s.GiQuote,
			"insurance":        s.Insurance,
			"items":            sItems,
			"boats":            s.Boats,
			"departureDate":    timeOrNil(s.DepartureDate),
			"arrivalDate":      timeOrNil(s.ArrivalDate),
		})
	}
	return map[string]any{
		"orderId":               o.OrderID,
		"orderDate":             timeOrNil(o.OrderDate),
		"finalCountDate":        timeOrNil(o.FinalCountDate),
		"finishManufactureDate": timeOrNil(o.FinishManufactureDate),
		"leavePortDate":         timeOrNil(o.LeavePortDate),
		"arrivePortDate":        timeOrNil(o.ArrivePortDate),
		"deliveredToAmazonDate": timeOrNil(o.DeliveredToAmazonDate),
		"availableInAmazonDate": timeOrNil(o.AvailableInAmazonDate),
		"coverageDate":          timeOrNil(o.CoverageDate),
		"contract":              o.Contract,
		"deposit":               o.Deposit.String(),
		"totalCost":             o.TotalCost.String(),
		"items":                 items,
		"shipments":             shipments,
		"createdAt":             o.CreatedAt,
		"updatedAt":             o.UpdatedAt,
	}
}

func docToOrder(doc *firestore.DocumentSnapshot) *entity.Order {
	data := doc.Data()
	if data == nil {
		return &entity.Order{ID: doc.Ref.ID}
	}

	items := make([]entity.OrderItem, 0)
	for _, m := range getMapSlice(data, "items") {
		items = append(items, entity.OrderItem{
			SKU:              getStr(m, "sku"),
			TotalUnitCount:   getInt(m, "totalUnitCount"),
			TotalCartonCount: getInt(m, "totalCartonCount"),
		})
	}

	shipments := make([]entity.Shipment, 0)
	for _, m := range getMapSlice(data, "shipments") {
		sItems := make([]entity.ShipmentItem, 0)
		for _, im := range getMapSlice(m, "items") {
			sItems = append(sItems, entity.ShipmentItem{
				SKU:       getStr(im, "sku"),
				UnitCount: getInt(im, "unitCount"),
			})
		}
		shipments = append(shipments, entity.Shipment{
			ShipmentID:       getStr(m, "shipmentId"),
			Destination:      getStr(m, "destination"),
			Cartons:          getInt(m, "cartons"),
			CBM:              getFloat(m, "cbm"),
			Weight:           getFloat(m, "weight"),
			AmazonShipmentID: getStr(m, "amazonShipmentId"),
			AmazonReference:  getStr(m, "amazonReference"),
			GiHBL:            getStr(m, "giHbl"),
			GiQuote:          getStr(m, "giQuote"),
			Insurance:        getFloat(m, "insurance"),
			Items:            sItems,
			Boats:            getStr(m, "boats"),
			DepartureDate:    getTimePtr(m, "departureDate"),
			ArrivalDate:      getTimePtr(m, "arrivalDate"),
		})
	}

	return &entity.Order{
		ID:                    doc.Ref.ID,
		OrderID:               getStr(data, "orderId"),
		OrderDate:             getTimePtr(data, "orderDate"),
		FinalCountDate:        getTimePtr(data, "finalCountDate"),
		FinishManufactureDate: getTimePtr(data, "finishManufactureDate"),
		LeavePortDate:         getTimePtr(data, "leavePortDate"),
		ArrivePortDate:        getTimePtr(data, "arrivePortDate"),
		DeliveredToAmazonDate: getTimePtr(data, "deliveredToAmazonDate"),
		AvailableInAmazonDate: getTimePtr(data, "availableInAmazonDate"),
		CoverageDate:          getTimePtr(data, "coverageDate"),
		Contract:              getStr(data, "contract"),
		Deposit:               decimalFromDoc(data, "deposit"),
		TotalCost:             decimalFromDoc(data, "totalCost"),
		Items:                 items,
		Shipments:             shipments,
		CreatedAt:             getTime(data, "createdAt"),
		UpdatedAt:             getTime(data, "updatedAt"),
	}
}

// decimalFromDoc lee un monto: documentos nuevos lo guardan como string,
// documentos históricos como número.
func decimalFromDoc(data map[string]any, key string) decimal.Decimal {
	switch v := data[key].(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}
