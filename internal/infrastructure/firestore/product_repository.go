package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

const productsCollection = "products"

// ProductRepo implementación Firestore de repository.ProductRepository.
type ProductRepo struct {
	client *Client
}

// Verificación en compilación de que implementa la interfaz.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo construye el repositorio.
func NewProductRepo(client *Client) *ProductRepo {
	return &ProductRepo{client: client}
}

func (r *ProductRepo) col() *firestore.CollectionRef {
	return r.client.FS.Collection(productsCollection)
}

// Create persiste un producto nuevo y devuelve el ID del documento.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (string, error) {
	if product == nil {
		return "", errors.New("producto nil")
	}
	ref := r.col().NewDoc()
	if _, err := ref.Set(ctx, productToDoc(product)); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetByID obtiene un producto por ID de documento. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return docToProduct(snap), nil
}

// GetByASIN obtiene un producto por ASIN. Devuelve nil si no existe.
func (r *ProductRepo) GetByASIN(ctx context.Context, asin string) (*entity.Product, error) {
	it := r.col().Where("asin", "==", asin).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return docToProduct(doc), nil
}

// FetchAll carga el catálogo completo. El pipeline de reconciliación lo llama
// una vez por corrida para armar el snapshot en memoria.
func (r *ProductRepo) FetchAll(ctx context.Context) ([]*entity.Product, error) {
	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []*entity.Product
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, docToProduct(doc))
	}
}

// Update reemplaza el documento completo del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if product == nil || product.ID == "" {
		return errors.New("producto sin ID")
	}
	_, err := r.col().Doc(product.ID).Set(ctx, productToDoc(product))
	return err
}

// Delete elimina un producto por ID de documento.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

func productToDoc(p *entity.Product) map[string]any {
	return map[string]any{
		"asin":                  p.ASIN,
		"sku":                   p.SKU,
		"upc":                   p.UPC,
		"product":               p.ProductType,
		"material":              p.Material,
		"color":                 p.Color,
		"size":                  p.Size,
		"validColors":           p.ValidColors,
		"validSizes":            p.ValidSizes,
		"optimalUnitsPerCarton": p.OptimalUnitsPerCarton,
		"createdAt":             p.CreatedAt,
		"updatedAt":             p.UpdatedAt,
	}
}

func docToProduct(doc *firestore.DocumentSnapshot) *entity.Product {
	data := doc.Data()
	if data == nil {
		return &entity.Product{ID: doc.Ref.ID}
	}
	return &entity.Product{
		ID:                    doc.Ref.ID,
		ASIN:                  getStr(data, "asin"),
		SKU:                   getStr(data, "sku"),
		UPC:                   getStr(data, "upc"),
		ProductType:           getStr(data, "product"),
		Material:              getStr(data, "material"),
		Color:                 getStr(data, "color"),
		Size:                  getStr(data, "size"),
		ValidColors:           getStrSlice(data, "validColors"),
		ValidSizes:            getStrSlice(data, "validSizes"),
		OptimalUnitsPerCarton: getInt(data, "optimalUnitsPerCarton"),
		CreatedAt:             getTime(data, "createdAt"),
		UpdatedAt:             getTime(data, "updatedAt"),
	}
}
