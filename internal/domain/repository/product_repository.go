package repository

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// FetchAll existe porque el pipeline de reconciliación carga el catálogo
// completo una sola vez por corrida (snapshot), no una consulta por fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByASIN(ctx context.Context, asin string) (*entity.Product, error)
	FetchAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
