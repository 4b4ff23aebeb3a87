package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// CatalogSnapshot es la foto en memoria del catálogo para una corrida del
// pipeline. Se construye con un único FetchAll por corrida (no una consulta
// por fila) y se pasa explícitamente al Resolver: nunca es un cache a nivel
// de módulo.
type CatalogSnapshot struct {
	byASIN map[string]*entity.Product
}

// NewCatalogSnapshot indexa los productos por ASIN.
func NewCatalogSnapshot(products []*entity.Product) *CatalogSnapshot {
	byASIN := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		if p.ASIN == "" {
			continue
		}
		byASIN[p.ASIN] = p
	}
	return &CatalogSnapshot{byASIN: byASIN}
}

// Get devuelve la entrada de catálogo para un ASIN, si existe.
func (s *CatalogSnapshot) Get(asin string) (*entity.Product, bool) {
	p, ok := s.byASIN[asin]
	return p, ok
}

// SKUFor devuelve el SKU en archivo para un ASIN, o "" si no hay entrada.
func (s *CatalogSnapshot) SKUFor(asin string) string {
	if p, ok := s.byASIN[asin]; ok {
		return p.SKU
	}
	return ""
}

func (s *CatalogSnapshot) put(p *entity.Product) {
	s.byASIN[p.ASIN] = p
}

// CatalogResolver resuelve cada ASIN de las filas contra el snapshot del
// catálogo y crea entradas placeholder para los desconocidos.
type CatalogResolver struct {
	products repository.ProductRepository
	log      *logger.Logger
}

// NewCatalogResolver construye el resolver.
func NewCatalogResolver(products repository.ProductRepository, log *logger.Logger) *CatalogResolver {
	return &CatalogResolver{products: products, log: log}
}

// Resolve devuelve la entrada existente o sintetiza un placeholder con
// atributos "Unknown" y el SKU de la fila que lo disparó. El snapshot se
// actualiza de inmediato: filas siguientes de la misma corrida con el mismo
// ASIN desconocido no crean duplicados. Si la escritura de catálogo falla se
// registra y la corrida continúa con la entrada en memoria (best effort, no
// transaccional). Devuelve created=true solo cuando se sintetizó una entrada.
func (r *CatalogResolver) Resolve(ctx context.Context, snap *CatalogSnapshot, asin, sku string, now time.Time) (*entity.Product, bool) {
	if p, ok := snap.Get(asin); ok {
		return p, false
	}

	p := entity.NewPlaceholder(asin, sku, now)
	id, err := r.products.Create(ctx, p)
	if err != nil {
		r.log.Warn().Err(err).Str("asin", asin).Msg("crear producto placeholder falló; se continúa con la entrada en memoria")
	} else {
		p.ID = id
	}
	snap.put(p)
	return p, true
}
