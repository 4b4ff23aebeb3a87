package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/reconcile"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD y carga masiva para el catálogo.
// El ASIN es la clave de negocio: dos productos con el mismo ASIN son el mismo
// producto, sin importar el SKU.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// Create crea un producto nuevo. Rechaza ASIN duplicado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.ASIN == "" || in.ProductType == "" || in.Size == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByASIN(ctx, in.ASIN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ASIN:                  in.ASIN,
		SKU:                   in.SKU,
		UPC:                   in.UPC,
		ProductType:           in.ProductType,
		Material:              in.Material,
		Color:                 in.Color,
		Size:                  in.Size,
		ValidColors:           in.ValidColors,
		ValidSizes:            in.ValidSizes,
		OptimalUnitsPerCarton: in.OptimalUnitsPerCarton,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID de documento.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El ASIN es inmutable y no se toca.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.UPC != nil {
		product.UPC = *in.UPC
	}
	if in.ProductType != nil {
		product.ProductType = *in.ProductType
	}
	if in.Material != nil {
		product.Material = *in.Material
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if len(in.ValidColors) > 0 {
		product.ValidColors = in.ValidColors
	}
	if len(in.ValidSizes) > 0 {
		product.ValidSizes = in.ValidSizes
	}
	if in.OptimalUnitsPerCarton != nil {
		product.OptimalUnitsPerCarton = *in.OptimalUnitsPerCarton
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por ID de documento.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// BulkUpload ingiere un CSV de catálogo con encabezados (asin, sku, upc,
// product, material, color, size, optimal units per carton). El ASIN manda
// para detectar duplicados: filas cuyo ASIN ya existe en el catálogo o ya
// apareció antes en el mismo archivo se saltan con warning. Filas sin product
// o sin size se saltan también; una fila mala nunca aborta la carga.
func (uc *ProductUseCase) BulkUpload(ctx context.Context, file io.Reader) (*dto.BulkUploadResponse, error) {
	rows, err := reconcile.ReadHeaderRows(file)
	if err != nil {
		return nil, fmt.Errorf("parsear CSV de catálogo: %w", err)
	}

	existing, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.ASIN] = true
	}

	resp := &dto.BulkUploadResponse{TotalRows: len(rows)}
	now := time.Now()

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		asin := row["asin"]
		if asin == "" {
			resp.Skipped++
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("fila %d: sin asin, se salta", i+1))
			continue
		}
		if seen[asin] {
			resp.Skipped++
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("fila %d: ASIN %s duplicado, se salta", i+1, asin))
			continue
		}
		if row["product"] == "" || row["size"] == "" {
			resp.Skipped++
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("fila %d (%s): product o size vacío, se salta", i+1, asin))
			continue
		}

		optimal, _ := strconv.Atoi(row["optimal units per carton"])
		product := &entity.Product{
			ASIN:                  asin,
			SKU:                   row["sku"],
			UPC:                   row["upc"],
			ProductType:           row["product"],
			Material:              row["material"],
			Color:                 row["color"],
			Size:                  row["size"],
			OptimalUnitsPerCarton: optimal,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if _, err := uc.repo.Create(ctx, product); err != nil {
			uc.log.Warn().Err(err).Str("asin", asin).Msg("fallo al escribir producto de carga masiva")
			resp.Skipped++
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("fila %d (%s): %v", i+1, asin, err))
			continue
		}
		seen[asin] = true
		resp.Added++
	}

	return resp, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                    p.ID,
		ASIN:                  p.ASIN,
		SKU:                   p.SKU,
		UPC:                   p.UPC,
		ProductType:           p.ProductType,
		Material:              p.Material,
		Color:                 p.Color,
		Size:                  p.Size,
		ValidColors:           p.ValidColors,
		ValidSizes:            p.ValidSizes,
		OptimalUnitsPerCarton: p.OptimalUnitsPerCarton,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
