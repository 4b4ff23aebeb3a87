package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/application/usecase"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

type fakeProductRepo struct {
	products []*entity.Product
	nextID   int
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) (string, error) {
	f.nextID++
	cp := *p
	cp.ID = "prod-" + p.ASIN
	f.products = append(f.products, &cp)
	return cp.ID, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByASIN(_ context.Context, asin string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ASIN == asin {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FetchAll(_ context.Context) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, in *entity.Product) error {
	for i, p := range f.products {
		if p.ID == in.ID {
			f.products[i] = in
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestProductUseCase_CreateRechazaASINDuplicado(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, testLogger())

	in := dto.CreateProductRequest{
		ASIN: "B0DUP00001", SKU: "SKU-1", ProductType: "Wool Runner", Size: "M9",
	}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// Mismo ASIN con otro SKU sigue siendo el mismo producto.
	in.SKU = "SKU-2"
	_, err = uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.products, 1)
}

func TestProductUseCase_CreateCamposRequeridos(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, testLogger())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		ASIN: "B0SINSIZE1", ProductType: "Wool Runner",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateParcial(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, testLogger())

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		ASIN: "B0UPDATE01", SKU: "SKU-V", ProductType: "Tree Dasher", Size: "M10", Color: "Navy",
	})
	require.NoError(t, err)

	nuevoSKU := "SKU-N"
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SKU: &nuevoSKU,
	})
	require.NoError(t, err)
	assert.Equal(t, "SKU-N", updated.SKU)
	assert.Equal(t, "Navy", updated.Color)        // no tocado
	assert.Equal(t, "B0UPDATE01", updated.ASIN)   // inmutable
}

func TestProductUseCase_BulkUpload(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "prod-B0EXISTE01", ASIN: "B0EXISTE01", SKU: "SKU-E", ProductType: "Wool Runner", Size: "M8"},
	}}
	uc := usecase.NewProductUseCase(repo, testLogger())

	csv := strings.Join([]string{
		"ASIN,SKU,UPC,Product,Material,Color,Size,Optimal Units Per Carton",
		"B0NUEVO001,SKU-1,123456,Tree Dasher,Tree,Black,M9,24",
		"B0EXISTE01,SKU-X,,Wool Runner,Wool,Grey,M8,24",   // ASIN ya en catálogo
		"B0NUEVO002,SKU-2,,Tree Dasher,Tree,White,,24",    // sin size
		"B0NUEVO001,SKU-3,,Tree Dasher,Tree,Blue,M10,24",  // duplicado dentro del archivo
		",SKU-4,,Tree Dasher,Tree,Blue,M10,24",            // sin asin
	}, "\n")

	resp, err := uc.BulkUpload(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalRows)
	assert.Equal(t, 1, resp.Added)
	assert.Equal(t, 4, resp.Skipped)
	assert.Len(t, resp.Warnings, 4)

	require.Len(t, repo.products, 2)
	nuevo := repo.products[1]
	assert.Equal(t, "B0NUEVO001", nuevo.ASIN)
	assert.Equal(t, "Tree Dasher", nuevo.ProductType)
	assert.Equal(t, 24, nuevo.OptimalUnitsPerCarton)
}

func TestProductUseCase_DeleteInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, testLogger())

	err := uc.Delete(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
