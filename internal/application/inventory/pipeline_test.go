package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/internal/application/inventory"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/reconcile"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. Permiten inyectar fallas
// por ASIN para verificar el aislamiento de fallos del despacho.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products  []*entity.Product
	creates   int
	createErr error
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) (string, error) {
	f.creates++
	if f.createErr != nil {
		return "", f.createErr
	}
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
	return nil, domain.ErrNotFound
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

func (f *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(_ context.Context, _ string) error          { return nil }

type fakeRecordRepo struct {
	records  []*entity.InventoryRecord
	nextID   int
	failASIN map[string]bool // ASIN cuya escritura debe fallar
}

func (f *fakeRecordRepo) Create(_ context.Context, r *entity.InventoryRecord) (string, error) {
	if f.failASIN[r.ASIN] {
		return "", errors.New("escritura simulada fallida")
	}
	f.nextID++
	cp := *r
	cp.ID = "rec-" + r.ASIN
	f.records = append(f.records, &cp)
	return cp.ID, nil
}

func (f *fakeRecordRepo) FindByASIN(_ context.Context, asin string) (*entity.InventoryRecord, error) {
	for _, r := range f.records {
		if r.ASIN == asin {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) ApplyPatch(_ context.Context, id string, patch *entity.RecordPatch) error {
	for _, r := range f.records {
		if r.ID != id {
			continue
		}
		if f.failASIN[r.ASIN] {
			return errors.New("escritura simulada fallida")
		}
		patch.ApplyTo(r)
		r.TotalUnits = r.ComputeTotalUnits()
		r.UpdatedAt = time.Now()
		return nil
	}
	return domain.ErrNotFound
}

func (f *fakeRecordRepo) ListAll(_ context.Context) ([]*entity.InventoryRecord, error) {
	return f.records, nil
}

func (f *fakeRecordRepo) byASIN(asin string) *entity.InventoryRecord {
	for _, r := range f.records {
		if r.ASIN == asin {
			return r
		}
	}
	return nil
}

type fakeUpdateRepo struct {
	updates   []*entity.InventoryUpdate
	createErr error
}

func (f *fakeUpdateRepo) Create(_ context.Context, u *entity.InventoryUpdate) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	cp := *u
	cp.ID = "upd-" + u.ASIN
	f.updates = append(f.updates, &cp)
	return cp.ID, nil
}

func (f *fakeUpdateRepo) ListAll(_ context.Context) ([]*entity.InventoryUpdate, error) {
	return f.updates, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// Reportes sintéticos con el layout posicional real (banner + encabezado + datos).

func fbaLine(asin, sku, available, resTransfer, resProcessing, resCustomer, inbWorking, inbShipped, inbReceived string) string {
	rec := make([]string, 96)
	rec[3] = asin
	rec[1] = sku
	rec[6] = available
	rec[93] = resTransfer
	rec[94] = resProcessing
	rec[95] = resCustomer
	rec[89] = inbWorking
	rec[90] = inbShipped
	rec[91] = inbReceived
	return strings.Join(rec, ",")
}

func awdLine(asin, sku, inboundToAwd, available string) string {
	rec := make([]string, 12)
	rec[3] = asin
	rec[1] = sku
	rec[4] = inboundToAwd
	rec[6] = available
	return strings.Join(rec, ",")
}

func fbaReport(dataLines ...string) string {
	lines := []string{
		"FBA Manage Inventory Report - generated 2025-01-15",
		fbaLine("asin", "sku", "available", "t", "p", "c", "w", "s", "r"),
	}
	lines = append(lines, dataLines...)
	return strings.Join(lines, "\n")
}

func awdReport(dataLines ...string) string {
	lines := []string{
		"AWD Inventory Report - generated 2025-01-15",
		awdLine("asin", "sku", "inbound_to_awd", "awd"),
	}
	lines = append(lines, dataLines...)
	return strings.Join(lines, "\n")
}

// ──────────────────────────────────────────────────────────────────────────────
// CatalogResolver
// ──────────────────────────────────────────────────────────────────────────────

func TestResolver_TresFilasMismoASINUnSoloPlaceholder(t *testing.T) {
	repo := &fakeProductRepo{}
	r := inventory.NewCatalogResolver(repo, testLogger())
	snap := inventory.NewCatalogSnapshot(nil)
	now := time.Now()

	_, created := r.Resolve(context.Background(), snap, "B0NUEVO001", "SKU-N1", now)
	assert.True(t, created)
	_, created = r.Resolve(context.Background(), snap, "B0NUEVO001", "SKU-N1", now)
	assert.False(t, created)
	_, created = r.Resolve(context.Background(), snap, "B0NUEVO001", "", now)
	assert.False(t, created)

	// El snapshot se actualiza de inmediato: una sola escritura de catálogo.
	assert.Equal(t, 1, repo.creates)
	require.Len(t, repo.products, 1)
	p := repo.products[0]
	assert.Equal(t, "SKU-N1", p.SKU)
	assert.Equal(t, entity.AttrUnknown, p.ProductType)
	assert.Equal(t, entity.AttrUnknown, p.Color)
}

func TestResolver_ASINConocidoNoCrea(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "prod-1", ASIN: "B0CONOCIDO", SKU: "SKU-C"},
	}}
	r := inventory.NewCatalogResolver(repo, testLogger())
	snap := inventory.NewCatalogSnapshot(repo.products)

	p, created := r.Resolve(context.Background(), snap, "B0CONOCIDO", "SKU-OTRO", time.Now())
	assert.False(t, created)
	assert.Equal(t, "SKU-C", p.SKU)
	assert.Zero(t, repo.creates)
}

func TestResolver_FallaDeEscrituraContinuaEnMemoria(t *testing.T) {
	repo := &fakeProductRepo{createErr: errors.New("catálogo caído")}
	r := inventory.NewCatalogResolver(repo, testLogger())
	snap := inventory.NewCatalogSnapshot(nil)

	p, created := r.Resolve(context.Background(), snap, "B0FALLA001", "SKU-F", time.Now())
	assert.True(t, created)
	require.NotNil(t, p)
	assert.Empty(t, p.ID) // sin persistir, pero utilizable en memoria

	// La corrida sigue y la entrada en memoria evita reintentos de escritura.
	_, created = r.Resolve(context.Background(), snap, "B0FALLA001", "SKU-F", time.Now())
	assert.False(t, created)
	assert.Equal(t, 1, repo.creates)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpsertDispatcher
// ──────────────────────────────────────────────────────────────────────────────

func mergedFBA(asin, sku string, available int) *reconcile.MergedRecord {
	m := &reconcile.MergedRecord{SeenFBA: true}
	m.Record.ASIN = asin
	m.Record.SKU = sku
	m.Record.FBA = available
	return m
}

func TestDispatcher_CreaCuandoNoExiste(t *testing.T) {
	records := &fakeRecordRepo{}
	d := inventory.NewUpsertDispatcher(records, testLogger())
	snap := inventory.NewCatalogSnapshot(nil)
	snapDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	res, err := d.Dispatch(context.Background(),
		[]*reconcile.MergedRecord{mergedFBA("B0CREAR001", "SKU-1", 100)},
		snap, snapDate)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Zero(t, res.Updated)

	rec := records.byASIN("B0CREAR001")
	require.NotNil(t, rec)
	assert.Equal(t, 100, rec.FBA)
	assert.Equal(t, 100, rec.TotalUnits)
	assert.Equal(t, snapDate, rec.SnapshotDate)
}

func TestDispatcher_ActualizaPreservandoElOtroFormato(t *testing.T) {
	// Registro existente con datos AWD de una corrida anterior.
	records := &fakeRecordRepo{records: []*entity.InventoryRecord{{
		ID: "rec-B0MIX00001", ASIN: "B0MIX00001", SKU: "SKU-VIEJO",
		AWD: 40, InboundToAWD: 5, TotalUnits: 45,
	}}}
	d := inventory.NewUpsertDispatcher(records, testLogger())
	snap := inventory.NewCatalogSnapshot(nil)

	res, err := d.Dispatch(context.Background(),
		[]*reconcile.MergedRecord{mergedFBA("B0MIX00001", "SKU-NUEVO", 100)},
		snap, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	rec := records.byASIN("B0MIX00001")
	assert.Equal(t, 100, rec.FBA)
	assert.Equal(t, 40, rec.AWD) // intacto: la corrida solo trajo FBA
	assert.Equal(t, 5, rec.InboundToAWD)
	assert.Equal(t, "SKU-NUEVO", rec.SKU)
	assert.Equal(t, 145, rec.TotalUnits) // recalculado desde la unión
}

func TestDispatcher_FallaParcialNoAbortaElBatch(t *testing.T) {
	records := &fakeRecordRepo{failASIN: map[string]bool{"B0FALLA001": true}}
	d := inventory.NewUpsertDispatcher(records, testLogger())
	snap := inventory.NewCatalogSnapshot(nil)

	res, err := d.Dispatch(context.Background(), []*reconcile.MergedRecord{
		mergedFBA("B0OK000001", "SKU-1", 10),
		mergedFBA("B0FALLA001", "SKU-2", 20),
		mergedFBA("B0OK000002", "SKU-3", 30),
	}, snap, time.Now())
	require.NoError(t, err) // falla parcial no es error de la corrida
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Failures)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "B0FALLA001")

	assert.NotNil(t, records.byASIN("B0OK000001"))
	assert.NotNil(t, records.byASIN("B0OK000002"))
	assert.Nil(t, records.byASIN("B0FALLA001"))
}

func TestDispatcher_SKUMarcadorCuandoNadieAporta(t *testing.T) {
	records := &fakeRecordRepo{}
	d := inventory.NewUpsertDispatcher(records, testLogger())
	snap := inventory.NewCatalogSnapshot(nil)

	_, err := d.Dispatch(context.Background(),
		[]*reconcile.MergedRecord{mergedFBA("B0SINSKU01", "", 10)},
		snap, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.UnknownSKU, records.byASIN("B0SINSKU01").SKU)
}

func TestDispatcher_ContextoCanceladoDetieneEntreEscrituras(t *testing.T) {
	records := &fakeRecordRepo{}
	d := inventory.NewUpsertDispatcher(records, testLogger())
	snap := inventory.NewCatalogSnapshot(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := d.Dispatch(ctx,
		[]*reconcile.MergedRecord{mergedFBA("B0CANCEL01", "SKU-1", 10)},
		snap, time.Now())
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Created)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReconcileUseCase de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcileUseCase_EscenarioFBAMasAWD(t *testing.T) {
	products := &fakeProductRepo{}
	records := &fakeRecordRepo{}
	uc := inventory.NewReconcileUseCase(products, records, testLogger())

	fba := fbaReport(fbaLine("B0ESCENARI", "SKU-E", "100", "0", "0", "0", "0", "10", "0"))
	awd := awdReport(awdLine("B0ESCENARI", "SKU-E", "2", "5"))

	summary, err := uc.Run(context.Background(),
		strings.NewReader(fba), strings.NewReader(awd), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FBARows)
	assert.Equal(t, 1, summary.AWDRows)
	assert.Equal(t, 1, summary.RecordsCreated)
	assert.Equal(t, 1, summary.ProductsAdded) // placeholder para el ASIN nuevo
	assert.Zero(t, summary.WriteFailures)

	rec := records.byASIN("B0ESCENARI")
	require.NotNil(t, rec)
	assert.Equal(t, 100, rec.FBA)
	assert.Equal(t, 10, rec.InboundShipped)
	assert.Equal(t, 5, rec.AWD)
	assert.Equal(t, 2, rec.InboundToAWD)
	assert.Equal(t, 117, rec.TotalUnits)
}

func TestReconcileUseCase_ReporteFaltanteRechazaAntesDeProcesar(t *testing.T) {
	products := &fakeProductRepo{}
	records := &fakeRecordRepo{}
	uc := inventory.NewReconcileUseCase(products, records, testLogger())

	_, err := uc.Run(context.Background(), strings.NewReader(fbaReport()), nil, time.Now())
	require.ErrorIs(t, err, domain.ErrMissingReport)
	assert.Empty(t, records.records)
	assert.Zero(t, products.creates)
}

func TestReconcileUseCase_SegundaCorridaActualizaNoDuplica(t *testing.T) {
	products := &fakeProductRepo{}
	records := &fakeRecordRepo{}
	uc := inventory.NewReconcileUseCase(products, records, testLogger())

	fba := fbaReport(fbaLine("B0REPETIDO", "SKU-R", "100", "0", "0", "0", "0", "0", "0"))
	awd := awdReport(awdLine("B0REPETIDO", "SKU-R", "0", "5"))

	_, err := uc.Run(context.Background(),
		strings.NewReader(fba), strings.NewReader(awd), time.Now())
	require.NoError(t, err)

	fba2 := fbaReport(fbaLine("B0REPETIDO", "SKU-R", "80", "0", "0", "0", "0", "0", "0"))
	awd2 := awdReport(awdLine("B0REPETIDO", "SKU-R", "0", "7"))

	summary, err := uc.Run(context.Background(),
		strings.NewReader(fba2), strings.NewReader(awd2), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RecordsUpdated)
	assert.Zero(t, summary.RecordsCreated)
	assert.Zero(t, summary.ProductsAdded) // el placeholder de la primera corrida ya existe

	require.Len(t, records.records, 1)
	rec := records.byASIN("B0REPETIDO")
	// Totales re-derivados desde cero, no acumulados sobre la corrida anterior.
	assert.Equal(t, 80, rec.FBA)
	assert.Equal(t, 7, rec.AWD)
	assert.Equal(t, 87, rec.TotalUnits)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatesUseCase (formato legado)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatesUseCase_CargaLegada(t *testing.T) {
	repo := &fakeUpdateRepo{}
	uc := inventory.NewUpdatesUseCase(repo, testLogger())

	csv := strings.Join([]string{
		"ASIN,SKU,AvailableUnits,ReservedUnits,InboundUnits",
		"B0LEGADO01,SKU-L1,50,5,10",
		"B0LEGADO02,,30,0,0", // sin sku: se salta con warning
		"B0LEGADO03,SKU-L3,abc,2,", // cantidad no numérica y vacía: 0
	}, "\n")

	resp, err := uc.BulkUpload(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalRows)
	assert.Equal(t, 2, resp.Added)
	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, resp.Warnings, 1)

	require.Len(t, repo.updates, 2)
	assert.Equal(t, 50, repo.updates[0].AvailableUnits)
	assert.Equal(t, 0, repo.updates[1].AvailableUnits)
	assert.Equal(t, 2, repo.updates[1].ReservedUnits)
}
