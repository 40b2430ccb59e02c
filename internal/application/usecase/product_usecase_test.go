package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenforce/gf-crm/internal/application/dto"
	"github.com/greenforce/gf-crm/internal/application/inventory"
	"github.com/greenforce/gf-crm/internal/application/usecase"
	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
)

func newProductFixture(products ...*entity.Product) (*usecase.ProductUseCase, *memProductRepo, *memMovementRepo) {
	productRepo := newMemProductRepo(products...)
	movementRepo := newMemMovementRepo()
	tx := &memTxRunner{productRepo: productRepo, movementRepo: movementRepo}
	ledger := inventory.NewStockLedgerUseCase(tx, movementRepo)
	return usecase.NewProductUseCase(productRepo, tx, ledger), productRepo, movementRepo
}

func intPtr(n int) *int { return &n }

// Alta completa: barcode de 8 dígitos asignado, entrada inicial en el libro.
func TestProductCreate_AltaConStockInicial(t *testing.T) {
	uc, _, movementRepo := newProductFixture()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Monocrystalline Panel 450W",
		Category: entity.CategoryPanels,
		Cost:     decimal.NewFromInt(120),
		Price:    decimal.NewFromInt(185),
		Stock:    intPtr(20),
	}, "Carolina")
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Len(t, out.Barcode, 8, "el código de barras tiene 8 dígitos")
	assert.Equal(t, entity.DefaultReorderPoint, out.ReorderPoint, "sin punto de reorden explícito se usa el default")

	all, _ := movementRepo.ListAll()
	require.Len(t, all, 1, "el alta con stock positivo registra la entrada inicial")
	assert.Equal(t, "Initial stock", all[0].Reason)
	assert.Equal(t, 20, all[0].Qty)
	assert.Equal(t, "Carolina", all[0].Actor)
}

// Alta con stock cero: válida, pero sin movimiento en el libro.
func TestProductCreate_StockCeroSinMovimiento(t *testing.T) {
	uc, _, movementRepo := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Flood Light 200W",
		Category: entity.CategoryFloodLights,
		Stock:    intPtr(0),
	}, "Admin")
	require.NoError(t, err)

	all, _ := movementRepo.ListAll()
	assert.Empty(t, all)
}

// Validaciones del alta: nombre vacío, categoría fuera del conjunto,
// stock ausente o negativo, precios negativos.
func TestProductCreate_EntradasInvalidas(t *testing.T) {
	uc, _, _ := newProductFixture()

	cases := []dto.CreateProductRequest{
		{Name: "  ", Category: entity.CategoryPanels, Stock: intPtr(1)},
		{Name: "X", Category: "drones", Stock: intPtr(1)},
		{Name: "X", Category: entity.CategoryPanels},
		{Name: "X", Category: entity.CategoryPanels, Stock: intPtr(-1)},
		{Name: "X", Category: entity.CategoryPanels, Stock: intPtr(1), Cost: decimal.NewFromInt(-5)},
		{Name: "X", Category: entity.CategoryPanels, Stock: intPtr(1), ReorderPoint: intPtr(-2)},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in, "Admin")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v debe rechazarse", in)
	}
}

// Ficha técnica que no es JSON válido → ErrMalformedSpecs y nada persistido.
func TestProductCreate_SpecsMalFormadas(t *testing.T) {
	uc, productRepo, _ := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Hybrid Inverter",
		Category: entity.CategoryInverters,
		Stock:    intPtr(3),
		Specs:    json.RawMessage(`{"watts": 5000`),
	}, "Admin")

	assert.ErrorIs(t, err, domain.ErrMalformedSpecs)

	list, _ := productRepo.List()
	assert.Empty(t, list, "un alta rechazada no debe dejar producto")
}

// El asignador de barcode evita colisiones con el catálogo existente.
func TestProductCreate_BarcodeUnico(t *testing.T) {
	uc, productRepo, _ := newProductFixture()

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		out, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name:     "Accesorio",
			Category: entity.CategoryAccessories,
			Stock:    intPtr(0),
		}, "Admin")
		require.NoError(t, err)
		assert.False(t, seen[out.Barcode], "barcode repetido: %s", out.Barcode)
		seen[out.Barcode] = true
	}

	list, _ := productRepo.List()
	assert.Len(t, list, 30)
}

// brokenQueryRepo falla toda consulta por barcode; solo sirve para comprobar
// qué repo usa el asignador.
type brokenQueryRepo struct {
	*memProductRepo
}

func (r *brokenQueryRepo) GetByBarcode(string) (*entity.Product, error) {
	return nil, errors.New("repo de consulta fuera de servicio")
}

// El barcode se asigna contra el repo ligado a la transacción del alta, no
// contra el repo de consulta: dos altas concurrentes no pueden quedarse con
// el mismo código por haberlo verificado antes de entrar a la tx.
func TestProductCreate_BarcodeSeAsignaDentroDeLaTransaccion(t *testing.T) {
	productRepo := newMemProductRepo()
	movementRepo := newMemMovementRepo()
	tx := &memTxRunner{productRepo: productRepo, movementRepo: movementRepo}
	ledger := inventory.NewStockLedgerUseCase(tx, movementRepo)
	uc := usecase.NewProductUseCase(&brokenQueryRepo{productRepo}, tx, ledger)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Inverter 5kW",
		Category: entity.CategoryInverters,
		Stock:    intPtr(0),
	}, "Admin")
	require.NoError(t, err, "el alta no debe depender del repo de consulta")
	assert.Len(t, out.Barcode, 8)
}

// Update reemplaza campos pero nunca ID ni barcode, y no toca el libro.
func TestProductUpdate_CamposInmutables(t *testing.T) {
	uc, _, movementRepo := newProductFixture(&entity.Product{
		ID: "p1", Barcode: "12345678", Name: "Panel", Category: entity.CategoryPanels,
		Stock: 10, ReorderPoint: 5,
	})

	newName := "Panel 550W"
	newStock := 99
	out, err := uc.Update("p1", dto.UpdateProductRequest{Name: &newName, Stock: &newStock})
	require.NoError(t, err)

	assert.Equal(t, "p1", out.ID)
	assert.Equal(t, "12345678", out.Barcode, "el barcode es inmutable tras el alta")
	assert.Equal(t, "Panel 550W", out.Name)
	assert.Equal(t, 99, out.Stock)

	all, _ := movementRepo.ListAll()
	assert.Empty(t, all, "la edición directa de stock es corrección, no ajuste")
}

// Update de producto inexistente → nil sin error (el handler traduce a 404).
func TestProductUpdate_Inexistente(t *testing.T) {
	uc, _, _ := newProductFixture()

	name := "X"
	out, err := uc.Update("nope", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Update con categoría inválida o precio negativo → ErrInvalidInput.
func TestProductUpdate_ValoresInvalidos(t *testing.T) {
	uc, _, _ := newProductFixture(&entity.Product{
		ID: "p1", Name: "Panel", Category: entity.CategoryPanels, Stock: 1,
	})

	bad := "drones"
	_, err := uc.Update("p1", dto.UpdateProductRequest{Category: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := decimal.NewFromInt(-1)
	_, err = uc.Update("p1", dto.UpdateProductRequest{Price: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El margen se calcula como (precio-costo)/precio*100 y "N/A" con cero.
func TestProductResponse_Margen(t *testing.T) {
	uc, _, _ := newProductFixture(
		&entity.Product{ID: "p1", Name: "A", Category: entity.CategoryPanels,
			Cost: decimal.NewFromInt(100), Price: decimal.NewFromInt(150)},
		&entity.Product{ID: "p2", Name: "B", Category: entity.CategoryPanels,
			Cost: decimal.Zero, Price: decimal.NewFromInt(80)},
	)

	p1, err := uc.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "33.3", p1.Margin)

	p2, err := uc.GetByID("p2")
	require.NoError(t, err)
	assert.Equal(t, "N/A", p2.Margin, "sin costo el margen no es calculable")
}

// Query: búsqueda por substring de nombre o barcode, filtro de categoría y
// los tres órdenes soportados.
func TestProductQuery_FiltrosYOrden(t *testing.T) {
	uc, _, _ := newProductFixture(
		&entity.Product{ID: "p1", Barcode: "11111111", Name: "zeta panel", Category: entity.CategoryPanels,
			Stock: 5, Price: decimal.NewFromInt(10)},
		&entity.Product{ID: "p2", Barcode: "22222222", Name: "Alpha Inverter", Category: entity.CategoryInverters,
			Stock: 50, Price: decimal.NewFromInt(500)},
		&entity.Product{ID: "p3", Barcode: "33333333", Name: "beta PANEL", Category: entity.CategoryPanels,
			Stock: 20, Price: decimal.NewFromInt(100)},
	)

	// Búsqueda sin distinguir mayúsculas
	out, err := uc.Query(dto.ProductQueryRequest{Search: "panel"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	// Búsqueda por fragmento de barcode
	out, err = uc.Query(dto.ProductQueryRequest{Search: "2222"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "p2", out.Items[0].ID)

	// Filtro exacto de categoría
	out, err = uc.Query(dto.ProductQueryRequest{Category: entity.CategoryInverters})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	// Orden por defecto: nombre ascendente con colación (ignora mayúsculas)
	out, err = uc.Query(dto.ProductQueryRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)
	assert.Equal(t, []string{"p2", "p3", "p1"},
		[]string{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID})

	// Orden por stock descendente
	out, err = uc.Query(dto.ProductQueryRequest{Sort: "stock"})
	require.NoError(t, err)
	assert.Equal(t, "p2", out.Items[0].ID)
	assert.Equal(t, "p1", out.Items[2].ID)

	// Orden por precio descendente
	out, err = uc.Query(dto.ProductQueryRequest{Sort: "price"})
	require.NoError(t, err)
	assert.Equal(t, "p2", out.Items[0].ID)
}
