package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/greenforce/gf-crm/internal/application/dto"
	appinventory "github.com/greenforce/gf-crm/internal/application/inventory"
	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
	dominventory "github.com/greenforce/gf-crm/internal/domain/inventory"
	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// maxBarcodeAttempts intentos del asignador de códigos antes de rendirse.
// Con 90 millones de códigos posibles, agotarlos indica un catálogo roto.
const maxBarcodeAttempts = 100

// ProductUseCase casos de uso del catálogo de productos. El alta registra la
// entrada inicial en el libro dentro de la misma transacción; la edición
// reemplaza campos directamente (corrección, no ajuste) sin tocar el libro.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner appinventory.TxRunner
	ledger   *appinventory.StockLedgerUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	txRunner appinventory.TxRunner,
	ledger *appinventory.StockLedgerUseCase,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, ledger: ledger}
}

// Create crea un producto nuevo. Nombre, categoría válida y stock >= 0 son
// obligatorios; costo y precio vienen en 0 si se omiten y el punto de reorden
// por defecto es 5. El código de barras se sortea en [10000000, 99999999] y se
// reintenta hasta no colisionar con el catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, actor string) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || !entity.IsValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock == nil || *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	reorderPoint := entity.DefaultReorderPoint
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		reorderPoint = *in.ReorderPoint
	}
	specs, err := normalizeSpecs(in.Specs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Cost:         in.Cost,
		Price:        in.Price,
		Stock:        *in.Stock,
		ReorderPoint: reorderPoint,
		ImageURL:     in.ImageURL,
		Specs:        specs,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Alta, asignación de código y entrada inicial del libro en una sola
	// transacción: el código se sortea contra el repo ligado a la tx para
	// que una alta concurrente no pueda robar el código ya verificado.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		barcode, err := allocateBarcode(productRepo)
		if err != nil {
			return err
		}
		product.Barcode = barcode
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return uc.ledger.RecordInitialStockInTx(movementRepo, product, actor, now)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// allocateBarcode sortea códigos de 8 dígitos hasta encontrar uno libre en el
// repo recibido, que debe ser el ligado a la transacción del alta.
func allocateBarcode(repo repository.ProductRepository) (string, error) {
	for i := 0; i < maxBarcodeAttempts; i++ {
		code := fmt.Sprintf("%08d", 10_000_000+rand.IntN(90_000_000))
		existing, err := repo.GetByBarcode(code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: sin códigos de barras libres tras %d intentos", domain.ErrDuplicate, maxBarcodeAttempts)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update reemplaza los campos mutables de un producto. ID y Barcode se
// conservan siempre. El stock editado aquí es una corrección directa y no
// genera movimiento en el libro.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.IsValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if len(in.Specs) > 0 {
		specs, err := normalizeSpecs(in.Specs)
		if err != nil {
			return nil, err
		}
		product.Specs = specs
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Query filtra y ordena el catálogo. La búsqueda casa substring del nombre
// (sin distinguir mayúsculas) o del código de barras; la categoría es filtro
// exacto; sort admite name (ascendente, colación), stock y price (descendentes).
func (uc *ProductUseCase) Query(in dto.ProductQueryRequest) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(in.Search))
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(p.Barcode, search) {
			continue
		}
		if in.Category != "" && p.Category != in.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	switch in.Sort {
	case "stock":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Stock > filtered[j].Stock
		})
	case "price":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	default: // name
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}

	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// normalizeSpecs valida que la ficha técnica sea JSON bien formado.
func normalizeSpecs(specs json.RawMessage) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(specs))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, domain.ErrMalformedSpecs
	}
	return json.RawMessage(trimmed), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	margin := "N/A"
	if m, ok := dominventory.MarginPct(p.Cost, p.Price); ok {
		margin = m.String()
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Barcode:      p.Barcode,
		Name:         p.Name,
		Category:     p.Category,
		Cost:         p.Cost,
		Price:        p.Price,
		Stock:        p.Stock,
		ReorderPoint: p.ReorderPoint,
		Margin:       margin,
		LowStock:     appinventory.IsLowStock(p),
		ImageURL:     p.ImageURL,
		Specs:        p.Specs,
		SupplierID:   p.SupplierID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
