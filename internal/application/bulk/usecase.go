// Package bulk implementa la transferencia masiva del catálogo: importación
// CSV (alimenta el catálogo) y exportación CSV (lo serializa).
package bulk

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenforce/gf-crm/internal/application/dto"
	appinventory "github.com/greenforce/gf-crm/internal/application/inventory"
	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// Columnas requeridas en la cabecera de importación (sensible a mayúsculas,
// independiente del orden). La exportación añade barcode al final.
var requiredColumns = []string{"name", "category", "cost", "price", "stock", "reorderPoint"}

const maxBarcodeAttempts = 100

// BulkTransferUseCase importa y exporta el catálogo en CSV.
//
// Las filas importadas reciben ID y código de barras frescos y NO pasan por el
// libro de movimientos: el stock inicial de una carga masiva es estado de
// catálogo, no historial. Esto difiere a propósito del alta individual.
type BulkTransferUseCase struct {
	productRepo repository.ProductRepository
	txRunner    appinventory.TxRunner
}

// NewBulkTransferUseCase construye el caso de uso.
func NewBulkTransferUseCase(
	productRepo repository.ProductRepository,
	txRunner appinventory.TxRunner,
) *BulkTransferUseCase {
	return &BulkTransferUseCase{productRepo: productRepo, txRunner: txRunner}
}

// ImportCSV procesa el texto CSV completo. La primera línea es la cabecera y
// debe contener todas las columnas requeridas o la importación entera se
// rechaza antes de aplicar fila alguna. Las columnas numéricas que no parsean
// valen 0 (política tolerante deliberada, sin error por fila). Todas las filas
// se aplican en una sola transacción del almacén.
func (uc *BulkTransferUseCase) ImportCSV(ctx context.Context, text string) (*dto.ImportResultDTO, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: CSV ilegible: %v", domain.ErrImportRejected, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sin cabecera", domain.ErrImportRejected)
	}

	header := records[0]
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %q", domain.ErrImportRejected, col)
		}
	}

	now := time.Now()
	imported := 0
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.MovementRepository,
	) error {
		for _, record := range records[1:] {
			if isBlankRow(record) {
				continue
			}
			product, err := rowToProduct(record, colIndex, productRepo, now)
			if err != nil {
				return err
			}
			if err := productRepo.Create(product); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ImportResultDTO{Imported: imported}, nil
}

func isBlankRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// rowToProduct mapea una fila a un producto con ID y barcode frescos.
func rowToProduct(
	record []string,
	colIndex map[string]int,
	productRepo repository.ProductRepository,
	now time.Time,
) (*entity.Product, error) {
	field := func(col string) string {
		idx := colIndex[col]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	barcode, err := allocateBarcode(productRepo)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ID:           uuid.New().String(),
		Barcode:      barcode,
		Name:         field("name"),
		Category:     field("category"),
		Cost:         parseDecimal(field("cost")),
		Price:        parseDecimal(field("price")),
		Stock:        parseNonNegativeInt(field("stock")),
		ReorderPoint: parseNonNegativeInt(field("reorderPoint")),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// parseDecimal coerción tolerante: valores no numéricos valen 0.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseNonNegativeInt coerción tolerante; el invariante stock >= 0 aplica
// también a filas importadas, así que los negativos valen 0.
func parseNonNegativeInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func allocateBarcode(productRepo repository.ProductRepository) (string, error) {
	for i := 0; i < maxBarcodeAttempts; i++ {
		code := fmt.Sprintf("%08d", 10_000_000+rand.IntN(90_000_000))
		existing, err := productRepo.GetByBarcode(code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: sin códigos de barras libres", domain.ErrDuplicate)
}

// ExportCSV serializa el catálogo completo. Los campos de texto van siempre
// entre comillas (name, category, barcode); los numéricos, sin comillas.
func (uc *BulkTransferUseCase) ExportCSV() (string, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("name,category,cost,price,stock,reorderPoint,barcode\n")
	for _, p := range products {
		b.WriteString(quote(p.Name))
		b.WriteByte(',')
		b.WriteString(quote(p.Category))
		b.WriteByte(',')
		b.WriteString(p.Cost.String())
		b.WriteByte(',')
		b.WriteString(p.Price.String())
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Stock))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.ReorderPoint))
		b.WriteByte(',')
		b.WriteString(quote(p.Barcode))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// quote encierra el valor entre comillas dobles, duplicando las internas.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
