// Package pdf implementa la generación del documento PDF de un borrador de
// orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GreenForce Solar  │  N° Borrador + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + contacto + teléfono                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Código | Cant | Costo Unit | Total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL ESTIMADO + código de barras del producto             │
//	│  FOOTER: leyenda "borrador consultivo, no es un pedido"     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/greenforce/gf-crm/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52} // verde GreenForce
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa inventory.PurchaseOrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePurchaseOrderPDF genera el PDF del borrador y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePurchaseOrderPDF(
	_ context.Context,
	draft *entity.PurchaseOrderDraft,
	product *entity.Product,
	supplier *entity.Supplier,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra (borrador)", true).
		WithAuthor("GreenForce Solar", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(draft))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier, draft.SupplierName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(draft, product))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(draft))

	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(product) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social (izq) y número de borrador + fecha (der).
func headerRow(draft *entity.PurchaseOrderDraft) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("GreenForce Solar", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Distribución de equipos solares", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA — BORRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(draft.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New(draft.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 12,
			}),
		),
	)
}

// supplierRow: datos del proveedor resuelto, o el nombre de fallback.
func supplierRow(supplier *entity.Supplier, name string) core.Row {
	contact := "—"
	phone := "—"
	if supplier != nil {
		if supplier.Contact != "" {
			contact = supplier.Contact
		}
		if supplier.Phone != "" {
			phone = supplier.Phone
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(contact+"  ·  "+phone, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1})
	}
	return row.New(7).Add(
		col.New(5).Add(header("Producto", align.Left)),
		col.New(2).Add(header("Código", align.Center)),
		col.New(1).Add(header("Cant", align.Center)),
		col.New(2).Add(header("Costo Unit", align.Right)),
		col.New(2).Add(header("Total", align.Right)),
	)
}

func tableDetailRow(draft *entity.PurchaseOrderDraft, product *entity.Product) core.Row {
	return row.New(6).Add(
		col.New(5).Add(text.New(
			draft.ProductName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			product.Barcode,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", draft.Qty),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"$"+draft.UnitCost.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			"$"+draft.TotalCost.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: bloque de total alineado a la derecha.
func totalRow(draft *entity.PurchaseOrderDraft) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL ESTIMADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+draft.TotalCost.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRows: código de barras del producto + leyenda de borrador.
func footerRows(product *entity.Product) []core.Row {
	return []core.Row{
		row.New(18).Add(
			col.New(4).Add(code.NewBar(product.Barcode, props.Barcode{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Documento consultivo generado por el motor de reposición.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("NO constituye un pedido en firme al proveedor.", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 10, Left: 3, Color: colorPrimary,
				}),
			),
		),
	}
}
