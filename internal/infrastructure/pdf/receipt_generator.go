// Package pdf genera el comprobante PDF de una transacción del mercado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de transacción  │  N° + Fecha                 │
//	│  PARTE: Cazador / Mercader                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Bien | Valor unit. actual | Subtotal actual  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALOR REGISTRADO + QR de referencia                        │
//	│  Nota: las líneas usan el valor actual de cada bien         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 92, Green: 51, Blue: 23}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Las líneas se valoran al precio actual del bien; el total es el registrado en la
// transacción y puede no coincidir con su suma.
const (
	labelUnitValue   = "Valor unit. actual"
	labelSubtotal    = "Subtotal actual"
	labelTotal       = "VALOR REGISTRADO:"
	currentPriceNote = "Valores por línea según el precio actual de cada bien. El valor registrado es el de la transacción."
	missingValue     = "—"
)

var _ trade.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator implementa trade.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct {
	issuer string
}

// NewReceiptGenerator construye el generador. issuer aparece como autor del documento.
func NewReceiptGenerator(issuer string) *ReceiptGenerator {
	return &ReceiptGenerator{issuer: issuer}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceiptPDF(ctx context.Context, data trade.ReceiptData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if data.Transaction == nil {
		return nil, fmt.Errorf("pdf: transacción vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Transacción %d", data.Transaction.ID), true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(data.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))
	m.AddRows(noteRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data trade.ReceiptData) core.Row {
	tx := data.Transaction
	return row.New(18).Add(
		col.New(7).Add(
			text.New(typeLabel(tx.Type), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+data.IssuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("N° %d", tx.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+tx.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func partyRow(data trade.ReceiptData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(strings.ToUpper(data.PartyRole), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.PartyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Bien", 6, align.Left),
		h(labelUnitValue, 2, align.Right),
		h(labelSubtotal, 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableLineRows(lines []trade.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		unit, subtotal := lineAmounts(l)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(l.GoodName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(subtotal,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(data trade.ReceiptData) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(fmt.Sprintf("mercado:transaccion:%d", data.Transaction.ID), props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(3),
		col.New(3).Add(text.New(labelTotal, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(data.Transaction.Value), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func noteRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(currentPriceNote, props.Text{
			Size: 7, Style: fontstyle.Italic, Color: colorGray, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// lineAmounts formatea valor unitario y subtotal; sin bien no hay precio actual.
func lineAmounts(l trade.ReceiptLine) (unit, subtotal string) {
	if !l.Priced {
		return missingValue, missingValue
	}
	return formatMoney(l.UnitValue), formatMoney(l.Subtotal)
}

func typeLabel(txType string) string {
	switch txType {
	case entity.TransactionTypePurchase:
		return "COMPRA"
	case entity.TransactionTypeSale:
		return "VENTA"
	case entity.TransactionTypeDevolution:
		return "DEVOLUCIÓN"
	}
	return strings.ToUpper(txType)
}

// formatMoney formatea con separador de miles "." y dos decimales tras ",".
// Ej: 25000 → "25.000,00", 1637.5 → "1.637,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, frac...)
	return string(buf)
}
