package trade

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// LineValue calcula el aporte de una línea al valor de la transacción: cantidad × valor unitario.
// Exacto (decimal), sin redondeo.
func LineValue(unitValue decimal.Decimal, quantity int) decimal.Decimal {
	return unitValue.Mul(decimal.NewFromInt(int64(quantity)))
}

// StockDelta devuelve la variación de stock que una línea de tipo txType aplica al bien.
// Compra resta, venta suma. Con reverse=true devuelve el efecto inverso (devolución/revisión).
func StockDelta(txType string, quantity int, reverse bool) int {
	delta := quantity
	if txType == entity.TransactionTypePurchase {
		delta = -quantity
	}
	if reverse {
		delta = -delta
	}
	return delta
}
