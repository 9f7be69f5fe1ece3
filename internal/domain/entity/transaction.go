package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionTypePurchase   = "purchase"   // compra de un cazador
	TransactionTypeSale       = "sale"       // venta de un mercader
	TransactionTypeDevolution = "devolution" // devolución generada al borrar una transacción
)

// IsTradeType indica si t es un tipo que un cliente puede crear (compra o venta).
func IsTradeType(t string) bool {
	return t == TransactionTypePurchase || t == TransactionTypeSale
}

// IsTransactionType indica si t es cualquier tipo persistible.
func IsTransactionType(t string) bool {
	return IsTradeType(t) || t == TransactionTypeDevolution
}

// LineItem es una línea (bien, cantidad) de una transacción. Quantity >= 1.
type LineItem struct {
	GoodID   int64
	Quantity int
}

// Transaction registra una compra, venta o devolución.
// Exactamente uno de HunterID / MerchantID está definido, coherente con Type.
// Value es derivado: siempre se recalcula desde el valor unitario de los bienes.
type Transaction struct {
	ID         int64
	Type       string
	Date       time.Time
	HunterID   *int64
	MerchantID *int64
	Items      []LineItem
	Value      decimal.Decimal
}

// PartyKind devuelve el tipo de transacción que identifica a la parte referenciada
// (purchase si es un cazador, sale si es un mercader).
func (t *Transaction) PartyKind() string {
	if t.HunterID != nil {
		return TransactionTypePurchase
	}
	return TransactionTypeSale
}

// PartyID devuelve el id de la parte referenciada.
func (t *Transaction) PartyID() int64 {
	if t.HunterID != nil {
		return *t.HunterID
	}
	if t.MerchantID != nil {
		return *t.MerchantID
	}
	return 0
}
