package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItemRequest línea de una transacción identificada por el nombre del bien.
// Description, Material, Weight y UnitValue solo se usan si una venta crea un bien nuevo.
type TransactionItemRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Quantity    int              `json:"quantity" validate:"required,min=1"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Material    *string          `json:"material,omitempty" validate:"omitempty,max=100"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	UnitValue   *decimal.Decimal `json:"unit_value,omitempty"`
}

// CreateTransactionRequest entrada para registrar una compra (purchase) o una venta (sale).
// Name es el nombre del cazador (compra) o del mercader (venta).
type CreateTransactionRequest struct {
	ID    int64                    `json:"id" validate:"required,min=1"`
	Type  string                   `json:"type" validate:"required"`
	Name  string                   `json:"name" validate:"required,max=50"`
	Items []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ReviseTransactionRequest única forma admitida de modificar una transacción: reemplazar sus líneas.
type ReviseTransactionRequest struct {
	Items []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// LineItemResponse línea persistida (bien, cantidad).
type LineItemResponse struct {
	GoodID   int64 `json:"good_id"`
	Quantity int   `json:"quantity"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID         int64              `json:"id"`
	Type       string             `json:"type"`
	Date       time.Time          `json:"date"`
	HunterID   *int64             `json:"hunter_id,omitempty"`
	MerchantID *int64             `json:"merchant_id,omitempty"`
	Items      []LineItemResponse `json:"items"`
	Value      decimal.Decimal    `json:"value"`
}
