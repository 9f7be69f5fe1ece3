package trade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma unidad de trabajo.
type Repos struct {
	Goods        repository.GoodRepository
	Hunters      repository.HunterRepository
	Merchants    repository.MerchantRepository
	Transactions repository.TransactionRepository
}

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando repositorios
// atados a esa transacción. Si fn devuelve error se descartan todas sus escrituras.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}

// ReceiptLine línea del comprobante ya enriquecida con los datos del bien.
// UnitValue y Subtotal usan el valor actual del bien, no el de la fecha de la
// transacción; el valor registrado es Transaction.Value.
type ReceiptLine struct {
	GoodID    int64
	GoodName  string
	Quantity  int
	UnitValue decimal.Decimal
	Subtotal  decimal.Decimal
	Priced    bool // false si el bien ya no existe
}

// ReceiptData datos que necesita el generador para el comprobante de una transacción.
type ReceiptData struct {
	Transaction *entity.Transaction
	PartyRole   string // "Cazador" | "Mercader"
	PartyName   string
	Lines       []ReceiptLine
	IssuedAt    time.Time
}

// ReceiptGenerator genera la representación PDF de una transacción.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
}
