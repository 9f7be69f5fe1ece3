package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// TransactionFilter predicados para buscar transacciones. Campos vacíos no filtran.
// From/To son inclusivos.
type TransactionFilter struct {
	Type       string
	From       *time.Time
	To         *time.Time
	HunterID   *int64
	MerchantID *int64
}

// TransactionRepository persistencia de transacciones con sus líneas. Sin reglas de negocio.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	// List devuelve las transacciones que cumplen el filtro ordenadas por id.
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
	// MaxID devuelve el mayor id existente; ok=false si no hay transacciones.
	MaxID(ctx context.Context) (id int64, ok bool, err error)
	// Update reemplaza líneas, valor y fecha de una transacción existente.
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id int64) error
}
