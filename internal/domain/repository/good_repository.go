package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// GoodFilter filtros admitidos al listar bienes. Campos nil no filtran.
type GoodFilter struct {
	Name        *string
	Description *string
	Material    *string
	Weight      *decimal.Decimal
	UnitValue   *decimal.Decimal
}

// GoodRepository define el puerto de persistencia para Good (DIP).
// GetByID/GetByName devuelven (nil, nil) si el bien no existe.
type GoodRepository interface {
	// Create persiste el bien; si ID es 0 asigna max(id)+1.
	Create(ctx context.Context, good *entity.Good) error
	GetByID(ctx context.Context, id int64) (*entity.Good, error)
	GetByName(ctx context.Context, name string) (*entity.Good, error)
	List(ctx context.Context, filter GoodFilter) ([]*entity.Good, error)
	Update(ctx context.Context, good *entity.Good) error
	Delete(ctx context.Context, id int64) error
}
