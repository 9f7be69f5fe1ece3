package repository

import (
	"context"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// HunterFilter filtros admitidos al listar cazadores.
type HunterFilter struct {
	Name *string
}

// HunterRepository define el puerto de persistencia para Hunter.
type HunterRepository interface {
	Create(ctx context.Context, hunter *entity.Hunter) error
	GetByID(ctx context.Context, id int64) (*entity.Hunter, error)
	GetByName(ctx context.Context, name string) (*entity.Hunter, error)
	List(ctx context.Context, filter HunterFilter) ([]*entity.Hunter, error)
	Update(ctx context.Context, hunter *entity.Hunter) error
	Delete(ctx context.Context, id int64) error
}
