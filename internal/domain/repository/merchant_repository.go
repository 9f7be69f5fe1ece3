package repository

import (
	"context"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// MerchantFilter filtros admitidos al listar mercaderes.
type MerchantFilter struct {
	Name *string
}

// MerchantRepository define el puerto de persistencia para Merchant.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entity.Merchant) error
	GetByID(ctx context.Context, id int64) (*entity.Merchant, error)
	GetByName(ctx context.Context, name string) (*entity.Merchant, error)
	List(ctx context.Context, filter MerchantFilter) ([]*entity.Merchant, error)
	Update(ctx context.Context, merchant *entity.Merchant) error
	Delete(ctx context.Context, id int64) error
}
