package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// GoodLedger adaptador de lectura/escritura sobre los bienes usado por el motor de transacciones.
// Ningún método falla por motivos de negocio: "no existe" se representa con nil.
type GoodLedger struct {
	goods repository.GoodRepository
}

// NewGoodLedger construye el adaptador.
func NewGoodLedger(goods repository.GoodRepository) *GoodLedger {
	return &GoodLedger{goods: goods}
}

// NewGoodAttrs atributos de un bien creado implícitamente por una venta.
type NewGoodAttrs struct {
	Name        string
	Description string
	Material    string
	Weight      decimal.Decimal
	UnitValue   decimal.Decimal
	Stock       int
}

// FindByName busca un bien por nombre exacto.
func (l *GoodLedger) FindByName(ctx context.Context, name string) (*entity.Good, error) {
	good, err := l.goods.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("ledger: buscar bien %q: %w", name, err)
	}
	return good, nil
}

// FindByID busca un bien por id.
func (l *GoodLedger) FindByID(ctx context.Context, id int64) (*entity.Good, error) {
	good, err := l.goods.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ledger: buscar bien %d: %w", id, err)
	}
	return good, nil
}

// AdjustStock aplica delta al stock del bien. Si el stock resultante es <= 0 el bien se
// elimina y se devuelve deleted=true; si no, se persiste y se devuelve el bien actualizado.
func (l *GoodLedger) AdjustStock(ctx context.Context, good *entity.Good, delta int, now time.Time) (updated *entity.Good, deleted bool, err error) {
	newStock := good.Stock + delta
	if newStock <= 0 {
		if err := l.goods.Delete(ctx, good.ID); err != nil {
			return nil, false, fmt.Errorf("ledger: eliminar bien %d: %w", good.ID, err)
		}
		return nil, true, nil
	}
	next := *good
	next.Stock = newStock
	next.UpdatedAt = now
	if err := l.goods.Update(ctx, &next); err != nil {
		return nil, false, fmt.Errorf("ledger: actualizar stock de %d: %w", good.ID, err)
	}
	return &next, false, nil
}

// Create da de alta un bien nuevo con id asignado por el almacén.
func (l *GoodLedger) Create(ctx context.Context, attrs NewGoodAttrs, now time.Time) (*entity.Good, error) {
	good := &entity.Good{
		Name:        attrs.Name,
		Description: attrs.Description,
		Material:    attrs.Material,
		Weight:      attrs.Weight,
		UnitValue:   attrs.UnitValue,
		Stock:       attrs.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := l.goods.Create(ctx, good); err != nil {
		return nil, fmt.Errorf("ledger: crear bien %q: %w", attrs.Name, err)
	}
	return good, nil
}
