package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/trade"
)

// ItemInput línea de transacción tal como la envía el cliente.
// Los campos opcionales solo se usan al crear un bien nuevo en una venta.
type ItemInput struct {
	Name        string
	Quantity    int
	Description *string
	Material    *string
	Weight      *decimal.Decimal
	UnitValue   *decimal.Decimal
}

// Reconciliation resultado de aplicar (o revertir) una lista de líneas.
type Reconciliation struct {
	Items []entity.LineItem
	Value decimal.Decimal
}

// ReverseMode política ante bienes desaparecidos o stock insuficiente al revertir líneas.
type ReverseMode int

const (
	// ReverseForRevision: un bien inexistente falla con ErrGoodNotFound; restar stock nunca falla
	// (el bien se elimina si llega a cero).
	ReverseForRevision ReverseMode = iota
	// ReverseForDevolution: un bien inexistente se omite; una venta cuya devolución dejaría
	// stock negativo falla con ErrInsufficientStock.
	ReverseForDevolution
)

// Reconciler aplica la política de stock de cada tipo de transacción línea a línea,
// acumula el valor total y normaliza las líneas a (bien, cantidad).
// Procesa en orden y se detiene en la primera línea que falla; el rollback de las
// líneas ya aplicadas queda a cargo del TxRunner del llamador.
type Reconciler struct {
	ledger *GoodLedger
}

// NewReconciler construye el reconciliador sobre el ledger dado.
func NewReconciler(ledger *GoodLedger) *Reconciler {
	return &Reconciler{ledger: ledger}
}

// Apply aplica items como una transacción de tipo txType (purchase | sale).
func (r *Reconciler) Apply(ctx context.Context, txType string, items []ItemInput, now time.Time) (*Reconciliation, error) {
	out := &Reconciliation{Items: make([]entity.LineItem, 0, len(items)), Value: decimal.Zero}
	for _, item := range items {
		var (
			line  entity.LineItem
			value decimal.Decimal
			err   error
		)
		switch txType {
		case entity.TransactionTypePurchase:
			line, value, err = r.applyPurchase(ctx, item, now)
		case entity.TransactionTypeSale:
			line, value, err = r.applySale(ctx, item, now)
		default:
			return nil, domain.ErrInvalidType
		}
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, line)
		out.Value = out.Value.Add(value)
	}
	return out, nil
}

// applyPurchase: el bien debe existir con stock suficiente; se descuenta la cantidad.
func (r *Reconciler) applyPurchase(ctx context.Context, item ItemInput, now time.Time) (entity.LineItem, decimal.Decimal, error) {
	good, err := r.ledger.FindByName(ctx, item.Name)
	if err != nil {
		return entity.LineItem{}, decimal.Zero, err
	}
	if good == nil {
		return entity.LineItem{}, decimal.Zero, fmt.Errorf("%w: %s", domain.ErrGoodNotFound, item.Name)
	}
	if good.Stock < item.Quantity {
		return entity.LineItem{}, decimal.Zero, fmt.Errorf("%w: %s (disponible %d, solicitado %d)",
			domain.ErrInsufficientStock, item.Name, good.Stock, item.Quantity)
	}
	// El valor se toma antes del descuento: el bien puede eliminarse al agotarse.
	value := trade.LineValue(good.UnitValue, item.Quantity)
	if _, _, err := r.ledger.AdjustStock(ctx, good, trade.StockDelta(entity.TransactionTypePurchase, item.Quantity, false), now); err != nil {
		return entity.LineItem{}, decimal.Zero, err
	}
	return entity.LineItem{GoodID: good.ID, Quantity: item.Quantity}, value, nil
}

// applySale: suma stock a un bien existente o lo crea con stock = cantidad.
func (r *Reconciler) applySale(ctx context.Context, item ItemInput, now time.Time) (entity.LineItem, decimal.Decimal, error) {
	good, err := r.ledger.FindByName(ctx, item.Name)
	if err != nil {
		return entity.LineItem{}, decimal.Zero, err
	}
	if good == nil {
		if item.UnitValue == nil {
			return entity.LineItem{}, decimal.Zero, fmt.Errorf("%w: el bien nuevo %q requiere valor unitario", domain.ErrInvalidInput, item.Name)
		}
		created, err := r.ledger.Create(ctx, newGoodAttrs(item), now)
		if err != nil {
			return entity.LineItem{}, decimal.Zero, err
		}
		return entity.LineItem{GoodID: created.ID, Quantity: item.Quantity}, trade.LineValue(created.UnitValue, item.Quantity), nil
	}
	if _, _, err := r.ledger.AdjustStock(ctx, good, trade.StockDelta(entity.TransactionTypeSale, item.Quantity, false), now); err != nil {
		return entity.LineItem{}, decimal.Zero, err
	}
	return entity.LineItem{GoodID: good.ID, Quantity: item.Quantity}, trade.LineValue(good.UnitValue, item.Quantity), nil
}

func newGoodAttrs(item ItemInput) NewGoodAttrs {
	attrs := NewGoodAttrs{
		Name:        item.Name,
		Description: entity.DefaultGoodDescription,
		Material:    entity.DefaultGoodMaterial,
		Weight:      entity.DefaultGoodWeight,
		UnitValue:   *item.UnitValue,
		Stock:       item.Quantity,
	}
	if item.Description != nil && *item.Description != "" {
		attrs.Description = *item.Description
	}
	if item.Material != nil && *item.Material != "" {
		attrs.Material = *item.Material
	}
	if item.Weight != nil {
		attrs.Weight = *item.Weight
	}
	return attrs
}

// Reverse deshace el efecto de stock de líneas ya persistidas de una transacción de tipo txType:
// compra → devuelve stock, venta → retira stock. Devuelve las líneas efectivamente revertidas
// y su valor a precio actual.
func (r *Reconciler) Reverse(ctx context.Context, txType string, items []entity.LineItem, mode ReverseMode, now time.Time) (*Reconciliation, error) {
	if !entity.IsTradeType(txType) {
		return nil, domain.ErrInvalidType
	}
	out := &Reconciliation{Items: make([]entity.LineItem, 0, len(items)), Value: decimal.Zero}
	for _, item := range items {
		good, err := r.ledger.FindByID(ctx, item.GoodID)
		if err != nil {
			return nil, err
		}
		if good == nil {
			if mode == ReverseForDevolution {
				continue
			}
			return nil, fmt.Errorf("%w: id %d", domain.ErrGoodNotFound, item.GoodID)
		}
		delta := trade.StockDelta(txType, item.Quantity, true)
		if mode == ReverseForDevolution && good.Stock+delta < 0 {
			return nil, fmt.Errorf("%w: %s (disponible %d, a devolver %d)",
				domain.ErrInsufficientStock, good.Name, good.Stock, item.Quantity)
		}
		value := trade.LineValue(good.UnitValue, item.Quantity)
		if _, _, err := r.ledger.AdjustStock(ctx, good, delta, now); err != nil {
			return nil, err
		}
		out.Items = append(out.Items, entity.LineItem{GoodID: good.ID, Quantity: item.Quantity})
		out.Value = out.Value.Add(value)
	}
	return out, nil
}
