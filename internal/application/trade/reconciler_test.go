package trade_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/infrastructure/memory"
)

func newReconciler(t *testing.T, goods ...entity.Good) (*trade.Reconciler, trade.Repos) {
	t.Helper()
	repos := memory.NewStore().Repos()
	for i := range goods {
		require.NoError(t, repos.Goods.Create(context.Background(), &goods[i]))
	}
	return trade.NewReconciler(trade.NewGoodLedger(repos.Goods)), repos
}

func TestGoodLedger_AdjustStockEliminaEnCero(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repos()
	require.NoError(t, repos.Goods.Create(ctx, &entity.Good{ID: 1, Name: "Daga", UnitValue: decimal.NewFromInt(10), Stock: 3}))
	ledger := trade.NewGoodLedger(repos.Goods)

	good, err := ledger.FindByID(ctx, 1)
	require.NoError(t, err)
	updated, deleted, err := ledger.AdjustStock(ctx, good, -1, fixedNow)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 2, updated.Stock)
	assert.Equal(t, 3, good.Stock, "el bien de entrada no se modifica")

	_, deleted, err = ledger.AdjustStock(ctx, updated, -2, fixedNow)
	require.NoError(t, err)
	assert.True(t, deleted)
	missing, err := ledger.FindByName(ctx, "Daga")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReconciler_ApplyCompraTomaValorAntesDeAgotar(t *testing.T) {
	rec, repos := newReconciler(t, entity.Good{ID: 7, Name: "Ballesta", UnitValue: decimal.RequireFromString("250.50"), Stock: 2})

	out, err := rec.Apply(context.Background(), entity.TransactionTypePurchase,
		[]trade.ItemInput{{Name: "Ballesta", Quantity: 2}}, fixedNow)
	require.NoError(t, err)
	assert.True(t, out.Value.Equal(decimal.RequireFromString("501")))
	assert.Equal(t, []entity.LineItem{{GoodID: 7, Quantity: 2}}, out.Items)

	g, err := repos.Goods.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestReconciler_ApplyVentaUsaAtributosOpcionales(t *testing.T) {
	rec, repos := newReconciler(t)
	desc, mat := "Hoja curva", "Meteorito"
	weight := decimal.RequireFromString("2.5")

	out, err := rec.Apply(context.Background(), entity.TransactionTypeSale, []trade.ItemInput{{
		Name: "Sable", Quantity: 3, Description: &desc, Material: &mat, Weight: &weight, UnitValue: dec(40),
	}}, fixedNow)
	require.NoError(t, err)
	assert.True(t, out.Value.Equal(decimal.NewFromInt(120)))

	g, err := repos.Goods.GetByName(context.Background(), "Sable")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Hoja curva", g.Description)
	assert.Equal(t, "Meteorito", g.Material)
	assert.True(t, g.Weight.Equal(weight))
	assert.Equal(t, 3, g.Stock)
	assert.Equal(t, fixedNow, g.CreatedAt)
}

func TestReconciler_ApplyTipoInvalido(t *testing.T) {
	rec, _ := newReconciler(t)
	_, err := rec.Apply(context.Background(), entity.TransactionTypeDevolution,
		[]trade.ItemInput{{Name: "x", Quantity: 1}}, fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestReconciler_ReverseSegunModo(t *testing.T) {
	ctx := context.Background()
	items := []entity.LineItem{{GoodID: 1, Quantity: 2}, {GoodID: 99, Quantity: 1}}

	t.Run("revisión falla con bien desaparecido", func(t *testing.T) {
		rec, _ := newReconciler(t, entity.Good{ID: 1, Name: "Escudo", UnitValue: decimal.NewFromInt(5), Stock: 1})
		_, err := rec.Reverse(ctx, entity.TransactionTypePurchase, items, trade.ReverseForRevision, fixedNow)
		assert.ErrorIs(t, err, domain.ErrGoodNotFound)
	})

	t.Run("devolución omite bien desaparecido", func(t *testing.T) {
		rec, repos := newReconciler(t, entity.Good{ID: 1, Name: "Escudo", UnitValue: decimal.NewFromInt(5), Stock: 1})
		out, err := rec.Reverse(ctx, entity.TransactionTypePurchase, items, trade.ReverseForDevolution, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, []entity.LineItem{{GoodID: 1, Quantity: 2}}, out.Items)
		assert.True(t, out.Value.Equal(decimal.NewFromInt(10)))
		g, err := repos.Goods.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Stock)
	})

	t.Run("revisión de venta retira stock aunque agote", func(t *testing.T) {
		rec, repos := newReconciler(t, entity.Good{ID: 1, Name: "Escudo", UnitValue: decimal.NewFromInt(5), Stock: 1})
		_, err := rec.Reverse(ctx, entity.TransactionTypeSale, items[:1], trade.ReverseForRevision, fixedNow)
		require.NoError(t, err)
		g, err := repos.Goods.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, g)
	})

	t.Run("devolución de venta con stock insuficiente", func(t *testing.T) {
		rec, _ := newReconciler(t, entity.Good{ID: 1, Name: "Escudo", UnitValue: decimal.NewFromInt(5), Stock: 1})
		_, err := rec.Reverse(ctx, entity.TransactionTypeSale, items[:1], trade.ReverseForDevolution, fixedNow)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})
}

func TestPartyResolver(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repos()
	require.NoError(t, repos.Hunters.Create(ctx, &entity.Hunter{ID: 1, Name: "Geralt", Race: entity.RaceWitcher, Location: "Rivia"}))
	require.NoError(t, repos.Merchants.Create(ctx, &entity.Merchant{ID: 2, Name: "Hattori", Kind: entity.MerchantBlacksmith, Location: "Novigrado"}))
	resolver := trade.NewPartyResolver(trade.NewHunterDirectory(repos.Hunters), trade.NewMerchantDirectory(repos.Merchants))

	p, err := resolver.Resolve(ctx, entity.TransactionTypePurchase, "Geralt")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Cazador", p.Role())

	p, err = resolver.Resolve(ctx, entity.TransactionTypeSale, "Geralt")
	require.NoError(t, err)
	assert.Nil(t, p, "las ventas solo buscan mercaderes")

	p, err = resolver.Resolve(ctx, entity.TransactionTypeSale, "Hattori")
	require.NoError(t, err)
	require.NotNil(t, p)
	tx := &entity.Transaction{}
	p.Assign(tx)
	assert.Nil(t, tx.HunterID)
	require.NotNil(t, tx.MerchantID)
	assert.Equal(t, int64(2), *tx.MerchantID)

	ref, err := resolver.ResolveRef(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, "Hattori", ref.Name)
	assert.Equal(t, "Mercader", ref.Role())

	_, err = resolver.Resolve(ctx, "trueque", "Geralt")
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}
