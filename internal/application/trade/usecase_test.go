package trade_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	ctx   context.Context
	store *memory.Store
	repos trade.Repos
	uc    *trade.TransactionUseCase
}

// newFixture prepara el almacén con el bien "Espada de Plata" (800, stock 100),
// el cazador "testhunter3" y el mercader "testmerchant3".
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repos()
	require.NoError(t, repos.Goods.Create(ctx, &entity.Good{
		ID: 3, Name: "Espada de Plata", Description: "Arma de plata para monstruos",
		Material: "Acero de Mahakam", Weight: decimal.NewFromInt(3),
		UnitValue: decimal.NewFromInt(800), Stock: 100,
	}))
	require.NoError(t, repos.Hunters.Create(ctx, &entity.Hunter{ID: 3, Name: "testhunter3", Race: entity.RaceHuman, Location: "lago sur"}))
	require.NoError(t, repos.Merchants.Create(ctx, &entity.Merchant{ID: 3, Name: "testmerchant3", Kind: entity.MerchantBlacksmith, Location: "arbol caido"}))
	uc := trade.NewTransactionUseCase(store, repos, trade.WithClock(func() time.Time { return fixedNow }))
	return &fixture{ctx: ctx, store: store, repos: repos, uc: uc}
}

func (f *fixture) stock(t *testing.T, name string) (int, bool) {
	t.Helper()
	g, err := f.repos.Goods.GetByName(f.ctx, name)
	require.NoError(t, err)
	if g == nil {
		return 0, false
	}
	return g.Stock, true
}

func (f *fixture) purchase(t *testing.T, id int64, qty int) *entity.Transaction {
	t.Helper()
	tx, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: id, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
		Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: qty}},
	})
	require.NoError(t, err)
	return tx
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func decStr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CompraDescuentaStockYCalculaValor(t *testing.T) {
	f := newFixture(t)
	tx := f.purchase(t, 3, 5)

	assert.Equal(t, int64(3), tx.ID)
	assert.Equal(t, entity.TransactionTypePurchase, tx.Type)
	assert.True(t, tx.Value.Equal(decimal.NewFromInt(4000)), "valor = 5 × 800")
	assert.Equal(t, fixedNow, tx.Date)
	require.NotNil(t, tx.HunterID)
	assert.Equal(t, int64(3), *tx.HunterID)
	assert.Nil(t, tx.MerchantID)
	assert.Equal(t, []entity.LineItem{{GoodID: 3, Quantity: 5}}, tx.Items)

	stock, ok := f.stock(t, "Espada de Plata")
	require.True(t, ok)
	assert.Equal(t, 95, stock)
}

func TestCreate_CompraStockInsuficiente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 4, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
		Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1000}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 100, stock)
	_, err = f.uc.Get(f.ctx, 4)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestCreate_CompraAgotaElBienYLoElimina(t *testing.T) {
	f := newFixture(t)
	tx := f.purchase(t, 1, 100)
	assert.True(t, tx.Value.Equal(decimal.NewFromInt(80000)))

	_, ok := f.stock(t, "Espada de Plata")
	assert.False(t, ok, "un bien con stock 0 se elimina")
}

func TestCreate_VentaCreaBienNuevo(t *testing.T) {
	f := newFixture(t)
	tx, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 5, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		Items: []trade.ItemInput{{Name: "Espada de Oro", Quantity: 5, UnitValue: dec(1000)}},
	})
	require.NoError(t, err)
	assert.True(t, tx.Value.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, tx.MerchantID)
	assert.Nil(t, tx.HunterID)

	g, err := f.repos.Goods.GetByName(f.ctx, "Espada de Oro")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 5, g.Stock)
	assert.Equal(t, entity.DefaultGoodDescription, g.Description)
	assert.Equal(t, entity.DefaultGoodMaterial, g.Material)
	assert.True(t, g.Weight.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, []entity.LineItem{{GoodID: g.ID, Quantity: 5}}, tx.Items)
}

func TestCreate_VentaSumaStockAlBienExistente(t *testing.T) {
	f := newFixture(t)
	tx, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 6, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		// El valor unitario enviado no reemplaza al del bien existente.
		Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 10, UnitValue: dec(1)}},
	})
	require.NoError(t, err)
	assert.True(t, tx.Value.Equal(decimal.NewFromInt(8000)))
	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 110, stock)
}

func TestCreate_VentaDeBienNuevoSinValorEsInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 6, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		Items: []trade.ItemInput{{Name: "Ballesta", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_Errores(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 1)

	cases := []struct {
		name string
		in   trade.CreateInput
		want error
	}{
		{"id duplicado", trade.CreateInput{ID: 1, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
			Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}}}, domain.ErrDuplicateID},
		{"tipo inválido", trade.CreateInput{ID: 2, Type: "trueque", PartyName: "testhunter3",
			Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}}}, domain.ErrInvalidType},
		{"devolución no se crea a mano", trade.CreateInput{ID: 2, Type: entity.TransactionTypeDevolution, PartyName: "testhunter3",
			Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}}}, domain.ErrInvalidType},
		{"cazador inexistente", trade.CreateInput{ID: 2, Type: entity.TransactionTypePurchase, PartyName: "nadie",
			Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}}}, domain.ErrPartyNotFound},
		{"compra con parte mercader", trade.CreateInput{ID: 2, Type: entity.TransactionTypePurchase, PartyName: "testmerchant3",
			Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}}}, domain.ErrPartyNotFound},
		{"bien inexistente", trade.CreateInput{ID: 2, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
			Items: []trade.ItemInput{{Name: "Mandoble", Quantity: 1}}}, domain.ErrGoodNotFound},
		{"sin bienes", trade.CreateInput{ID: 2, Type: entity.TransactionTypePurchase, PartyName: "testhunter3"}, domain.ErrInvalidInput},
		{"cantidad cero", trade.CreateInput{ID: 2, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
			Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 0}}}, domain.ErrInvalidInput},
		{"valor con más de dos decimales", trade.CreateInput{ID: 2, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
			Items: []trade.ItemInput{{Name: "Escudo", Quantity: 1, UnitValue: decStr("10.005")}}}, domain.ErrInvalidInput},
		{"peso con más de tres decimales", trade.CreateInput{ID: 2, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
			Items: []trade.ItemInput{{Name: "Escudo", Quantity: 1, UnitValue: dec(10), Weight: decStr("1.0005")}}}, domain.ErrInvalidInput},
		{"id no positivo", trade.CreateInput{ID: 0, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
			Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}}}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(f.ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreate_FalloParcialNoDejaStockAplicado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 9, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
		Items: []trade.ItemInput{
			{Name: "Espada de Plata", Quantity: 10},
			{Name: "Mandoble", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrGoodNotFound)

	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 100, stock, "la primera línea se revierte junto con la unidad de trabajo")
}

func TestCreate_ValorSumaTodasLasLineas(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.repos.Goods.Create(f.ctx, &entity.Good{ID: 10, Name: "Aceite contra necrófagos", UnitValue: decimal.RequireFromString("12.5"), Stock: 20}))

	tx, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 11, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
		Items: []trade.ItemInput{
			{Name: "Espada de Plata", Quantity: 2},
			{Name: "Aceite contra necrófagos", Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.True(t, tx.Value.Equal(decimal.RequireFromString("1637.5")))
	assert.Equal(t, []entity.LineItem{{GoodID: 3, Quantity: 2}, {GoodID: 10, Quantity: 3}}, tx.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_DevuelveLoCreado(t *testing.T) {
	f := newFixture(t)
	created := f.purchase(t, 3, 5)
	got, err := f.uc.Get(f.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListByParty(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 5)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 2, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}},
	})
	require.NoError(t, err)

	list, err := f.uc.ListByParty(f.ctx, "testhunter3")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)

	_, err = f.uc.ListByParty(f.ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrPartyNotFound)
}

func TestListByParty_UneCazadorYMercaderHomonimos(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.repos.Merchants.Create(f.ctx, &entity.Merchant{ID: 9, Name: "testhunter3", Kind: entity.MerchantHealer, Location: "velen"}))
	f.purchase(t, 1, 1)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 2, Type: entity.TransactionTypeSale, PartyName: "testhunter3",
		Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}},
	})
	require.NoError(t, err)

	list, err := f.uc.ListByParty(f.ctx, "testhunter3")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}

func TestListByParty_ParteSinTransaccionesDevuelveVacio(t *testing.T) {
	f := newFixture(t)
	list, err := f.uc.ListByParty(f.ctx, "testmerchant3")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListByFilter(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 1)

	list, err := f.uc.ListByFilter(f.ctx, trade.FilterInput{Type: entity.TransactionTypePurchase})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.uc.ListByFilter(f.ctx, trade.FilterInput{Type: entity.TransactionTypeSale})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list, "sin coincidencias no es un error")

	from := fixedNow.Add(time.Hour)
	list, err = f.uc.ListByFilter(f.ctx, trade.FilterInput{From: &from})
	require.NoError(t, err)
	assert.Empty(t, list)

	to := fixedNow
	list, err = f.uc.ListByFilter(f.ctx, trade.FilterInput{To: &to})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.uc.ListByFilter(f.ctx, trade.FilterInput{Type: "trueque"})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	before := fixedNow.Add(-time.Hour)
	_, err = f.uc.ListByFilter(f.ctx, trade.FilterInput{From: &from, To: &before})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revise
// ──────────────────────────────────────────────────────────────────────────────

func TestRevise_RevierteYAplicaNuevasLineas(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 5)

	tx, err := f.uc.Revise(f.ctx, 1, []trade.ItemInput{{Name: "Espada de Plata", Quantity: 10}})
	require.NoError(t, err)
	assert.True(t, tx.Value.Equal(decimal.NewFromInt(8000)))
	assert.Equal(t, []entity.LineItem{{GoodID: 3, Quantity: 10}}, tx.Items)

	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 90, stock, "100 - 5 + 5 - 10")

	got, err := f.uc.Get(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, tx, got)
}

func TestRevise_VentaRetiraStockAnteriorYSumaNuevo(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 1, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 20}},
	})
	require.NoError(t, err)

	tx, err := f.uc.Revise(f.ctx, 1, []trade.ItemInput{{Name: "Espada de Plata", Quantity: 2}})
	require.NoError(t, err)
	assert.True(t, tx.Value.Equal(decimal.NewFromInt(1600)))
	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 102, stock)
}

func TestRevise_Errores(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 5)

	_, err := f.uc.Revise(f.ctx, 1, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidUpdate)

	_, err = f.uc.Revise(f.ctx, 1, []trade.ItemInput{{Name: "", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidUpdate)

	_, err = f.uc.Revise(f.ctx, 42, []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	_, err = f.uc.Revise(f.ctx, 1, []trade.ItemInput{{Name: "Espada de Plata", Quantity: 500}})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.uc.Revise(f.ctx, 1, []trade.ItemInput{{Name: "Mandoble", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrGoodNotFound)

	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 95, stock, "las revisiones fallidas no alteran el stock")
}

func TestRevise_BienAgotadoFallaSinModificarLaTransaccion(t *testing.T) {
	f := newFixture(t)
	original := f.purchase(t, 1, 100) // agota y elimina el bien

	_, err := f.uc.Revise(f.ctx, 1, []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrGoodNotFound)
	assert.True(t, domain.IsNotFound(err))

	got, err := f.uc.Get(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestRevise_ParteEliminada(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 1)
	require.NoError(t, f.repos.Hunters.Delete(f.ctx, 3))

	_, err := f.uc.Revise(f.ctx, 1, []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrPartyNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete (devolución)
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_CompraGeneraDevolucion(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 3, 5)

	dev, err := f.uc.Delete(f.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeDevolution, dev.Type)
	assert.Equal(t, int64(4), dev.ID, "max(id)+1")
	assert.True(t, dev.Value.Equal(decimal.NewFromInt(4000)))
	require.NotNil(t, dev.HunterID)
	assert.Equal(t, int64(3), *dev.HunterID)
	assert.Equal(t, []entity.LineItem{{GoodID: 3, Quantity: 5}}, dev.Items)

	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 100, stock)

	_, err = f.uc.Get(f.ctx, 3)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	got, err := f.uc.Get(f.ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, dev, got)
}

func TestDelete_OmiteBienesDesaparecidos(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.repos.Goods.Create(f.ctx, &entity.Good{ID: 10, Name: "Bomba de Samum", UnitValue: decimal.NewFromInt(50), Stock: 4}))
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 1, Type: entity.TransactionTypePurchase, PartyName: "testhunter3",
		Items: []trade.ItemInput{
			{Name: "Bomba de Samum", Quantity: 4},
			{Name: "Espada de Plata", Quantity: 1},
		},
	})
	require.NoError(t, err)

	dev, err := f.uc.Delete(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []entity.LineItem{{GoodID: 3, Quantity: 1}}, dev.Items)
	assert.True(t, dev.Value.Equal(decimal.NewFromInt(800)))
	_, ok := f.stock(t, "Bomba de Samum")
	assert.False(t, ok)
}

func TestDelete_BienAgotadoNoSeConfundeConUnBienNuevo(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 100)
	_, ok := f.stock(t, "Espada de Plata")
	require.False(t, ok, "la compra agota y elimina el bien 3")

	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 2, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		Items: []trade.ItemInput{{Name: "Escudo", Quantity: 2, UnitValue: dec(50)}},
	})
	require.NoError(t, err)
	escudo, err := f.repos.Goods.GetByName(f.ctx, "Escudo")
	require.NoError(t, err)
	require.NotNil(t, escudo)
	assert.Equal(t, int64(4), escudo.ID, "el id 3 del bien eliminado no se reasigna")

	dev, err := f.uc.Delete(f.ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, dev.Items)
	assert.True(t, dev.Value.IsZero())
	stock, _ := f.stock(t, "Escudo")
	assert.Equal(t, 2, stock)
}

func TestDelete_VentaRetiraStock(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 1, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		Items: []trade.ItemInput{{Name: "Espada de Oro", Quantity: 5, UnitValue: dec(1000)}},
	})
	require.NoError(t, err)

	dev, err := f.uc.Delete(f.ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, dev.MerchantID)
	assert.Equal(t, int64(2), dev.ID)
	assert.True(t, dev.Value.Equal(decimal.NewFromInt(5000)))
	_, ok := f.stock(t, "Espada de Oro")
	assert.False(t, ok, "retirar todo el stock elimina el bien")
}

func TestDelete_VentaConStockInsuficiente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(f.ctx, trade.CreateInput{
		ID: 1, Type: entity.TransactionTypeSale, PartyName: "testmerchant3",
		Items: []trade.ItemInput{{Name: "Espada de Plata", Quantity: 10}},
	})
	require.NoError(t, err)
	f.purchase(t, 2, 106) // quedan 4 unidades

	_, err = f.uc.Delete(f.ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.uc.Get(f.ctx, 1)
	assert.NoError(t, err, "la transacción original sigue activa")
	stock, _ := f.stock(t, "Espada de Plata")
	assert.Equal(t, 4, stock)
}

func TestDelete_Errores(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Delete(f.ctx, 99)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	f.purchase(t, 1, 1)
	require.NoError(t, f.repos.Hunters.Delete(f.ctx, 3))
	_, err = f.uc.Delete(f.ctx, 1)
	assert.ErrorIs(t, err, domain.ErrPartyNotFound)
}

func TestDelete_DevolucionNoSeDevuelve(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 1)
	dev, err := f.uc.Delete(f.ctx, 1)
	require.NoError(t, err)

	_, err = f.uc.Delete(f.ctx, dev.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidType)
	_, err = f.uc.Revise(f.ctx, dev.ID, []trade.ItemInput{{Name: "Espada de Plata", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestDelete_IDMonotono(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 10, 1)
	f.purchase(t, 4, 1)

	dev, err := f.uc.Delete(f.ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(11), dev.ID)

	dev, err = f.uc.Delete(f.ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), dev.ID)
}
