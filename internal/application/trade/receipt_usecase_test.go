package trade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/domain"
)

type fakeReceiptGenerator struct {
	got trade.ReceiptData
	err error
}

func (g *fakeReceiptGenerator) GenerateReceiptPDF(_ context.Context, data trade.ReceiptData) ([]byte, error) {
	g.got = data
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.4"), nil
}

func TestReceipt_EnriqueceLineasYParte(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 3, 5)
	gen := &fakeReceiptGenerator{}
	uc := trade.NewReceiptUseCase(f.repos, gen)

	pdf, filename, err := uc.Receipt(f.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "transaccion_3.pdf", filename)
	assert.Equal(t, "testhunter3", gen.got.PartyName)
	assert.Equal(t, "Cazador", gen.got.PartyRole)
	require.Len(t, gen.got.Lines, 1)
	assert.Equal(t, "Espada de Plata", gen.got.Lines[0].GoodName)
	assert.True(t, gen.got.Lines[0].Subtotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, gen.got.Lines[0].Priced)
}

func TestReceipt_LineasAlPrecioActualYTotalRegistrado(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 3, 5)
	g, err := f.repos.Goods.GetByID(f.ctx, 3)
	require.NoError(t, err)
	g.UnitValue = decimal.NewFromInt(900)
	require.NoError(t, f.repos.Goods.Update(f.ctx, g))

	gen := &fakeReceiptGenerator{}
	_, _, err = trade.NewReceiptUseCase(f.repos, gen).Receipt(f.ctx, 3)
	require.NoError(t, err)
	require.Len(t, gen.got.Lines, 1)
	assert.True(t, gen.got.Lines[0].UnitValue.Equal(decimal.NewFromInt(900)))
	assert.True(t, gen.got.Lines[0].Subtotal.Equal(decimal.NewFromInt(4500)))
	assert.True(t, gen.got.Transaction.Value.Equal(decimal.NewFromInt(4000)), "el total sigue siendo el registrado")
}

func TestReceipt_BienYParteEliminados(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, 1, 100)
	require.NoError(t, f.repos.Hunters.Delete(f.ctx, 3))
	gen := &fakeReceiptGenerator{}

	_, _, err := trade.NewReceiptUseCase(f.repos, gen).Receipt(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "—", gen.got.PartyName)
	require.Len(t, gen.got.Lines, 1)
	assert.Equal(t, "Bien #3", gen.got.Lines[0].GoodName)
	assert.True(t, gen.got.Lines[0].Subtotal.IsZero())
	assert.False(t, gen.got.Lines[0].Priced)
}

func TestReceipt_Errores(t *testing.T) {
	f := newFixture(t)
	_, _, err := trade.NewReceiptUseCase(f.repos, &fakeReceiptGenerator{}).Receipt(f.ctx, 5)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	f.purchase(t, 5, 1)
	boom := errors.New("fuente no disponible")
	_, _, err = trade.NewReceiptUseCase(f.repos, &fakeReceiptGenerator{err: boom}).Receipt(f.ctx, 5)
	assert.ErrorIs(t, err, boom)
}
