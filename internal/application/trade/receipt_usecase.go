package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/trade"
)

// ReceiptUseCase genera el comprobante PDF de una transacción.
type ReceiptUseCase struct {
	repos     Repos
	generator ReceiptGenerator
	now       func() time.Time
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(repos Repos, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{repos: repos, generator: generator, now: time.Now}
}

// Receipt carga la transacción, enriquece cada línea con el nombre y valor actual del bien
// y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)      si todo sale bien.
//   - domain.ErrTransactionNotFound  si la transacción no existe.
func (uc *ReceiptUseCase) Receipt(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	tx, err := uc.repos.Transactions.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener transacción: %w", err)
	}
	if tx == nil {
		return nil, "", fmt.Errorf("%w: %d", domain.ErrTransactionNotFound, id)
	}

	parties := NewPartyResolver(NewHunterDirectory(uc.repos.Hunters), NewMerchantDirectory(uc.repos.Merchants))
	data := ReceiptData{Transaction: tx, PartyName: "—", IssuedAt: uc.now()}
	data.PartyRole = (&Party{Kind: tx.PartyKind()}).Role()
	party, err := parties.ResolveRef(ctx, tx)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener parte: %w", err)
	}
	if party != nil {
		data.PartyName = party.Name
	}

	ledger := NewGoodLedger(uc.repos.Goods)
	data.Lines = make([]ReceiptLine, 0, len(tx.Items))
	for _, item := range tx.Items {
		line := ReceiptLine{GoodID: item.GoodID, GoodName: fmt.Sprintf("Bien #%d", item.GoodID), Quantity: item.Quantity}
		good, err := ledger.FindByID(ctx, item.GoodID)
		if err != nil {
			return nil, "", err
		}
		if good != nil {
			line.GoodName = good.Name
			line.UnitValue = good.UnitValue
			line.Subtotal = trade.LineValue(good.UnitValue, item.Quantity)
			line.Priced = true
		}
		data.Lines = append(data.Lines, line)
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("transaccion_%d.pdf", tx.ID), nil
}
