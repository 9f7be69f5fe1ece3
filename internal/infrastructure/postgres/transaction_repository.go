package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo persiste transacciones en `transactions` y sus líneas en `transaction_items`.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el repositorio. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta la cabecera y todas sus líneas.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO transactions (id, type, date, hunter_id, merchant_id, value)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		tx.ID, tx.Type, tx.Date, tx.HunterID, tx.MerchantID, tx.Value,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return r.insertItems(ctx, tx)
}

// insertItems envía las líneas en un único batch, conservando su orden en `position`.
func (r *TransactionRepo) insertItems(ctx context.Context, tx *entity.Transaction) error {
	if len(tx.Items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, item := range tx.Items {
		batch.Queue(`INSERT INTO transaction_items (transaction_id, position, good_id, quantity) VALUES ($1, $2, $3, $4)`,
			tx.ID, i, item.GoodID, item.Quantity)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range tx.Items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert transaction item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la transacción con sus líneas; (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	row := r.q.QueryRow(ctx, `SELECT id, type, date, hunter_id, merchant_id, value FROM transactions WHERE id = $1`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Transaction{t}); err != nil {
		return nil, err
	}
	return t, nil
}

// List devuelve las transacciones que cumplen el filtro, ordenadas por id.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	var w whereBuilder
	if f.Type != "" {
		w.add("type = $%d", f.Type)
	}
	if f.From != nil {
		w.add("date >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("date <= $%d", *f.To)
	}
	if f.HunterID != nil {
		w.add("hunter_id = $%d", *f.HunterID)
	}
	if f.MerchantID != nil {
		w.add("merchant_id = $%d", *f.MerchantID)
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, type, date, hunter_id, merchant_id, value FROM transactions`+w.sql()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadItems completa las líneas de varias transacciones con una sola consulta.
func (r *TransactionRepo) loadItems(ctx context.Context, list []*entity.Transaction) error {
	if len(list) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Transaction, len(list))
	ids := make([]int64, 0, len(list))
	for _, t := range list {
		t.Items = []entity.LineItem{}
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT transaction_id, good_id, quantity FROM transaction_items
		WHERE transaction_id = ANY($1) ORDER BY transaction_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var txID int64
		var item entity.LineItem
		if err := rows.Scan(&txID, &item.GoodID, &item.Quantity); err != nil {
			return fmt.Errorf("scan transaction item: %w", err)
		}
		if t, ok := byID[txID]; ok {
			t.Items = append(t.Items, item)
		}
	}
	return rows.Err()
}

// MaxID devuelve el mayor id; ok=false si la tabla está vacía.
func (r *TransactionRepo) MaxID(ctx context.Context) (int64, bool, error) {
	var maxID *int64
	if err := r.q.QueryRow(ctx, `SELECT MAX(id) FROM transactions`).Scan(&maxID); err != nil {
		return 0, false, fmt.Errorf("max transaction id: %w", err)
	}
	if maxID == nil {
		return 0, false, nil
	}
	return *maxID, true, nil
}

// Update reemplaza fecha, valor y líneas de una transacción existente.
func (r *TransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	_, err := r.q.Exec(ctx, `UPDATE transactions SET date = $2, value = $3 WHERE id = $1`, tx.ID, tx.Date, tx.Value)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1`, tx.ID); err != nil {
		return fmt.Errorf("delete transaction items: %w", err)
	}
	return r.insertItems(ctx, tx)
}

// Delete elimina la transacción; sus líneas caen por ON DELETE CASCADE.
func (r *TransactionRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := row.Scan(&t.ID, &t.Type, &t.Date, &t.HunterID, &t.MerchantID, &t.Value); err != nil {
		return nil, err
	}
	t.Date = t.Date.UTC()
	return &t, nil
}
