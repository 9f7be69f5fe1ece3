package memory

import (
	"context"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación en memoria de TransactionRepository.
type TransactionRepo struct {
	v view
}

func (r *TransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.transactions[tx.ID]; ok {
			return domain.ErrDuplicate
		}
		st.transactions[tx.ID] = cloneTransaction(*tx)
		return nil
	})
}

func (r *TransactionRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := r.v.with(func(st *state) error {
		if t, ok := st.transactions[id]; ok {
			c := cloneTransaction(t)
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *TransactionRepo) List(_ context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.v.with(func(st *state) error {
		for _, id := range sortedKeys(st.transactions) {
			t := st.transactions[id]
			if !matches(t, f) {
				continue
			}
			c := cloneTransaction(t)
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func matches(t entity.Transaction, f repository.TransactionFilter) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	if f.HunterID != nil && (t.HunterID == nil || *t.HunterID != *f.HunterID) {
		return false
	}
	if f.MerchantID != nil && (t.MerchantID == nil || *t.MerchantID != *f.MerchantID) {
		return false
	}
	return true
}

func (r *TransactionRepo) MaxID(_ context.Context) (int64, bool, error) {
	var (
		id int64
		ok bool
	)
	err := r.v.with(func(st *state) error {
		ok = len(st.transactions) > 0
		id = maxKey(st.transactions)
		return nil
	})
	return id, ok, err
}

func (r *TransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.transactions[tx.ID]; !ok {
			return nil
		}
		st.transactions[tx.ID] = cloneTransaction(*tx)
		return nil
	})
}

func (r *TransactionRepo) Delete(_ context.Context, id int64) error {
	return r.v.with(func(st *state) error {
		delete(st.transactions, id)
		return nil
	})
}
