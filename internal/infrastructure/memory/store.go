// Package memory implementa los puertos de persistencia en memoria, con unidades de trabajo
// que se confirman o descartan completas. Se usa en tests y con STORE=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

var _ trade.TxRunner = (*Store)(nil)

type state struct {
	goods        map[int64]entity.Good
	hunters      map[int64]entity.Hunter
	merchants    map[int64]entity.Merchant
	transactions map[int64]entity.Transaction

	// Mayor id asignado alguna vez por tabla de catálogo. No baja al borrar,
	// así un id eliminado nunca se reasigna a otro registro.
	goodSeq, hunterSeq, merchantSeq int64
}

func newState() *state {
	return &state{
		goods:        map[int64]entity.Good{},
		hunters:      map[int64]entity.Hunter{},
		merchants:    map[int64]entity.Merchant{},
		transactions: map[int64]entity.Transaction{},
	}
}

func (s *state) clone() *state {
	c := newState()
	c.goodSeq, c.hunterSeq, c.merchantSeq = s.goodSeq, s.hunterSeq, s.merchantSeq
	for k, v := range s.goods {
		c.goods[k] = v
	}
	for k, v := range s.hunters {
		c.hunters[k] = v
	}
	for k, v := range s.merchants {
		c.merchants[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = cloneTransaction(v)
	}
	return c
}

// Store almacén en memoria seguro para uso concurrente. Las unidades de trabajo se serializan.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Repos devuelve repositorios en modo auto-commit sobre el estado compartido.
func (s *Store) Repos() trade.Repos {
	return reposFor(view{lock: &s.mu, state: func() *state { return s.st }})
}

// Run ejecuta fn sobre una copia del estado y la confirma solo si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(repos trade.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	if err := fn(reposFor(view{lock: noopLocker{}, state: func() *state { return work }})); err != nil {
		return err
	}
	s.st = work
	return nil
}

func reposFor(v view) trade.Repos {
	return trade.Repos{
		Goods:        &GoodRepo{v: v},
		Hunters:      &HunterRepo{v: v},
		Merchants:    &MerchantRepo{v: v},
		Transactions: &TransactionRepo{v: v},
	}
}

// view da acceso al estado con el bloqueo que corresponda: el mutex del Store en auto-commit
// o ninguno dentro de Run, que ya lo tiene tomado.
type view struct {
	lock  sync.Locker
	state func() *state
}

func (v view) with(fn func(st *state) error) error {
	v.lock.Lock()
	defer v.lock.Unlock()
	return fn(v.state())
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// nextID devuelve el id a usar: el solicitado o seq+1 si es 0.
func nextID(seq int64, requested int64) int64 {
	if requested != 0 {
		return requested
	}
	return seq + 1
}

// bump sube la marca de agua hasta id.
func bump(seq *int64, id int64) {
	if id > *seq {
		*seq = id
	}
}

func maxKey[V any](m map[int64]V) int64 {
	var top int64
	for k := range m {
		if k > top {
			top = k
		}
	}
	return top
}

func cloneTransaction(t entity.Transaction) entity.Transaction {
	c := t
	c.Items = append([]entity.LineItem(nil), t.Items...)
	if t.HunterID != nil {
		id := *t.HunterID
		c.HunterID = &id
	}
	if t.MerchantID != nil {
		id := *t.MerchantID
		c.MerchantID = &id
	}
	return c
}
