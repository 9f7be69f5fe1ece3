package memory

import (
	"context"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var (
	_ repository.HunterRepository   = (*HunterRepo)(nil)
	_ repository.MerchantRepository = (*MerchantRepo)(nil)
)

// HunterRepo implementación en memoria de HunterRepository.
type HunterRepo struct {
	v view
}

func (r *HunterRepo) Create(_ context.Context, h *entity.Hunter) error {
	return r.v.with(func(st *state) error {
		h.ID = nextID(st.hunterSeq, h.ID)
		if _, ok := st.hunters[h.ID]; ok {
			return domain.ErrDuplicate
		}
		if hunterByName(st, h.Name) != nil {
			return domain.ErrDuplicate
		}
		st.hunters[h.ID] = *h
		bump(&st.hunterSeq, h.ID)
		return nil
	})
}

func (r *HunterRepo) GetByID(_ context.Context, id int64) (*entity.Hunter, error) {
	var out *entity.Hunter
	err := r.v.with(func(st *state) error {
		if h, ok := st.hunters[id]; ok {
			out = &h
		}
		return nil
	})
	return out, err
}

func (r *HunterRepo) GetByName(_ context.Context, name string) (*entity.Hunter, error) {
	var out *entity.Hunter
	err := r.v.with(func(st *state) error {
		out = hunterByName(st, name)
		return nil
	})
	return out, err
}

func (r *HunterRepo) List(_ context.Context, f repository.HunterFilter) ([]*entity.Hunter, error) {
	var out []*entity.Hunter
	err := r.v.with(func(st *state) error {
		for _, id := range sortedKeys(st.hunters) {
			h := st.hunters[id]
			if f.Name != nil && h.Name != *f.Name {
				continue
			}
			out = append(out, &h)
		}
		return nil
	})
	return out, err
}

func (r *HunterRepo) Update(_ context.Context, h *entity.Hunter) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.hunters[h.ID]; !ok {
			return nil
		}
		if other := hunterByName(st, h.Name); other != nil && other.ID != h.ID {
			return domain.ErrDuplicate
		}
		st.hunters[h.ID] = *h
		return nil
	})
}

func (r *HunterRepo) Delete(_ context.Context, id int64) error {
	return r.v.with(func(st *state) error {
		delete(st.hunters, id)
		return nil
	})
}

func hunterByName(st *state, name string) *entity.Hunter {
	for _, h := range st.hunters {
		if h.Name == name {
			h := h
			return &h
		}
	}
	return nil
}

// MerchantRepo implementación en memoria de MerchantRepository.
type MerchantRepo struct {
	v view
}

func (r *MerchantRepo) Create(_ context.Context, m *entity.Merchant) error {
	return r.v.with(func(st *state) error {
		m.ID = nextID(st.merchantSeq, m.ID)
		if _, ok := st.merchants[m.ID]; ok {
			return domain.ErrDuplicate
		}
		if merchantByName(st, m.Name) != nil {
			return domain.ErrDuplicate
		}
		st.merchants[m.ID] = *m
		bump(&st.merchantSeq, m.ID)
		return nil
	})
}

func (r *MerchantRepo) GetByID(_ context.Context, id int64) (*entity.Merchant, error) {
	var out *entity.Merchant
	err := r.v.with(func(st *state) error {
		if m, ok := st.merchants[id]; ok {
			out = &m
		}
		return nil
	})
	return out, err
}

func (r *MerchantRepo) GetByName(_ context.Context, name string) (*entity.Merchant, error) {
	var out *entity.Merchant
	err := r.v.with(func(st *state) error {
		out = merchantByName(st, name)
		return nil
	})
	return out, err
}

func (r *MerchantRepo) List(_ context.Context, f repository.MerchantFilter) ([]*entity.Merchant, error) {
	var out []*entity.Merchant
	err := r.v.with(func(st *state) error {
		for _, id := range sortedKeys(st.merchants) {
			m := st.merchants[id]
			if f.Name != nil && m.Name != *f.Name {
				continue
			}
			out = append(out, &m)
		}
		return nil
	})
	return out, err
}

func (r *MerchantRepo) Update(_ context.Context, m *entity.Merchant) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.merchants[m.ID]; !ok {
			return nil
		}
		if other := merchantByName(st, m.Name); other != nil && other.ID != m.ID {
			return domain.ErrDuplicate
		}
		st.merchants[m.ID] = *m
		return nil
	})
}

func (r *MerchantRepo) Delete(_ context.Context, id int64) error {
	return r.v.with(func(st *state) error {
		delete(st.merchants, id)
		return nil
	})
}

func merchantByName(st *state, name string) *entity.Merchant {
	for _, m := range st.merchants {
		if m.Name == name {
			m := m
			return &m
		}
	}
	return nil
}
