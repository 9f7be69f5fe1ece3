package memory

import (
	"context"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ repository.GoodRepository = (*GoodRepo)(nil)

// GoodRepo implementación en memoria de GoodRepository.
type GoodRepo struct {
	v view
}

// Create persiste el bien. Si ID es 0 asigna el siguiente a la marca de agua,
// nunca el id de un bien borrado.
func (r *GoodRepo) Create(_ context.Context, good *entity.Good) error {
	return r.v.with(func(st *state) error {
		good.ID = nextID(st.goodSeq, good.ID)
		if _, ok := st.goods[good.ID]; ok {
			return domain.ErrDuplicate
		}
		if goodByName(st, good.Name) != nil {
			return domain.ErrDuplicate
		}
		st.goods[good.ID] = *good
		bump(&st.goodSeq, good.ID)
		return nil
	})
}

// GetByID obtiene un bien por id.
func (r *GoodRepo) GetByID(_ context.Context, id int64) (*entity.Good, error) {
	var out *entity.Good
	err := r.v.with(func(st *state) error {
		if g, ok := st.goods[id]; ok {
			out = &g
		}
		return nil
	})
	return out, err
}

// GetByName obtiene un bien por nombre exacto.
func (r *GoodRepo) GetByName(_ context.Context, name string) (*entity.Good, error) {
	var out *entity.Good
	err := r.v.with(func(st *state) error {
		out = goodByName(st, name)
		return nil
	})
	return out, err
}

// List devuelve los bienes que cumplen el filtro, ordenados por id.
func (r *GoodRepo) List(_ context.Context, f repository.GoodFilter) ([]*entity.Good, error) {
	var out []*entity.Good
	err := r.v.with(func(st *state) error {
		for _, id := range sortedKeys(st.goods) {
			g := st.goods[id]
			if f.Name != nil && g.Name != *f.Name {
				continue
			}
			if f.Description != nil && g.Description != *f.Description {
				continue
			}
			if f.Material != nil && g.Material != *f.Material {
				continue
			}
			if f.Weight != nil && !g.Weight.Equal(*f.Weight) {
				continue
			}
			if f.UnitValue != nil && !g.UnitValue.Equal(*f.UnitValue) {
				continue
			}
			out = append(out, &g)
		}
		return nil
	})
	return out, err
}

// Update reemplaza el bien existente. Sin efecto si no existe.
func (r *GoodRepo) Update(_ context.Context, good *entity.Good) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.goods[good.ID]; !ok {
			return nil
		}
		if other := goodByName(st, good.Name); other != nil && other.ID != good.ID {
			return domain.ErrDuplicate
		}
		st.goods[good.ID] = *good
		return nil
	})
}

// Delete elimina un bien por id.
func (r *GoodRepo) Delete(_ context.Context, id int64) error {
	return r.v.with(func(st *state) error {
		delete(st.goods, id)
		return nil
	})
}

func goodByName(st *state, name string) *entity.Good {
	for _, g := range st.goods {
		if g.Name == name {
			g := g
			return &g
		}
	}
	return nil
}
