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

var _ repository.GoodRepository = (*GoodRepo)(nil)

const goodColumns = `id, name, description, material, weight, unit_value, stock, created_at, updated_at`

// GoodRepo implementación del puerto GoodRepository sobre PostgreSQL (usable con pool o tx).
type GoodRepo struct {
	q Querier
}

// NewGoodRepository construye el adaptador de persistencia para bienes. Pasar pool o tx (Querier).
func NewGoodRepository(q Querier) *GoodRepo {
	return &GoodRepo{q: q}
}

// Create persiste un bien. Con ID 0 lo asigna la identidad de la tabla, que nunca
// reutiliza el id de un bien eliminado.
func (r *GoodRepo) Create(ctx context.Context, good *entity.Good) error {
	id, err := insertWithIdentity(ctx, r.q, "goods",
		"name, description, material, weight, unit_value, stock, created_at, updated_at", good.ID,
		good.Name, good.Description, good.Material, good.Weight, good.UnitValue,
		good.Stock, good.CreatedAt, good.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert good: %w", err)
	}
	good.ID = id
	return nil
}

// GetByID obtiene un bien por ID.
func (r *GoodRepo) GetByID(ctx context.Context, id int64) (*entity.Good, error) {
	return r.getOne(ctx, `SELECT `+goodColumns+` FROM goods WHERE id = $1`, id)
}

// GetByName obtiene un bien por nombre exacto.
func (r *GoodRepo) GetByName(ctx context.Context, name string) (*entity.Good, error) {
	return r.getOne(ctx, `SELECT `+goodColumns+` FROM goods WHERE name = $1`, name)
}

func (r *GoodRepo) getOne(ctx context.Context, query string, arg any) (*entity.Good, error) {
	g, err := scanGood(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get good: %w", err)
	}
	return g, nil
}

// List lista los bienes que cumplen el filtro, ordenados por id.
func (r *GoodRepo) List(ctx context.Context, f repository.GoodFilter) ([]*entity.Good, error) {
	var w whereBuilder
	if f.Name != nil {
		w.add("name = $%d", *f.Name)
	}
	if f.Description != nil {
		w.add("description = $%d", *f.Description)
	}
	if f.Material != nil {
		w.add("material = $%d", *f.Material)
	}
	if f.Weight != nil {
		w.add("weight = $%d", *f.Weight)
	}
	if f.UnitValue != nil {
		w.add("unit_value = $%d", *f.UnitValue)
	}
	rows, err := r.q.Query(ctx, `SELECT `+goodColumns+` FROM goods`+w.sql()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list goods: %w", err)
	}
	defer rows.Close()
	var list []*entity.Good
	for rows.Next() {
		g, err := scanGood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan good: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Update reemplaza los datos del bien. Sin efecto si no existe.
func (r *GoodRepo) Update(ctx context.Context, good *entity.Good) error {
	query := `
		UPDATE goods SET name = $2, description = $3, material = $4, weight = $5, unit_value = $6, stock = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		good.ID, good.Name, good.Description, good.Material, good.Weight, good.UnitValue, good.Stock, good.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update good: %w", err)
	}
	return nil
}

// Delete elimina un bien por ID.
func (r *GoodRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM goods WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete good: %w", err)
	}
	return nil
}

func scanGood(row pgx.Row) (*entity.Good, error) {
	var g entity.Good
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Material, &g.Weight, &g.UnitValue,
		&g.Stock, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
