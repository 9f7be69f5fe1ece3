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

var (
	_ repository.HunterRepository   = (*HunterRepo)(nil)
	_ repository.MerchantRepository = (*MerchantRepo)(nil)
)

// HunterRepo implementación de HunterRepository sobre PostgreSQL.
type HunterRepo struct {
	q Querier
}

// NewHunterRepository construye el repositorio de cazadores.
func NewHunterRepository(q Querier) *HunterRepo {
	return &HunterRepo{q: q}
}

// Create persiste un cazador. Con ID 0 lo asigna la identidad de la tabla.
func (r *HunterRepo) Create(ctx context.Context, h *entity.Hunter) error {
	id, err := insertWithIdentity(ctx, r.q, "hunters", "name, race, location, created_at, updated_at", h.ID,
		h.Name, h.Race, h.Location, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert hunter: %w", err)
	}
	h.ID = id
	return nil
}

// GetByID obtiene un cazador por ID.
func (r *HunterRepo) GetByID(ctx context.Context, id int64) (*entity.Hunter, error) {
	return r.getOne(ctx, `SELECT id, name, race, location, created_at, updated_at FROM hunters WHERE id = $1`, id)
}

// GetByName obtiene un cazador por nombre exacto.
func (r *HunterRepo) GetByName(ctx context.Context, name string) (*entity.Hunter, error) {
	return r.getOne(ctx, `SELECT id, name, race, location, created_at, updated_at FROM hunters WHERE name = $1`, name)
}

func (r *HunterRepo) getOne(ctx context.Context, query string, arg any) (*entity.Hunter, error) {
	var h entity.Hunter
	err := r.q.QueryRow(ctx, query, arg).Scan(&h.ID, &h.Name, &h.Race, &h.Location, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hunter: %w", err)
	}
	return &h, nil
}

// List lista cazadores ordenados por id.
func (r *HunterRepo) List(ctx context.Context, f repository.HunterFilter) ([]*entity.Hunter, error) {
	var w whereBuilder
	if f.Name != nil {
		w.add("name = $%d", *f.Name)
	}
	rows, err := r.q.Query(ctx, `SELECT id, name, race, location, created_at, updated_at FROM hunters`+w.sql()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list hunters: %w", err)
	}
	defer rows.Close()
	var list []*entity.Hunter
	for rows.Next() {
		var h entity.Hunter
		if err := rows.Scan(&h.ID, &h.Name, &h.Race, &h.Location, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hunter: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update reemplaza los datos del cazador.
func (r *HunterRepo) Update(ctx context.Context, h *entity.Hunter) error {
	_, err := r.q.Exec(ctx,
		`UPDATE hunters SET name = $2, race = $3, location = $4, updated_at = $5 WHERE id = $1`,
		h.ID, h.Name, h.Race, h.Location, h.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update hunter: %w", err)
	}
	return nil
}

// Delete elimina un cazador por ID. Sus transacciones conservan la referencia.
func (r *HunterRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM hunters WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete hunter: %w", err)
	}
	return nil
}

// MerchantRepo implementación de MerchantRepository sobre PostgreSQL.
type MerchantRepo struct {
	q Querier
}

// NewMerchantRepository construye el repositorio de mercaderes.
func NewMerchantRepository(q Querier) *MerchantRepo {
	return &MerchantRepo{q: q}
}

// Create persiste un mercader. Con ID 0 lo asigna la identidad de la tabla.
func (r *MerchantRepo) Create(ctx context.Context, m *entity.Merchant) error {
	id, err := insertWithIdentity(ctx, r.q, "merchants", "name, kind, location, created_at, updated_at", m.ID,
		m.Name, m.Kind, m.Location, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert merchant: %w", err)
	}
	m.ID = id
	return nil
}

// GetByID obtiene un mercader por ID.
func (r *MerchantRepo) GetByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	return r.getOne(ctx, `SELECT id, name, kind, location, created_at, updated_at FROM merchants WHERE id = $1`, id)
}

// GetByName obtiene un mercader por nombre exacto.
func (r *MerchantRepo) GetByName(ctx context.Context, name string) (*entity.Merchant, error) {
	return r.getOne(ctx, `SELECT id, name, kind, location, created_at, updated_at FROM merchants WHERE name = $1`, name)
}

func (r *MerchantRepo) getOne(ctx context.Context, query string, arg any) (*entity.Merchant, error) {
	var m entity.Merchant
	err := r.q.QueryRow(ctx, query, arg).Scan(&m.ID, &m.Name, &m.Kind, &m.Location, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant: %w", err)
	}
	return &m, nil
}

// List lista mercaderes ordenados por id.
func (r *MerchantRepo) List(ctx context.Context, f repository.MerchantFilter) ([]*entity.Merchant, error) {
	var w whereBuilder
	if f.Name != nil {
		w.add("name = $%d", *f.Name)
	}
	rows, err := r.q.Query(ctx, `SELECT id, name, kind, location, created_at, updated_at FROM merchants`+w.sql()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Merchant
	for rows.Next() {
		var m entity.Merchant
		if err := rows.Scan(&m.ID, &m.Name, &m.Kind, &m.Location, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update reemplaza los datos del mercader.
func (r *MerchantRepo) Update(ctx context.Context, m *entity.Merchant) error {
	_, err := r.q.Exec(ctx,
		`UPDATE merchants SET name = $2, kind = $3, location = $4, updated_at = $5 WHERE id = $1`,
		m.ID, m.Name, m.Kind, m.Location, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update merchant: %w", err)
	}
	return nil
}

// Delete elimina un mercader por ID.
func (r *MerchantRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM merchants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete merchant: %w", err)
	}
	return nil
}
