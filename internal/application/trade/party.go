package trade

import (
	"context"
	"fmt"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// Party referencia resuelta a la contraparte de una transacción.
type Party struct {
	Kind string // entity.TransactionTypePurchase (cazador) | entity.TransactionTypeSale (mercader)
	ID   int64
	Name string
}

// Role nombre legible del rol de la parte.
func (p *Party) Role() string {
	if p.Kind == entity.TransactionTypePurchase {
		return "Cazador"
	}
	return "Mercader"
}

// Assign fija en tx la referencia a esta parte (cazador o mercader).
func (p *Party) Assign(tx *entity.Transaction) {
	id := p.ID
	tx.HunterID, tx.MerchantID = nil, nil
	if p.Kind == entity.TransactionTypePurchase {
		tx.HunterID = &id
		return
	}
	tx.MerchantID = &id
}

// PartyDirectory capacidad de búsqueda de una clase de parte. (nil, nil) si no existe.
type PartyDirectory interface {
	FindByName(ctx context.Context, name string) (*Party, error)
	FindByID(ctx context.Context, id int64) (*Party, error)
}

type hunterDirectory struct {
	repo repository.HunterRepository
}

// NewHunterDirectory expone los cazadores como PartyDirectory.
func NewHunterDirectory(repo repository.HunterRepository) PartyDirectory {
	return hunterDirectory{repo: repo}
}

func (d hunterDirectory) FindByName(ctx context.Context, name string) (*Party, error) {
	h, err := d.repo.GetByName(ctx, name)
	return hunterParty(h, err)
}

func (d hunterDirectory) FindByID(ctx context.Context, id int64) (*Party, error) {
	h, err := d.repo.GetByID(ctx, id)
	return hunterParty(h, err)
}

func hunterParty(h *entity.Hunter, err error) (*Party, error) {
	if err != nil {
		return nil, fmt.Errorf("buscar cazador: %w", err)
	}
	if h == nil {
		return nil, nil
	}
	return &Party{Kind: entity.TransactionTypePurchase, ID: h.ID, Name: h.Name}, nil
}

type merchantDirectory struct {
	repo repository.MerchantRepository
}

// NewMerchantDirectory expone los mercaderes como PartyDirectory.
func NewMerchantDirectory(repo repository.MerchantRepository) PartyDirectory {
	return merchantDirectory{repo: repo}
}

func (d merchantDirectory) FindByName(ctx context.Context, name string) (*Party, error) {
	m, err := d.repo.GetByName(ctx, name)
	return merchantParty(m, err)
}

func (d merchantDirectory) FindByID(ctx context.Context, id int64) (*Party, error) {
	m, err := d.repo.GetByID(ctx, id)
	return merchantParty(m, err)
}

func merchantParty(m *entity.Merchant, err error) (*Party, error) {
	if err != nil {
		return nil, fmt.Errorf("buscar mercader: %w", err)
	}
	if m == nil {
		return nil, nil
	}
	return &Party{Kind: entity.TransactionTypeSale, ID: m.ID, Name: m.Name}, nil
}

// PartyResolver elige el directorio según el tipo de transacción: compra → cazadores, venta → mercaderes.
type PartyResolver struct {
	hunters   PartyDirectory
	merchants PartyDirectory
}

// NewPartyResolver construye el resolvedor.
func NewPartyResolver(hunters, merchants PartyDirectory) *PartyResolver {
	return &PartyResolver{hunters: hunters, merchants: merchants}
}

func (r *PartyResolver) directory(txType string) (PartyDirectory, error) {
	switch txType {
	case entity.TransactionTypePurchase:
		return r.hunters, nil
	case entity.TransactionTypeSale:
		return r.merchants, nil
	}
	return nil, domain.ErrInvalidType
}

// Resolve busca la parte por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *PartyResolver) Resolve(ctx context.Context, txType, name string) (*Party, error) {
	dir, err := r.directory(txType)
	if err != nil {
		return nil, err
	}
	return dir.FindByName(ctx, name)
}

// ResolveRef vuelve a resolver la parte referenciada por una transacción ya persistida.
func (r *PartyResolver) ResolveRef(ctx context.Context, tx *entity.Transaction) (*Party, error) {
	dir, err := r.directory(tx.PartyKind())
	if err != nil {
		return nil, err
	}
	return dir.FindByID(ctx, tx.PartyID())
}
