package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// MerchantUseCase casos de uso CRUD para mercaderes.
type MerchantUseCase struct {
	repo repository.MerchantRepository
}

// NewMerchantUseCase construye el caso de uso.
func NewMerchantUseCase(repo repository.MerchantRepository) *MerchantUseCase {
	return &MerchantUseCase{repo: repo}
}

// Create da de alta un mercader. El nombre es único.
func (uc *MerchantUseCase) Create(ctx context.Context, in dto.CreateMerchantRequest) (*dto.MerchantResponse, error) {
	kind := strings.TrimSpace(in.Kind)
	if !slices.Contains(entity.MerchantKinds, kind) {
		return nil, fmt.Errorf("%w: tipo de mercader %q no admitido", domain.ErrInvalidInput, in.Kind)
	}
	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, err
	}
	location, err := requiredText("location", in.Location)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	merchant := &entity.Merchant{
		ID:        in.ID,
		Name:      name,
		Kind:      kind,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, merchant); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: mercader %d / %q", domain.ErrDuplicate, merchant.ID, merchant.Name)
		}
		return nil, err
	}
	return toMerchantResponse(merchant), nil
}

// List lista mercaderes, opcionalmente por nombre. Sin resultados devuelve ErrNotFound.
func (uc *MerchantUseCase) List(ctx context.Context, filter repository.MerchantFilter) ([]dto.MerchantResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: ningún mercader coincide", domain.ErrNotFound)
	}
	out := make([]dto.MerchantResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *toMerchantResponse(h))
	}
	return out, nil
}

// GetByID obtiene un mercader por ID.
func (uc *MerchantUseCase) GetByID(ctx context.Context, id int64) (*dto.MerchantResponse, error) {
	merchant, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMerchantResponse(merchant), nil
}

// Update modifica nombre, tipo o ubicación.
func (uc *MerchantUseCase) Update(ctx context.Context, id int64, in dto.UpdateMerchantRequest) (*dto.MerchantResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: no hay campos a modificar", domain.ErrInvalidUpdate)
	}
	if in.Kind != nil && !slices.Contains(entity.MerchantKinds, strings.TrimSpace(*in.Kind)) {
		return nil, fmt.Errorf("%w: tipo de mercader %q no admitido", domain.ErrInvalidInput, *in.Kind)
	}
	merchant, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := setText(&merchant.Name, "name", in.Name); err != nil {
		return nil, err
	}
	if in.Kind != nil {
		merchant.Kind = strings.TrimSpace(*in.Kind)
	}
	if err := setText(&merchant.Location, "location", in.Location); err != nil {
		return nil, err
	}
	merchant.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, merchant); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: ya existe un mercader %q", domain.ErrDuplicate, merchant.Name)
		}
		return nil, err
	}
	return toMerchantResponse(merchant), nil
}

// Delete elimina un mercader y devuelve el registro eliminado. Sus transacciones no se tocan.
func (uc *MerchantUseCase) Delete(ctx context.Context, id int64) (*dto.MerchantResponse, error) {
	merchant, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toMerchantResponse(merchant), nil
}

func (uc *MerchantUseCase) find(ctx context.Context, id int64) (*entity.Merchant, error) {
	merchant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: mercader %d", domain.ErrNotFound, id)
	}
	return merchant, nil
}

func toMerchantResponse(h *entity.Merchant) *dto.MerchantResponse {
	return &dto.MerchantResponse{
		ID:        h.ID,
		Name:      h.Name,
		Kind:      h.Kind,
		Location:  h.Location,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
