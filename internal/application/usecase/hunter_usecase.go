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

// HunterUseCase casos de uso CRUD para cazadores.
type HunterUseCase struct {
	repo repository.HunterRepository
}

// NewHunterUseCase construye el caso de uso.
func NewHunterUseCase(repo repository.HunterRepository) *HunterUseCase {
	return &HunterUseCase{repo: repo}
}

// Create da de alta un cazador. El nombre es único.
func (uc *HunterUseCase) Create(ctx context.Context, in dto.CreateHunterRequest) (*dto.HunterResponse, error) {
	race := strings.TrimSpace(in.Race)
	if !slices.Contains(entity.HunterRaces, race) {
		return nil, fmt.Errorf("%w: raza %q no admitida", domain.ErrInvalidInput, in.Race)
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
	hunter := &entity.Hunter{
		ID:        in.ID,
		Name:      name,
		Race:      race,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, hunter); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: cazador %d / %q", domain.ErrDuplicate, hunter.ID, hunter.Name)
		}
		return nil, err
	}
	return toHunterResponse(hunter), nil
}

// List lista cazadores, opcionalmente por nombre. Sin resultados devuelve ErrNotFound.
func (uc *HunterUseCase) List(ctx context.Context, filter repository.HunterFilter) ([]dto.HunterResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: ningún cazador coincide", domain.ErrNotFound)
	}
	out := make([]dto.HunterResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *toHunterResponse(h))
	}
	return out, nil
}

// GetByID obtiene un cazador por ID.
func (uc *HunterUseCase) GetByID(ctx context.Context, id int64) (*dto.HunterResponse, error) {
	hunter, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHunterResponse(hunter), nil
}

// Update modifica nombre, raza o ubicación.
func (uc *HunterUseCase) Update(ctx context.Context, id int64, in dto.UpdateHunterRequest) (*dto.HunterResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: no hay campos a modificar", domain.ErrInvalidUpdate)
	}
	if in.Race != nil && !slices.Contains(entity.HunterRaces, strings.TrimSpace(*in.Race)) {
		return nil, fmt.Errorf("%w: raza %q no admitida", domain.ErrInvalidInput, *in.Race)
	}
	hunter, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := setText(&hunter.Name, "name", in.Name); err != nil {
		return nil, err
	}
	if in.Race != nil {
		hunter.Race = strings.TrimSpace(*in.Race)
	}
	if err := setText(&hunter.Location, "location", in.Location); err != nil {
		return nil, err
	}
	hunter.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, hunter); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: ya existe un cazador %q", domain.ErrDuplicate, hunter.Name)
		}
		return nil, err
	}
	return toHunterResponse(hunter), nil
}

// Delete elimina un cazador y devuelve el registro eliminado. Sus transacciones no se tocan.
func (uc *HunterUseCase) Delete(ctx context.Context, id int64) (*dto.HunterResponse, error) {
	hunter, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toHunterResponse(hunter), nil
}

func (uc *HunterUseCase) find(ctx context.Context, id int64) (*entity.Hunter, error) {
	hunter, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hunter == nil {
		return nil, fmt.Errorf("%w: cazador %d", domain.ErrNotFound, id)
	}
	return hunter, nil
}

func toHunterResponse(h *entity.Hunter) *dto.HunterResponse {
	return &dto.HunterResponse{
		ID:        h.ID,
		Name:      h.Name,
		Race:      h.Race,
		Location:  h.Location,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
