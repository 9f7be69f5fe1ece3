package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// GoodUseCase casos de uso CRUD para bienes.
type GoodUseCase struct {
	repo repository.GoodRepository
}

// NewGoodUseCase construye el caso de uso.
func NewGoodUseCase(repo repository.GoodRepository) *GoodUseCase {
	return &GoodUseCase{repo: repo}
}

// Create da de alta un bien. Nombre e id son únicos.
func (uc *GoodUseCase) Create(ctx context.Context, in dto.CreateGoodRequest) (*dto.GoodResponse, error) {
	if err := checkAmounts(&in.Weight, &in.UnitValue); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	good := &entity.Good{
		ID:          in.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Material:    strings.TrimSpace(in.Material),
		Weight:      in.Weight,
		UnitValue:   in.UnitValue,
		Stock:       entity.DefaultGoodStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Stock != nil {
		good.Stock = *in.Stock
	}
	if good.Name == "" || good.Stock < 1 {
		return nil, fmt.Errorf("%w: nombre requerido y stock mayor que 0", domain.ErrInvalidInput)
	}
	if err := uc.repo.Create(ctx, good); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: bien %d / %q", domain.ErrDuplicate, good.ID, good.Name)
		}
		return nil, err
	}
	return toGoodResponse(good), nil
}

// List lista los bienes que cumplen el filtro. Sin resultados devuelve ErrNotFound.
func (uc *GoodUseCase) List(ctx context.Context, filter repository.GoodFilter) ([]dto.GoodResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: ningún bien coincide", domain.ErrNotFound)
	}
	out := make([]dto.GoodResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toGoodResponse(g))
	}
	return out, nil
}

// GetByID obtiene un bien por ID.
func (uc *GoodUseCase) GetByID(ctx context.Context, id int64) (*dto.GoodResponse, error) {
	good, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toGoodResponse(good), nil
}

// Update modifica los campos enviados. Stock debe seguir siendo positivo.
func (uc *GoodUseCase) Update(ctx context.Context, id int64, in dto.UpdateGoodRequest) (*dto.GoodResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: no hay campos a modificar", domain.ErrInvalidUpdate)
	}
	if err := checkAmounts(in.Weight, in.UnitValue); err != nil {
		return nil, err
	}
	if in.Stock != nil && *in.Stock < 1 {
		return nil, fmt.Errorf("%w: el stock debe ser mayor que 0", domain.ErrInvalidInput)
	}
	good, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := setText(&good.Name, "name", in.Name); err != nil {
		return nil, err
	}
	if err := setText(&good.Description, "description", in.Description); err != nil {
		return nil, err
	}
	if err := setText(&good.Material, "material", in.Material); err != nil {
		return nil, err
	}
	if in.Weight != nil {
		good.Weight = *in.Weight
	}
	if in.UnitValue != nil {
		good.UnitValue = *in.UnitValue
	}
	if in.Stock != nil {
		good.Stock = *in.Stock
	}
	good.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, good); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: ya existe un bien %q", domain.ErrDuplicate, good.Name)
		}
		return nil, err
	}
	return toGoodResponse(good), nil
}

// Delete elimina un bien y devuelve el registro eliminado.
func (uc *GoodUseCase) Delete(ctx context.Context, id int64) (*dto.GoodResponse, error) {
	good, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toGoodResponse(good), nil
}

func (uc *GoodUseCase) find(ctx context.Context, id int64) (*entity.Good, error) {
	good, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if good == nil {
		return nil, fmt.Errorf("%w: bien %d", domain.ErrNotFound, id)
	}
	return good, nil
}

// requiredText recorta v y falla si queda vacío.
func requiredText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s no puede quedar vacío", domain.ErrInvalidInput, field)
	}
	return v, nil
}

// setText asigna el valor enviado en dst si no queda vacío tras recortarlo.
func setText(dst *string, field string, v *string) error {
	if v == nil {
		return nil
	}
	t, err := requiredText(field, *v)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

func checkAmounts(weight, unitValue *decimal.Decimal) error {
	if weight != nil && weight.IsNegative() {
		return fmt.Errorf("%w: el peso no puede ser negativo", domain.ErrInvalidInput)
	}
	if unitValue != nil && unitValue.IsNegative() {
		return fmt.Errorf("%w: el valor no puede ser negativo", domain.ErrInvalidInput)
	}
	if weight != nil && !entity.FitsPlaces(*weight, entity.WeightPlaces) {
		return fmt.Errorf("%w: el peso admite como máximo %d decimales", domain.ErrInvalidInput, entity.WeightPlaces)
	}
	if unitValue != nil && !entity.FitsPlaces(*unitValue, entity.UnitValuePlaces) {
		return fmt.Errorf("%w: el valor admite como máximo %d decimales", domain.ErrInvalidInput, entity.UnitValuePlaces)
	}
	return nil
}

func toGoodResponse(g *entity.Good) *dto.GoodResponse {
	return &dto.GoodResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Material:    g.Material,
		Weight:      g.Weight,
		UnitValue:   g.UnitValue,
		Stock:       g.Stock,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
