package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// GoodHandler maneja las peticiones HTTP para bienes.
type GoodHandler struct {
	uc  *usecase.GoodUseCase
	log zerolog.Logger
}

// NewGoodHandler construye el handler.
func NewGoodHandler(uc *usecase.GoodUseCase, log zerolog.Logger) *GoodHandler {
	return &GoodHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear bien
// @Tags         goods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGoodRequest  true  "Datos del bien"
// @Success      201   {object}  dto.GoodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /goods [post]
func (h *GoodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGoodRequest
	if err := decodeBody(c, &in, domain.ErrInvalidInput); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar bienes
// @Tags         goods
// @Produce      json
// @Param        name         query  string  false  "Nombre"
// @Param        description  query  string  false  "Descripción"
// @Param        material     query  string  false  "Material"
// @Param        weight       query  number  false  "Peso"
// @Param        unit_value   query  number  false  "Valor unitario"
// @Success      200  {array}   dto.GoodResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /goods [get]
func (h *GoodHandler) List(c *fiber.Ctx) error {
	if err := checkQuery(c, "name", "description", "material", "weight", "unit_value"); err != nil {
		return respondError(c, h.log, err)
	}
	var f repository.GoodFilter
	f.Name = optionalQuery(c, "name")
	f.Description = optionalQuery(c, "description")
	f.Material = optionalQuery(c, "material")
	var err error
	if f.Weight, err = decimalQuery(c, "weight"); err != nil {
		return respondError(c, h.log, err)
	}
	if f.UnitValue, err = decimalQuery(c, "unit_value"); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bien por ID
// @Tags         goods
// @Produce      json
// @Param        id   path  int  true  "ID del bien"
// @Success      200  {object}  dto.GoodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /goods/{id} [get]
func (h *GoodHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bien
// @Tags         goods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del bien"
// @Param        body  body  dto.UpdateGoodRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.GoodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /goods/{id} [patch]
// @Router       /goods [patch]
func (h *GoodHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdateGoodRequest
	if err := decodeBody(c, &in, domain.ErrInvalidUpdate); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bien
// @Tags         goods
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del bien"
// @Success      200  {object}  dto.GoodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /goods/{id} [delete]
// @Router       /goods [delete]
func (h *GoodHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

func decimalQuery(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, key)
	}
	return &d, nil
}
