package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// HunterHandler maneja las peticiones HTTP para cazadores.
type HunterHandler struct {
	uc  *usecase.HunterUseCase
	log zerolog.Logger
}

// NewHunterHandler construye el handler.
func NewHunterHandler(uc *usecase.HunterUseCase, log zerolog.Logger) *HunterHandler {
	return &HunterHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear cazador
// @Tags         hunters
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHunterRequest  true  "Datos del cazador"
// @Success      201   {object}  dto.HunterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /hunters [post]
func (h *HunterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHunterRequest
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
// @Summary      Listar cazadores
// @Tags         hunters
// @Produce      json
// @Param        name  query  string  false  "Nombre"
// @Success      200   {array}   dto.HunterResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /hunters [get]
func (h *HunterHandler) List(c *fiber.Ctx) error {
	if err := checkQuery(c, "name"); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.List(c.UserContext(), repository.HunterFilter{Name: optionalQuery(c, "name")})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cazador por ID
// @Tags         hunters
// @Produce      json
// @Param        id   path  int  true  "ID del cazador"
// @Success      200  {object}  dto.HunterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /hunters/{id} [get]
func (h *HunterHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar cazador
// @Tags         hunters
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cazador"
// @Param        body  body  dto.UpdateHunterRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.HunterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /hunters/{id} [patch]
// @Router       /hunters [patch]
func (h *HunterHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdateHunterRequest
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
// @Summary      Eliminar cazador
// @Tags         hunters
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cazador"
// @Success      200  {object}  dto.HunterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /hunters/{id} [delete]
// @Router       /hunters [delete]
func (h *HunterHandler) Delete(c *fiber.Ctx) error {
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
