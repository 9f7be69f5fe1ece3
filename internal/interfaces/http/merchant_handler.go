package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// MerchantHandler maneja las peticiones HTTP para mercaderes.
type MerchantHandler struct {
	uc  *usecase.MerchantUseCase
	log zerolog.Logger
}

// NewMerchantHandler construye el handler.
func NewMerchantHandler(uc *usecase.MerchantUseCase, log zerolog.Logger) *MerchantHandler {
	return &MerchantHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear mercader
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMerchantRequest  true  "Datos del mercader"
// @Success      201   {object}  dto.MerchantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /merchants [post]
func (h *MerchantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMerchantRequest
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
// @Summary      Listar mercaderes
// @Tags         merchants
// @Produce      json
// @Param        name  query  string  false  "Nombre"
// @Success      200   {array}   dto.MerchantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /merchants [get]
func (h *MerchantHandler) List(c *fiber.Ctx) error {
	if err := checkQuery(c, "name"); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.List(c.UserContext(), repository.MerchantFilter{Name: optionalQuery(c, "name")})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener mercader por ID
// @Tags         merchants
// @Produce      json
// @Param        id   path  int  true  "ID del mercader"
// @Success      200  {object}  dto.MerchantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /merchants/{id} [get]
func (h *MerchantHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar mercader
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del mercader"
// @Param        body  body  dto.UpdateMerchantRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.MerchantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /merchants/{id} [patch]
// @Router       /merchants [patch]
func (h *MerchantHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdateMerchantRequest
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
// @Summary      Eliminar mercader
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del mercader"
// @Success      200  {object}  dto.MerchantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /merchants/{id} [delete]
// @Router       /merchants [delete]
func (h *MerchantHandler) Delete(c *fiber.Ctx) error {
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
