package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// TransactionHandler maneja las peticiones HTTP del motor de transacciones.
type TransactionHandler struct {
	uc       *trade.TransactionUseCase
	receipts *trade.ReceiptUseCase
	log      zerolog.Logger
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *trade.TransactionUseCase, receipts *trade.ReceiptUseCase, log zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, receipts: receipts, log: log}
}

// Create godoc
// @Summary      Registrar compra o venta
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := decodeBody(c, &in, domain.ErrInvalidInput); err != nil {
		return respondError(c, h.log, err)
	}
	tx, err := h.uc.Create(c.UserContext(), trade.CreateInput{
		ID:        in.ID,
		Type:      in.Type,
		PartyName: in.Name,
		Items:     toItemInputs(in.Items),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(tx))
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	tx, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(toTransactionResponse(tx))
}

// List godoc
// @Summary      Listar transacciones por parte o por fechas y tipo
// @Description  Con `name` devuelve las transacciones del cazador y/o mercader con ese nombre.
// @Description  Sin `name` filtra por rango de fechas (RFC3339 o YYYY-MM-DD, inclusivo) y tipo.
// @Tags         transactions
// @Produce      json
// @Param        name  query  string  false  "Nombre del cazador o mercader"
// @Param        from  query  string  false  "Fecha inicial"
// @Param        to    query  string  false  "Fecha final"
// @Param        type  query  string  false  "purchase | sale | devolution"
// @Success      200   {array}   dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	if err := checkQuery(c, "name", "from", "to", "type"); err != nil {
		return respondError(c, h.log, err)
	}
	var (
		list []*entity.Transaction
		err  error
	)
	if name := c.Query("name"); name != "" {
		list, err = h.uc.ListByParty(c.UserContext(), name)
	} else {
		var in trade.FilterInput
		in, err = parseFilter(c)
		if err == nil {
			list, err = h.uc.ListByFilter(c.UserContext(), in)
		}
	}
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, toTransactionResponse(tx))
	}
	return c.JSON(out)
}

// Revise godoc
// @Summary      Reemplazar los bienes de una transacción
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la transacción"
// @Param        body  body  dto.ReviseTransactionRequest  true  "Nuevas líneas"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /transactions/{id} [patch]
func (h *TransactionHandler) Revise(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.ReviseTransactionRequest
	if err := decodeBody(c, &in, domain.ErrInvalidUpdate); err != nil {
		return respondError(c, h.log, err)
	}
	tx, err := h.uc.Revise(c.UserContext(), id, toItemInputs(in.Items))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(toTransactionResponse(tx))
}

// Delete godoc
// @Summary      Devolver una transacción
// @Description  Revierte el stock, registra una devolución y elimina la transacción original.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse  "La devolución generada"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	dev, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(toTransactionResponse(dev))
}

// Receipt godoc
// @Summary      Comprobante PDF de una transacción
// @Tags         transactions
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	pdf, filename, err := h.receipts.Receipt(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

func parseFilter(c *fiber.Ctx) (trade.FilterInput, error) {
	in := trade.FilterInput{Type: c.Query("type")}
	if raw := c.Query("from"); raw != "" {
		from, _, err := parseDate(raw)
		if err != nil {
			return in, err
		}
		in.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, dateOnly, err := parseDate(raw)
		if err != nil {
			return in, err
		}
		if dateOnly {
			// Una fecha sin hora incluye el día completo.
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		in.To = &to
	}
	return in, nil
}

func parseDate(raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse(time.DateOnly, raw); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("%w: fecha %q (use RFC3339 o YYYY-MM-DD)", domain.ErrInvalidInput, raw)
}

func toItemInputs(items []dto.TransactionItemRequest) []trade.ItemInput {
	out := make([]trade.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, trade.ItemInput{
			Name:        it.Name,
			Quantity:    it.Quantity,
			Description: it.Description,
			Material:    it.Material,
			Weight:      it.Weight,
			UnitValue:   it.UnitValue,
		})
	}
	return out
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	items := make([]dto.LineItemResponse, 0, len(tx.Items))
	for _, it := range tx.Items {
		items = append(items, dto.LineItemResponse{GoodID: it.GoodID, Quantity: it.Quantity})
	}
	return dto.TransactionResponse{
		ID:         tx.ID,
		Type:       tx.Type,
		Date:       tx.Date,
		HunterID:   tx.HunterID,
		MerchantID: tx.MerchantID,
		Items:      items,
		Value:      tx.Value,
	}
}
