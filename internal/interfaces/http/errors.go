package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
)

// statusFor traduce el tipo de fallo a código HTTP.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindTransactionNotFound, domain.KindPartyNotFound, domain.KindGoodNotFound, domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindDuplicateID, domain.KindInvalidType, domain.KindInvalidUpdate,
		domain.KindInsufficientStock, domain.KindInvalidInput:
		return fiber.StatusBadRequest
	case domain.KindDuplicate:
		return fiber.StatusConflict
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// respondError escribe el ErrorResponse correspondiente a err.
// Los fallos internos se registran y se responden con un mensaje genérico.
func respondError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	kind := domain.KindOf(err)
	status := statusFor(kind)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(status).JSON(dto.ErrorResponse{Code: string(domain.KindInternal), Message: "error interno del servidor"})
	}
	resp := dto.ErrorResponse{Code: string(kind), Message: err.Error()}
	var verr *validationError
	if errors.As(err, &verr) {
		resp.Message = verr.message
		resp.Details = verr.details
	}
	return c.Status(status).JSON(resp)
}
