package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercado-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// validationError fallo de decodificación o validación de una petición.
// Envuelve el sentinel de dominio que decide el código HTTP.
type validationError struct {
	base    error
	message string
	details map[string]string
}

func (e *validationError) Error() string { return fmt.Sprintf("%s: %s", e.base, e.message) }
func (e *validationError) Unwrap() error { return e.base }

// decodeBody decodifica el JSON del cuerpo en dest rechazando campos desconocidos y lo valida.
// Los fallos se envuelven en base (ErrInvalidInput al crear, ErrInvalidUpdate al modificar).
func decodeBody(c *fiber.Ctx, dest any, base error) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return &validationError{base: base, message: "cuerpo inválido", details: map[string]string{"error": err.Error()}}
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err, base)
	}
	return nil
}

func formatValidationErrors(err error, base error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &validationError{base: base, message: err.Error()}
	}
	details := map[string]string{}
	for _, fieldErr := range errs {
		details[fieldErr.Namespace()] = validationMessage(fieldErr)
	}
	return &validationError{base: base, message: "validación fallida", details: details}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	}
	return "no es válido"
}

// paramID lee el parámetro :id como entero positivo. Las rutas sin :id lo toman de ?id=.
func paramID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	if raw == "" {
		raw = c.Query("id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id debe ser un entero positivo", domain.ErrInvalidInput)
	}
	return id, nil
}

// checkQuery rechaza parámetros de consulta fuera de allowed.
func checkQuery(c *fiber.Ctx, allowed ...string) error {
	for key := range c.Queries() {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: filtro %q no admitido", domain.ErrInvalidInput, key)
		}
	}
	return nil
}
