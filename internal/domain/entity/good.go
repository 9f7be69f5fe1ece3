package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto para bienes creados implícitamente por una venta.
const (
	DefaultGoodDescription = "Sin descripción"
	DefaultGoodMaterial    = "Desconocido"
	DefaultGoodStock       = 1
)

// DefaultGoodWeight peso asignado a un bien nuevo cuando la venta no lo especifica.
var DefaultGoodWeight = decimal.NewFromInt(1)

// Decimales admitidos; coinciden con las columnas NUMERIC del esquema.
const (
	UnitValuePlaces int32 = 2
	WeightPlaces    int32 = 3
)

// FitsPlaces indica si d se representa sin redondeo con places decimales.
func FitsPlaces(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

// Good representa un bien del inventario.
// Stock nunca se persiste negativo: al llegar a cero el bien se elimina.
type Good struct {
	ID          int64
	Name        string
	Description string
	Material    string
	Weight      decimal.Decimal // kilogramos
	UnitValue   decimal.Decimal // valor económico por unidad
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
