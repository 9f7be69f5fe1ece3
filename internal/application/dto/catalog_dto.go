package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGoodRequest entrada para dar de alta un bien. ID 0 asigna uno nuevo; nunca el de un bien borrado.
type CreateGoodRequest struct {
	ID          int64           `json:"id" validate:"min=0"`
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=500"`
	Material    string          `json:"material" validate:"required,max=100"`
	Weight      decimal.Decimal `json:"weight"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	Stock       *int            `json:"stock" validate:"omitempty,min=1"`
}

// UpdateGoodRequest campos modificables de un bien. Cualquier otro campo se rechaza.
type UpdateGoodRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Material    *string          `json:"material" validate:"omitempty,min=1,max=100"`
	Weight      *decimal.Decimal `json:"weight"`
	UnitValue   *decimal.Decimal `json:"unit_value"`
	Stock       *int             `json:"stock" validate:"omitempty,min=1"`
}

// Empty indica que no se envió ningún campo.
func (r UpdateGoodRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Material == nil &&
		r.Weight == nil && r.UnitValue == nil && r.Stock == nil
}

// GoodResponse salida de un bien.
type GoodResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Material    string          `json:"material"`
	Weight      decimal.Decimal `json:"weight"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateHunterRequest entrada para dar de alta un cazador.
type CreateHunterRequest struct {
	ID       int64  `json:"id" validate:"min=0"`
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Race     string `json:"race" validate:"required"`
	Location string `json:"location" validate:"required,min=3,max=50"`
}

// UpdateHunterRequest campos modificables de un cazador.
type UpdateHunterRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=50"`
	Race     *string `json:"race"`
	Location *string `json:"location" validate:"omitempty,min=3,max=50"`
}

// Empty indica que no se envió ningún campo.
func (r UpdateHunterRequest) Empty() bool {
	return r.Name == nil && r.Race == nil && r.Location == nil
}

// HunterResponse salida de un cazador.
type HunterResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Race      string    `json:"race"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMerchantRequest entrada para dar de alta un mercader.
type CreateMerchantRequest struct {
	ID       int64  `json:"id" validate:"min=0"`
	Name     string `json:"name" validate:"required,max=50"`
	Kind     string `json:"kind" validate:"required"`
	Location string `json:"location" validate:"required,min=3,max=50"`
}

// UpdateMerchantRequest campos modificables de un mercader.
type UpdateMerchantRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=50"`
	Kind     *string `json:"kind"`
	Location *string `json:"location" validate:"omitempty,min=3,max=50"`
}

// Empty indica que no se envió ningún campo.
func (r UpdateMerchantRequest) Empty() bool {
	return r.Name == nil && r.Kind == nil && r.Location == nil
}

// MerchantResponse salida de un mercader.
type MerchantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
