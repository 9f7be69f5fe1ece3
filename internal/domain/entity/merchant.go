package entity

import "time"

// Tipos de mercader.
const (
	MerchantBlacksmith = "herrero"
	MerchantPeddler    = "vendedor ambulante"
	MerchantAlchemist  = "alquimista"
	MerchantCarpenter  = "carpintero"
	MerchantHealer     = "curandero"
)

// MerchantKinds enumera los tipos válidos de mercader.
var MerchantKinds = []string{MerchantBlacksmith, MerchantPeddler, MerchantAlchemist, MerchantCarpenter, MerchantHealer}

// Merchant representa un mercader, la parte que vende bienes.
type Merchant struct {
	ID        int64
	Name      string
	Kind      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
