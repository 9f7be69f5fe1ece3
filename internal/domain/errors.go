package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")

	// Motor de transacciones.
	ErrDuplicateID         = errors.New("ya existe una transacción con ese id")
	ErrInvalidType         = errors.New("tipo de transacción inválido")
	ErrInvalidUpdate       = errors.New("actualización no permitida")
	ErrPartyNotFound       = errors.New("cazador o mercader no encontrado")
	ErrGoodNotFound        = errors.New("bien no encontrado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrTransactionNotFound = errors.New("transacción no encontrada")
)

// Kind clasifica un error dentro de la taxonomía de fallos expuesta al adaptador.
type Kind string

const (
	KindDuplicateID         Kind = "DUPLICATE_ID"
	KindInvalidType         Kind = "INVALID_TYPE"
	KindInvalidUpdate       Kind = "INVALID_UPDATE"
	KindInvalidInput        Kind = "VALIDATION"
	KindDuplicate           Kind = "DUPLICATE"
	KindPartyNotFound       Kind = "PARTY_NOT_FOUND"
	KindGoodNotFound        Kind = "GOOD_NOT_FOUND"
	KindInsufficientStock   Kind = "INSUFFICIENT_STOCK"
	KindTransactionNotFound Kind = "TRANSACTION_NOT_FOUND"
	KindNotFound            Kind = "NOT_FOUND"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindInternal            Kind = "INTERNAL"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrDuplicateID, KindDuplicateID},
	{ErrInvalidType, KindInvalidType},
	{ErrInvalidUpdate, KindInvalidUpdate},
	{ErrPartyNotFound, KindPartyNotFound},
	{ErrGoodNotFound, KindGoodNotFound},
	{ErrInsufficientStock, KindInsufficientStock},
	{ErrTransactionNotFound, KindTransactionNotFound},
	{ErrNotFound, KindNotFound},
	{ErrInvalidInput, KindInvalidInput},
	{ErrDuplicate, KindDuplicate},
	{ErrUnauthorized, KindUnauthorized},
}

// KindOf devuelve el tipo de fallo de err. Cualquier error desconocido es KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// IsNotFound indica si el fallo pertenece a la familia "no encontrado".
func IsNotFound(err error) bool {
	switch KindOf(err) {
	case KindPartyNotFound, KindGoodNotFound, KindTransactionNotFound, KindNotFound:
		return true
	}
	return false
}
