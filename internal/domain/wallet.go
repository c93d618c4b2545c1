package domain

import "time"

// DefaultContactFee es el precio de una revelación de contacto, en unidades
// menores de IDR.
const DefaultContactFee int64 = 10000

// TopUpDenominations son los montos predefinidos ofrecidos en el flujo de
// recarga. Cualquier monto positivo es igualmente válido.
var TopUpDenominations = []int64{50000, 100000, 250000, 500000, 1000000}

type Wallet struct {
	UserID    string    `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RevealStatus string

const (
	RevealHidden                  RevealStatus = "hidden"
	RevealGranted                 RevealStatus = "granted"
	RevealDeniedInsufficientFunds RevealStatus = "denied_insufficient_funds"
)

// RevealDecision es el resultado de un intento de revelación. Fondos
// insuficientes es un resultado esperado, no un error.
type RevealDecision struct {
	Status       RevealStatus     `json:"status"`
	NewBalance   int64            `json:"new_balance"`
	Contact      *ProviderContact `json:"contact,omitempty"`
	TopUpOptions []int64          `json:"topup_options,omitempty"`
}
