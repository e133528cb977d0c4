package entity

import "time"

// MovementType tipo de movimiento registrado en el ledger.
type MovementType string

const (
	MovementEntrada       MovementType = "Entrada"
	MovementSalida        MovementType = "Salida"
	MovementTransferencia MovementType = "Transferencia"
	MovementAjuste        MovementType = "Ajuste"
)

// Movement entrada inmutable del ledger de auditoría. Referencia al activo
// por su código de negocio (ProductID), por lo que sobrevive al borrado del
// activo. El sistema nunca actualiza ni elimina movimientos.
type Movement struct {
	ID          string
	ProductID   string
	ProductName string
	Type        MovementType
	FromStatus  *Status // nil en la entrada inicial (alta del activo)
	ToStatus    Status
	Quantity    int
	Notes       string
	Location    string
	PerformedBy string
	CreatedAt   time.Time
}
