package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status estado de custodia de un activo.
type Status string

const (
	StatusEnCampo  Status = "En campo"
	StatusBodega   Status = "Bodega"
	StatusEntrega  Status = "Entrega a recepción"
	StatusPrestado Status = "Prestado"

	// StatusEliminado existe solo en el ledger de movimientos como estado
	// terminal de un activo borrado. Nunca es un estado vivo de Product.
	StatusEliminado Status = "Eliminado"
)

// ParseStatus valida un estado de custodia. Vacío equivale a Bodega.
// StatusEliminado no es aceptado como entrada.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusEnCampo, StatusBodega, StatusEntrega, StatusPrestado:
		return Status(s), nil
	case "":
		return StatusBodega, nil
	default:
		return "", fmt.Errorf("estado desconocido: %q", s)
	}
}

// Product representa un activo físico del inventario.
// ProductID es el código de negocio (PROD-...), único; SerialNumber también
// es único cuando está presente.
type Product struct {
	ID             string
	ProductID      string
	Name           string
	Description    string
	Brand          string
	Model          string
	SerialNumber   *string
	Status         Status
	Quantity       int
	Price          decimal.NullDecimal
	Category       string
	Notes          string
	Location       string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
