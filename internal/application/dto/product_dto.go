package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcamposl/activos-api/internal/domain/entity"
)

// CreateProductRequest entrada para dar de alta un activo. Solo name es
// obligatorio; los campos opcionales toleran "" y valores malformados.
type CreateProductRequest struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Brand          string      `json:"brand"`
	Model          string      `json:"model"`
	SerialNumber   string      `json:"serialNumber"`
	Status         string      `json:"status"`
	Quantity       Quantity    `json:"quantity"`
	Price          NullDecimal `json:"price"`
	Category       string      `json:"category"`
	Notes          string      `json:"notes"`
	Location       string      `json:"location"`
	PurchaseDate   NullDate    `json:"purchaseDate"`
	WarrantyExpiry NullDate    `json:"warrantyExpiry"`
}

// UpdateProductRequest entrada para actualizar un activo. Campos punteros:
// un campo omitido deja el valor almacenado intacto.
type UpdateProductRequest struct {
	Name           *string      `json:"name"`
	Description    *string      `json:"description"`
	Brand          *string      `json:"brand"`
	Model          *string      `json:"model"`
	SerialNumber   *string      `json:"serialNumber"`
	Status         *string      `json:"status"`
	Quantity       *Quantity    `json:"quantity"`
	Price          *NullDecimal `json:"price"`
	Category       *string      `json:"category"`
	Notes          *string      `json:"notes"`
	Location       *string      `json:"location"`
	PurchaseDate   *NullDate    `json:"purchaseDate"`
	WarrantyExpiry *NullDate    `json:"warrantyExpiry"`
}

// ProductResponse salida de un activo.
type ProductResponse struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"productId"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Brand          string           `json:"brand,omitempty"`
	Model          string           `json:"model,omitempty"`
	SerialNumber   *string          `json:"serialNumber,omitempty"`
	Status         string           `json:"status"`
	Quantity       int              `json:"quantity"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Category       string           `json:"category,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	Location       string           `json:"location,omitempty"`
	PurchaseDate   *time.Time       `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time       `json:"warrantyExpiry,omitempty"`
	CreatedBy      string           `json:"createdBy"`
	UpdatedBy      string           `json:"updatedBy,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ToProductResponse convierte la entidad a su representación HTTP.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	var price *decimal.Decimal
	if p.Price.Valid {
		d := p.Price.Decimal
		price = &d
	}
	return &ProductResponse{
		ID:             p.ID,
		ProductID:      p.ProductID,
		Name:           p.Name,
		Description:    p.Description,
		Brand:          p.Brand,
		Model:          p.Model,
		SerialNumber:   p.SerialNumber,
		Status:         string(p.Status),
		Quantity:       p.Quantity,
		Price:          price,
		Category:       p.Category,
		Notes:          p.Notes,
		Location:       p.Location,
		PurchaseDate:   p.PurchaseDate,
		WarrantyExpiry: p.WarrantyExpiry,
		CreatedBy:      p.CreatedBy,
		UpdatedBy:      p.UpdatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductResponses convierte una lista de entidades.
func ToProductResponses(list []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
