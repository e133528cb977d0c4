package dto

import (
	"time"

	"github.com/dcamposl/activos-api/internal/domain/entity"
)

// MovementResponse salida de una entrada del ledger.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"movementType"`
	FromStatus  *string   `json:"fromStatus"`
	ToStatus    string    `json:"toStatus"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	Location    string    `json:"location,omitempty"`
	PerformedBy string    `json:"performedBy"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToMovementResponse convierte la entidad a su representación HTTP.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	var from *string
	if m.FromStatus != nil {
		s := string(*m.FromStatus)
		from = &s
	}
	return &MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        string(m.Type),
		FromStatus:  from,
		ToStatus:    string(m.ToStatus),
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		Location:    m.Location,
		PerformedBy: m.PerformedBy,
		Timestamp:   m.CreatedAt,
	}
}

// ToMovementResponses convierte una lista de entidades.
func ToMovementResponses(list []*entity.Movement) []*MovementResponse {
	out := make([]*MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out
}
