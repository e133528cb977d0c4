package repository

import (
	"context"

	"github.com/dcamposl/activos-api/internal/domain/entity"
)

// MovementRepository puerto de persistencia del ledger. Append-only: no hay
// Update ni Delete, el ledger es el rastro de auditoría.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context) ([]*entity.Movement, error)
}
