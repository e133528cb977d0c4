package usecase

import (
	"context"

	"github.com/dcamposl/activos-api/internal/application/dto"
	"github.com/dcamposl/activos-api/internal/domain/repository"
)

// MovementUseCase lectura del ledger de auditoría. No existe superficie de
// actualización ni borrado: el ledger solo crece.
type MovementUseCase struct {
	movements repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso del ledger.
func NewMovementUseCase(movements repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{movements: movements}
}

// List lista los movimientos, más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context) ([]*dto.MovementResponse, error) {
	movements, err := uc.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToMovementResponses(movements), nil
}
