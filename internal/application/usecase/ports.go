package usecase

import (
	"context"

	"github.com/dcamposl/activos-api/internal/domain/entity"
	"github.com/dcamposl/activos-api/internal/domain/repository"
)

// Actor identidad resuelta por el gate de autenticación. Todas las
// mutaciones exigen un actor: no existe fallback a "admin".
type Actor struct {
	ID       string
	Username string
	Role     entity.Role
}

// InventoryTxRunner ejecuta un callback con repos de activos y ledger atados
// a una misma transacción.
type InventoryTxRunner interface {
	RunInventory(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error) error
}

// UserTxRunner ejecuta un callback con el repo de cuentas atado a una transacción.
type UserTxRunner interface {
	RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error
}
