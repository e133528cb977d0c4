package repository

import (
	"context"

	"github.com/dcamposl/activos-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para activos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByProductID(ctx context.Context, productID string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
