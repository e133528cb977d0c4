package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dcamposl/activos-api/internal/application/dto"
	"github.com/dcamposl/activos-api/internal/domain"
	"github.com/dcamposl/activos-api/internal/domain/entity"
	"github.com/dcamposl/activos-api/internal/domain/repository"
	"github.com/dcamposl/activos-api/pkg/assetid"
	"github.com/dcamposl/activos-api/pkg/logger"
)

// ProductUseCase orquesta el ciclo de vida de los activos y deriva las
// entradas del ledger a partir de sus transiciones de estado.
type ProductUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	tx        InventoryTxRunner
	log       *logger.Logger
}

// NewProductUseCase construye el caso de uso de inventario.
func NewProductUseCase(products repository.ProductRepository, movements repository.MovementRepository, tx InventoryTxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, movements: movements, tx: tx, log: log}
}

// Create da de alta un activo y registra el movimiento Entrada. El alta del
// activo es la escritura primaria: si el append al ledger falla después, el
// alta se reporta como exitosa y el fallo queda en el log (sin rollback).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, actor Actor) (*dto.ProductResponse, error) {
	if actor.Username == "" {
		return nil, fmt.Errorf("%w: operación sin actor resuelto", domain.ErrInvalidInput)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	status, err := entity.ParseStatus(in.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		ProductID:      assetid.New(),
		Name:           in.Name,
		Description:    in.Description,
		Brand:          in.Brand,
		Model:          in.Model,
		SerialNumber:   optionalString(in.SerialNumber),
		Status:         status,
		Quantity:       in.Quantity.OrDefault(1),
		Price:          in.Price.NullDecimal,
		Category:       in.Category,
		Notes:          in.Notes,
		Location:       in.Location,
		PurchaseDate:   in.PurchaseDate.Ptr(),
		WarrantyExpiry: in.WarrantyExpiry.Ptr(),
		CreatedBy:      actor.Username,
		UpdatedBy:      actor.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}

	movement := &entity.Movement{
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Type:        entity.MovementEntrada,
		FromStatus:  nil,
		ToStatus:    product.Status,
		Quantity:    movementQuantity(product.Quantity),
		Notes:       fmt.Sprintf("Producto creado: %s", product.Name),
		Location:    product.Location,
		PerformedBy: actor.Username,
		CreatedAt:   now,
	}
	if err := uc.movements.Create(ctx, movement); err != nil {
		// Escritura secundaria: el activo ya quedó persistido, se reporta
		// éxito y el hueco de auditoría queda registrado.
		uc.log.Error().Err(err).
			Str("product_id", product.ProductID).
			Msg("alta persistida pero falló el registro en el ledger")
	}

	return dto.ToProductResponse(product), nil
}

// Update actualiza un activo. Solo un cambio de estado genera entrada en el
// ledger (Ajuste); una edición de campos sin transición no se audita.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, actor Actor) (*dto.ProductResponse, error) {
	if actor.Username == "" {
		return nil, fmt.Errorf("%w: operación sin actor resuelto", domain.ErrInvalidInput)
	}
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	previousStatus := product.Status
	if err := applyProductUpdate(product, in); err != nil {
		return nil, err
	}
	product.UpdatedBy = actor.Username
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}

	if product.Status != previousStatus {
		notes := ""
		if in.Notes != nil {
			notes = *in.Notes
		}
		if notes == "" {
			notes = fmt.Sprintf("Estado cambiado por %s", actor.Username)
		}
		from := previousStatus
		movement := &entity.Movement{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Type:        entity.MovementAjuste,
			FromStatus:  &from,
			ToStatus:    product.Status,
			Quantity:    movementQuantity(product.Quantity),
			Notes:       notes,
			Location:    product.Location,
			PerformedBy: actor.Username,
			CreatedAt:   product.UpdatedAt,
		}
		if err := uc.movements.Create(ctx, movement); err != nil {
			uc.log.Error().Err(err).
				Str("product_id", product.ProductID).
				Msg("actualización persistida pero falló el registro en el ledger")
		}
	}

	return dto.ToProductResponse(product), nil
}

// Delete elimina un activo. El movimiento Salida → "Eliminado" y el borrado
// se confirman en una misma transacción: el ledger es la única evidencia que
// sobrevive, así que debe quedar durable junto con el delete.
func (uc *ProductUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	if actor.Username == "" {
		return fmt.Errorf("%w: operación sin actor resuelto", domain.ErrInvalidInput)
	}
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	from := product.Status
	movement := &entity.Movement{
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Type:        entity.MovementSalida,
		FromStatus:  &from,
		ToStatus:    entity.StatusEliminado,
		Quantity:    movementQuantity(product.Quantity),
		Notes:       fmt.Sprintf("Producto eliminado por %s", actor.Username),
		Location:    product.Location,
		PerformedBy: actor.Username,
		CreatedAt:   time.Now(),
	}

	return uc.tx.RunInventory(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		if err := movements.Create(ctx, movement); err != nil {
			return err
		}
		return products.Delete(ctx, id)
	})
}

// GetByID obtiene un activo por su ID interno.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// GetByProductID obtiene un activo por su código de negocio (PROD-...).
func (uc *ProductUseCase) GetByProductID(ctx context.Context, productID string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// List lista los activos, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(products), nil
}

// applyProductUpdate aplica los campos presentes del request sobre la
// entidad, con la misma sanitización del alta.
func applyProductUpdate(p *entity.Product, in dto.UpdateProductRequest) error {
	if in.Name != nil {
		if *in.Name == "" {
			return fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.Model != nil {
		p.Model = *in.Model
	}
	if in.SerialNumber != nil {
		p.SerialNumber = optionalString(*in.SerialNumber)
	}
	if in.Status != nil {
		status, err := entity.ParseStatus(*in.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		p.Status = status
	}
	if in.Quantity != nil {
		p.Quantity = in.Quantity.OrDefault(p.Quantity)
	}
	if in.Price != nil {
		p.Price = in.Price.NullDecimal
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.PurchaseDate != nil {
		p.PurchaseDate = in.PurchaseDate.Ptr()
	}
	if in.WarrantyExpiry != nil {
		p.WarrantyExpiry = in.WarrantyExpiry.Ptr()
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// movementQuantity cantidad registrada en el ledger: mínimo 1, como en los
// registros históricos.
func movementQuantity(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}
