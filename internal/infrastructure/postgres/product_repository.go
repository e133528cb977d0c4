package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcamposl/activos-api/internal/domain"
	"github.com/dcamposl/activos-api/internal/domain/entity"
	"github.com/dcamposl/activos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, product_id, name, description, brand, model, serial_number, status,
	quantity, price, category, notes, location, purchase_date, warranty_expiry,
	created_by, updated_by, created_at, updated_at`

// Create persiste un nuevo activo. Una violación del UNIQUE de product_id o
// serial_number se reporta como ErrDuplicate, nunca sobrescribe.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, product_id, name, description, brand, model, serial_number, status,
			quantity, price, category, notes, location, purchase_date, warranty_expiry,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ProductID, p.Name, p.Description, p.Brand, p.Model, p.SerialNumber, p.Status,
		p.Quantity, p.Price, p.Category, p.Notes, p.Location, p.PurchaseDate, p.WarrantyExpiry,
		p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por su ID interno.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetByProductID obtiene un activo por su código de negocio (PROD-...).
func (r *ProductRepo) GetByProductID(ctx context.Context, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, productID), "get product by code")
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.ProductID, &p.Name, &p.Description, &p.Brand, &p.Model, &p.SerialNumber, &p.Status,
		&p.Quantity, &p.Price, &p.Category, &p.Notes, &p.Location, &p.PurchaseDate, &p.WarrantyExpiry,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// List lista todos los activos, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.ProductID, &p.Name, &p.Description, &p.Brand, &p.Model, &p.SerialNumber, &p.Status,
			&p.Quantity, &p.Price, &p.Category, &p.Notes, &p.Location, &p.PurchaseDate, &p.WarrantyExpiry,
			&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un activo.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, brand = $4, model = $5, serial_number = $6,
			status = $7, quantity = $8, price = $9, category = $10, notes = $11, location = $12,
			purchase_date = $13, warranty_expiry = $14, updated_by = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Brand, p.Model, p.SerialNumber,
		p.Status, p.Quantity, p.Price, p.Category, p.Notes, p.Location,
		p.PurchaseDate, p.WarrantyExpiry, p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un activo por ID (hard delete; el ledger conserva la evidencia).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
