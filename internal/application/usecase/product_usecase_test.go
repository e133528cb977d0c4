package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcamposl/activos-api/internal/application/dto"
	"github.com/dcamposl/activos-api/internal/application/usecase"
	"github.com/dcamposl/activos-api/internal/domain"
	"github.com/dcamposl/activos-api/internal/domain/entity"
)

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo()
	movements := newFakeMovementRepo()
	tx := &fakeTxRunner{products: products, movements: movements}
	return usecase.NewProductUseCase(products, movements, tx, testLogger()), products, movements
}

// Alta de activo: defaults, actor estampado y exactamente un movimiento Entrada.
func TestProductCreate_RegistraEntrada(t *testing.T) {
	uc, _, movements := newProductUC()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, testActor())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^PROD-[0-9A-Z]+-[0-9A-Z]+$`), out.ProductID)
	assert.Equal(t, "Bodega", out.Status, "sin estado explícito el alta entra a Bodega")
	assert.Equal(t, 1, out.Quantity, "cantidad por defecto es 1")
	assert.Equal(t, "jperez", out.CreatedBy)
	assert.Nil(t, out.Price, "sin precio el campo queda ausente")

	list, err := movements.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1, "el alta produce exactamente un movimiento")
	m := list[0]
	assert.Equal(t, entity.MovementEntrada, m.Type)
	assert.Nil(t, m.FromStatus, "la Entrada inicial no tiene estado previo")
	assert.Equal(t, entity.StatusBodega, m.ToStatus)
	assert.Equal(t, out.ProductID, m.ProductID)
	assert.Equal(t, "jperez", m.PerformedBy)
}

func TestProductCreate_SinNombre_Rechazado(t *testing.T) {
	uc, _, _ := newProductUC()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{}, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_EstadoDesconocido_Rechazado(t *testing.T) {
	uc, _, _ := newProductUC()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router", Status: "Perdido"}, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una mutación sin actor resuelto es un error de programación, no un
// fallback silencioso a admin.
func TestProductCreate_SinActor_Rechazado(t *testing.T) {
	uc, _, _ := newProductUC()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, usecase.Actor{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Contrato de fallo parcial: si el ledger falla después de persistir el
// activo, el alta se reporta exitosa igual (sin rollback).
func TestProductCreate_FalloDeLedger_NoRevierteElAlta(t *testing.T) {
	products := newFakeProductRepo()
	movements := newFakeMovementRepo()
	movements.createErr = errors.New("ledger caído")
	tx := &fakeTxRunner{products: products, movements: movements}
	uc := usecase.NewProductUseCase(products, movements, tx, testLogger())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, testActor())
	require.NoError(t, err, "el alta del activo es la escritura primaria")

	stored, err := products.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

// Cambio de estado A→B: exactamente un movimiento Ajuste {from: A, to: B}.
func TestProductUpdate_CambioDeEstado_RegistraAjuste(t *testing.T) {
	uc, _, movements := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, testActor())
	require.NoError(t, err)

	status := "Prestado"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Status: &status}, testActor())
	require.NoError(t, err)

	list, _ := movements.List(context.Background())
	require.Len(t, list, 2, "Entrada del alta + Ajuste del cambio")
	m := list[0]
	assert.Equal(t, entity.MovementAjuste, m.Type)
	require.NotNil(t, m.FromStatus)
	assert.Equal(t, entity.StatusBodega, *m.FromStatus)
	assert.Equal(t, entity.StatusPrestado, m.ToStatus)
	assert.Equal(t, "Estado cambiado por jperez", m.Notes,
		"sin nota del caller se genera una nombrando al actor")
}

func TestProductUpdate_NotaDelCaller_SeRespeta(t *testing.T) {
	uc, _, movements := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, testActor())
	require.NoError(t, err)

	status := "En campo"
	notes := "instalado en sede norte"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Status: &status, Notes: &notes}, testActor())
	require.NoError(t, err)

	list, _ := movements.List(context.Background())
	assert.Equal(t, "instalado en sede norte", list[0].Notes)
}

// El ledger audita transiciones, no ediciones: sin cambio de estado no hay movimiento.
func TestProductUpdate_SinCambioDeEstado_NoRegistraMovimiento(t *testing.T) {
	uc, _, movements := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, testActor())
	require.NoError(t, err)

	brand := "Cisco"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Brand: &brand}, testActor())
	require.NoError(t, err)
	assert.Equal(t, "Cisco", out.Brand)
	assert.Equal(t, "jperez", out.UpdatedBy)

	list, _ := movements.List(context.Background())
	assert.Len(t, list, 1, "solo la Entrada del alta")
}

func TestProductUpdate_NoEncontrado(t *testing.T) {
	uc, _, _ := newProductUC()
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{}, testActor())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CampoOmitido_NoSeToca(t *testing.T) {
	uc, _, _ := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Router",
		Brand:    "Cisco",
		Location: "Bodega central",
	}, testActor())
	require.NoError(t, err)

	model := "RV340"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Model: &model}, testActor())
	require.NoError(t, err)
	assert.Equal(t, "Cisco", out.Brand)
	assert.Equal(t, "Bodega central", out.Location)
	assert.Equal(t, "RV340", out.Model)
}

// Borrado: el movimiento Salida → "Eliminado" sobrevive aunque el activo ya no exista.
func TestProductDelete_RegistraSalidaYElimina(t *testing.T) {
	uc, products, movements := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, testActor())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID, testActor()))

	stored, err := products.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored, "el borrado es hard delete")

	list, _ := movements.List(context.Background())
	require.Len(t, list, 2)
	m := list[0]
	assert.Equal(t, entity.MovementSalida, m.Type)
	require.NotNil(t, m.FromStatus)
	assert.Equal(t, entity.StatusBodega, *m.FromStatus)
	assert.Equal(t, entity.StatusEliminado, m.ToStatus)
	assert.Equal(t, created.ProductID, m.ProductID, "el ledger conserva el código del activo borrado")
	assert.Equal(t, "Producto eliminado por jperez", m.Notes)
}

func TestProductDelete_NoEncontrado(t *testing.T) {
	uc, _, _ := newProductUC()
	err := uc.Delete(context.Background(), "no-existe", testActor())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByProductID(t *testing.T) {
	uc, _, _ := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Router"}, testActor())
	require.NoError(t, err)

	out, err := uc.GetByProductID(context.Background(), created.ProductID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	_, err = uc.GetByProductID(context.Background(), "PROD-XXXX-YYYY")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
