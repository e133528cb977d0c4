package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcamposl/activos-api/internal/application/dto"
	"github.com/dcamposl/activos-api/internal/application/usecase"
	"github.com/dcamposl/activos-api/internal/domain"
	"github.com/dcamposl/activos-api/internal/domain/entity"
)

func newUserUC() (*usecase.UserUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	tx := &fakeTxRunner{users: users}
	return usecase.NewUserUseCase(users, tx), users
}

func TestUserCreate_HasheaPassword(t *testing.T) {
	uc, users := newUserUC()

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "mlopez", Password: "secreto123", Role: "USER",
	})
	require.NoError(t, err)
	assert.Equal(t, "mlopez", out.Username)
	assert.Equal(t, "USER", out.Role)

	stored, err := users.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserCreate_RolPorDefecto_USER(t *testing.T) {
	uc, _ := newUserUC()
	out, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "USER", out.Role)
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	uc, _ := newUserUC()
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserCreate_RolDesconocido(t *testing.T) {
	uc, _ := newUserUC()
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "x", Role: "SUPERROOT"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Password omitido en update: el hash almacenado queda intacto.
func TestUserUpdate_SinPassword_MantieneHash(t *testing.T) {
	uc, users := newUserUC()
	created, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "secreto123"})
	require.NoError(t, err)
	before, _ := users.GetByID(context.Background(), created.ID)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Username: "mlopez2"})
	require.NoError(t, err)

	after, _ := users.GetByID(context.Background(), created.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, "mlopez2", after.Username)
}

func TestUserUpdate_ConPassword_Rehashea(t *testing.T) {
	uc, users := newUserUC()
	created, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Password: "nuevo456"})
	require.NoError(t, err)

	after, _ := users.GetByID(context.Background(), created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("nuevo456")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("secreto123")))
}

func TestUserUpdate_NoEncontrado(t *testing.T) {
	uc, _ := newUserUC()
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Invariante estructural: siempre debe quedar al menos un ADMIN.
func TestUserDelete_UltimoAdmin_Rechazado(t *testing.T) {
	uc, users := newUserUC()
	admin, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "admin", Password: "admin123", Role: "ADMIN"})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), admin.ID)
	assert.ErrorIs(t, err, domain.ErrLastAdmin)

	stored, _ := users.GetByID(context.Background(), admin.ID)
	assert.NotNil(t, stored, "la cuenta debe seguir existiendo tras el rechazo")
}

func TestUserDelete_AdminConRespaldo_Permitido(t *testing.T) {
	uc, users := newUserUC()
	primero, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "admin", Password: "admin123", Role: "ADMIN"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateUserRequest{Username: "admin2", Password: "admin456", Role: "ADMIN"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), primero.ID))

	n, _ := users.CountByRole(context.Background(), entity.RoleAdmin)
	assert.Equal(t, 1, n)
}

func TestUserDelete_UsuarioNormal_NoAfectaInvariante(t *testing.T) {
	uc, _ := newUserUC()
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "admin", Password: "admin123", Role: "ADMIN"})
	require.NoError(t, err)
	normal, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "secreto123"})
	require.NoError(t, err)

	assert.NoError(t, uc.Delete(context.Background(), normal.ID))
}

func TestUserDelete_NoEncontrado(t *testing.T) {
	uc, _ := newUserUC()
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserList_ExcluyeHash(t *testing.T) {
	uc, _ := newUserUC()
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Username: "mlopez", Password: "secreto123"})
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	// UserResponse no tiene campo de password; verificar los datos visibles
	assert.Equal(t, "mlopez", list[0].Username)
	assert.NotEmpty(t, list[0].ID)
}
