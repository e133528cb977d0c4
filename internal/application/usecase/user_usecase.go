package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcamposl/activos-api/internal/application/dto"
	"github.com/dcamposl/activos-api/internal/domain"
	"github.com/dcamposl/activos-api/internal/domain/entity"
	"github.com/dcamposl/activos-api/internal/domain/repository"
)

// UserUseCase CRUD de cuentas con el invariante de último administrador.
type UserUseCase struct {
	users repository.UserRepository
	tx    UserTxRunner
}

// NewUserUseCase construye el caso de uso de cuentas.
func NewUserUseCase(users repository.UserRepository, tx UserTxRunner) *UserUseCase {
	return &UserUseCase{users: users, tx: tx}
}

// Create crea una cuenta. Username duplicado → ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	existing, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// GetByID obtiene una cuenta (hash excluido).
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

// List lista las cuentas, más recientes primero (hash excluido).
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(users), nil
}

// Update actualiza una cuenta. Password vacío deja el hash almacenado
// intacto; uno nuevo se re-hashea con el mismo primitivo del alta.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Role != "" {
		role, err := entity.ParseRole(in.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		user.Role = role
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Delete elimina una cuenta. Si la cuenta es ADMIN y es la única, la
// operación se rechaza con ErrLastAdmin. El conteo y el borrado corren en la
// misma transacción para cerrar la ventana de carrera entre ambos.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunUsers(ctx, func(users repository.UserRepository) error {
		user, err := users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if user.Role == entity.RoleAdmin {
			count, err := users.CountByRole(ctx, entity.RoleAdmin)
			if err != nil {
				return err
			}
			if count <= 1 {
				return domain.ErrLastAdmin
			}
		}
		return users.Delete(ctx, id)
	})
}
