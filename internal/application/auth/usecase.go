package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcamposl/activos-api/internal/application/dto"
	"github.com/dcamposl/activos-api/internal/domain"
	"github.com/dcamposl/activos-api/internal/domain/entity"
	"github.com/dcamposl/activos-api/internal/domain/repository"
	"github.com/dcamposl/activos-api/pkg/jwt"
	"github.com/dcamposl/activos-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SeedConfig credenciales del administrador por defecto.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

// AuthUseCase casos de uso de autenticación: login y siembra del admin inicial.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password y genera el token de sesión. Usuario
// inexistente y password incorrecto responden igual (ErrUnauthorized): no se
// revela cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}, nil
}

// EnsureDefaultAdmin siembra la cuenta ADMIN inicial si no existe ninguna.
// Se ejecuta en el arranque; las credenciales sembradas deben rotarse en
// cualquier despliegue real.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, seed SeedConfig) error {
	count, err := uc.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     seed.AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	uc.log.Warn().
		Str("username", seed.AdminUsername).
		Msg("admin por defecto creado, rotar credenciales de inmediato")
	return nil
}
