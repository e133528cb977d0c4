package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dcamposl/activos-api/internal/application/dto"
	"github.com/dcamposl/activos-api/internal/application/usecase"
	"github.com/dcamposl/activos-api/internal/domain/entity"
	pkgjwt "github.com/dcamposl/activos-api/pkg/jwt"
)

// LocalActor clave de Locals donde el gate deja la identidad resuelta.
const LocalActor = "actor"

// UserFinder contrato mínimo que necesita el gate para resolver el sujeto
// del token contra el almacén de cuentas. Lo implementa el UserRepository;
// la interfaz evita acoplar el middleware a la capa de persistencia.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// Authorize es el único punto de enforcement de auth: valida el Bearer
// token, re-resuelve el sujeto contra el almacén de cuentas (una cuenta
// borrada pierde acceso de inmediato aunque su token siga vigente) y, si se
// indican roles, exige pertenencia. Sin roles = cualquier identidad
// autenticada. En éxito deja el Actor en c.Locals.
func Authorize(users UserFinder, jwtSecret string, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token no proporcionado"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token no proporcionado"})
		}

		claims, err := pkgjwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, pkgjwt.ErrExpired) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Token expirado"})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Token inválido"})
		}

		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error de autenticación"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Usuario no encontrado"})
		}

		if len(roles) > 0 && !roleAllowed(user.Role, roles) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "No tienes permisos"})
		}

		c.Locals(LocalActor, usecase.Actor{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		return c.Next()
	}
}

func roleAllowed(role entity.Role, allowed []entity.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// GetActor devuelve la identidad resuelta por Authorize.
func GetActor(c *fiber.Ctx) usecase.Actor {
	v := c.Locals(LocalActor)
	if v == nil {
		return usecase.Actor{}
	}
	actor, _ := v.(usecase.Actor)
	return actor
}
