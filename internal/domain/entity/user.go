package entity

import (
	"fmt"
	"time"
)

// Role rol de un usuario. Enumeración cerrada: ADMIN o USER.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole valida un rol recibido como string. Vacío equivale a USER.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser, "":
		return RoleUser, nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca se serializa hacia el cliente
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
