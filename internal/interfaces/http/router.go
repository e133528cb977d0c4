package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcamposl/activos-api/internal/application/auth"
	"github.com/dcamposl/activos-api/internal/application/usecase"
	"github.com/dcamposl/activos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	UserUC     *usecase.UserUseCase
	MovementUC *usecase.MovementUseCase
	Users      UserFinder
	JWTSecret  string
}

// Router registra las rutas de la API. Toda ruta no pública pasa por
// Authorize; las mutaciones de activos y cuentas exigen ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	anyUser := Authorize(deps.Users, deps.JWTSecret)
	adminOnly := Authorize(deps.Users, deps.JWTSecret, entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Products: lectura para cualquier autenticado, mutación solo ADMIN
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", anyUser, productHandler.List)
	products.Get("/code/:productId", anyUser, productHandler.GetByCode)
	products.Get("/:id/qr", anyUser, productHandler.QRLabel)
	products.Get("/:id", anyUser, productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Users (solo ADMIN)
	users := api.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Movements: ledger de auditoría (solo ADMIN)
	movementHandler := NewMovementHandler(deps.MovementUC)
	api.Get("/movements", adminOnly, movementHandler.List)
}
