package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordico-pos/internal/application/auth"
	"github.com/jhoicas/ordico-pos/internal/application/sale"
	"github.com/jhoicas/ordico-pos/internal/application/usecase"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	CartUC      *sale.CartUseCase
	CheckoutUC  *sale.CheckoutUseCase
	ReceiptsDir string
	JWTSecret   string
}

// Router registra las rutas de la API. El login es público; el resto exige
// Bearer Token. La gestión de catálogo, usuarios y categorías es solo admin;
// el flujo de venta lo opera cualquier usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo admin
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/register", adminOnly, authHandler.Register)

	// Products: lectura para todos, mutación e importación solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/count", productHandler.Count)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Post("/import", adminOnly, productHandler.Import)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/count", userHandler.Count)
	users.Put("/password", userHandler.UpdatePassword)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)

	// Categories (solo admin)
	categories := protected.Group("/categories", adminOnly)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/:id", categoryHandler.Delete)

	// Venta: carrito, checkout y tickets (cualquier usuario autenticado)
	saleHandler := NewSaleHandler(deps.CartUC, deps.CheckoutUC, deps.ReceiptsDir)
	cart := protected.Group("/cart")
	cart.Get("/", saleHandler.ViewCart)
	cart.Delete("/", saleHandler.ClearCart)
	cart.Post("/lines", saleHandler.AddLine)
	cart.Delete("/lines/:index", saleHandler.RemoveLine)
	protected.Post("/checkout", saleHandler.Checkout)
	protected.Get("/receipts/:number", saleHandler.DownloadReceipt)
}
