package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/ordico-pos/internal/application/auth"
	"github.com/jhoicas/ordico-pos/internal/application/sale"
	"github.com/jhoicas/ordico-pos/internal/application/usecase"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	infrapdf "github.com/jhoicas/ordico-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/ordico-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ordico-pos/internal/interfaces/http"
	"github.com/jhoicas/ordico-pos/pkg/config"
	"github.com/jhoicas/ordico-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)

	// Venta: carrito en memoria + checkout transaccional + ticket PDF
	company := entity.Company{
		Name:    cfg.Company.Name,
		TaxID:   cfg.Company.TaxID,
		Address: cfg.Company.Address,
	}
	carts := sale.NewManager()
	emitter := sale.NewReceiptEmitter(infrapdf.NewTicketGenerator(), cfg.Receipts.Dir)
	cartUC := sale.NewCartUseCase(carts, productRepo)
	checkoutUC := sale.NewCheckoutUseCase(carts, txRunner, emitter, company)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (si docs/swagger.json
	// fue generado; sin el archivo la API arranca sin documentación)
	if mw := httpRouter.SwaggerMiddleware("./docs/swagger.json", cfg.App.Name); mw != nil {
		app.Use(mw)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		CartUC:      cartUC,
		CheckoutUC:  checkoutUC,
		ReceiptsDir: cfg.Receipts.Dir,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
