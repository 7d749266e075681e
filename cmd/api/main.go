package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/eventos-api/internal/application/auth"
	apporder "github.com/tu-usuario/eventos-api/internal/application/order"
	"github.com/tu-usuario/eventos-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/eventos-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/eventos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/eventos-api/internal/interfaces/http"
	"github.com/tu-usuario/eventos-api/pkg/config"
	"github.com/tu-usuario/eventos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	guestRepo := postgres.NewGuestRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, vendorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, orderRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, userRepo)
	catalogUC := usecase.NewCatalogUseCase(itemRepo, vendorRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, itemRepo, vendorRepo)
	guestUC := usecase.NewGuestUseCase(guestRepo)

	orderUC := apporder.NewOrderUseCase(orderRepo, itemRepo, vendorRepo)
	createOrderUC := apporder.NewCreateOrderUseCase(txRunner)

	// PDF: comprobante de orden descargable
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := apporder.NewReceiptUseCase(orderRepo, userRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Eventos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		VendorUC:  vendorUC,
		CatalogUC: catalogUC,
		CartUC:    cartUC,
		GuestUC:   guestUC,
		OrderUC:   orderUC,
		CreateUC:  createOrderUC,
		ReceiptUC: receiptUC,
		JWTSecret: cfg.JWT.Secret,
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
