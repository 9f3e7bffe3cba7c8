package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ateliergranit/parc-echafaudage/internal/application/location"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
	"github.com/ateliergranit/parc-echafaudage/internal/application/usecase"
	"github.com/ateliergranit/parc-echafaudage/internal/infrastructure/postgres"
	httpRouter "github.com/ateliergranit/parc-echafaudage/internal/interfaces/http"
	"github.com/ateliergranit/parc-echafaudage/pkg/config"
	"github.com/ateliergranit/parc-echafaudage/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	articleRepo := postgres.NewArticleRepository(pool)
	mouvementRepo := postgres.NewMouvementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	stockChantierRepo := postgres.NewStockChantierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	chantierRepo := postgres.NewChantierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogueUC := usecase.NewCatalogueUseCase(articleRepo)
	chantierUC := usecase.NewChantierUseCase(chantierRepo, stockChantierRepo, articleRepo)
	mouvementUC := parc.NewMouvementUseCase(txRunner, articleRepo, stockRepo, mouvementRepo)
	stockUC := parc.NewStockUseCase(txRunner, articleRepo, stockRepo)
	clotureUC := parc.NewClotureUseCase(txRunner, chantierRepo)
	importUC := parc.NewImportUseCase(txRunner, articleRepo, chantierRepo)
	locationUC := location.NewUseCase(txRunner, articleRepo, locationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Parc Échafaudage API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogueUC: catalogueUC,
		ChantierUC:  chantierUC,
		MouvementUC: mouvementUC,
		StockUC:     stockUC,
		ClotureUC:   clotureUC,
		ImportUC:    importUC,
		LocationUC:  locationUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
