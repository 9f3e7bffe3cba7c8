package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/location"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
	"github.com/ateliergranit/parc-echafaudage/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	CatalogueUC *usecase.CatalogueUseCase
	ChantierUC  *usecase.ChantierUseCase
	MouvementUC *parc.MouvementUseCase
	StockUC     *parc.StockUseCase
	ClotureUC   *parc.ClotureUseCase
	ImportUC    *parc.ImportUseCase
	LocationUC  *location.UseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catalogue matériel
	catalogue := api.Group("/catalogue")
	catalogueHandler := NewCatalogueHandler(deps.CatalogueUC)
	catalogue.Post("/", catalogueHandler.Create)
	catalogue.Get("/", catalogueHandler.List)
	catalogue.Get("/:id", catalogueHandler.GetByID)
	catalogue.Put("/:id", catalogueHandler.Update)
	catalogue.Delete("/:id", catalogueHandler.Deactivate)

	// Journal de mouvements
	mouvements := api.Group("/mouvements")
	mouvementHandler := NewMouvementHandler(deps.MouvementUC)
	mouvements.Post("/", mouvementHandler.Register)
	mouvements.Get("/", mouvementHandler.List)

	// Vues de stock dérivées. Les routes fixes (hs, reconstruction) avant la
	// route paramétrée :articleId.
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/hs", stockHandler.ListHS)
	stock.Post("/reconstruction", stockHandler.Rebuild)
	stock.Get("/:articleId", stockHandler.GetByArticle)
	stock.Get("/:articleId/disponibilite", mouvementHandler.CheckAvailability)

	// Chantiers : cycle de vie, inventaire, clôture
	chantiers := api.Group("/chantiers")
	chantierHandler := NewChantierHandler(deps.ChantierUC, deps.ClotureUC)
	chantiers.Post("/", chantierHandler.Create)
	chantiers.Get("/", chantierHandler.List)
	chantiers.Get("/:id", chantierHandler.GetByID)
	chantiers.Get("/:id/inventaire", chantierHandler.Inventory)
	chantiers.Post("/:id/cloture", chantierHandler.Close)

	// Listes importées (bons de livraison / retour)
	listes := api.Group("/listes")
	listeHandler := NewListeHandler(deps.ImportUC)
	listes.Post("/livraison", listeHandler.ImportDelivery)
	listes.Post("/retour", listeHandler.ImportReturn)

	// Locations Layher
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Post("/:id/retour", locationHandler.Return)
}
