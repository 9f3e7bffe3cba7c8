package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/location"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
	"github.com/ateliergranit/parc-echafaudage/internal/application/usecase"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/infrastructure/memoire"
	apphttp "github.com/ateliergranit/parc-echafaudage/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de bout en bout de la couche HTTP sur le store mémoire : routage,
// codes de statut et corps d'erreur, sans base de données.
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	store := memoire.NewStore()
	articles := memoire.NewArticleRepository(store)
	mouvements := memoire.NewMouvementRepository(store)
	stock := memoire.NewStockRepository(store)
	stockChantier := memoire.NewStockChantierRepository(store)
	locations := memoire.NewLocationRepository(store)
	chantiers := memoire.NewChantierRepository(store)
	tx := memoire.NewTxRunner(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogueUC: usecase.NewCatalogueUseCase(articles),
		ChantierUC:  usecase.NewChantierUseCase(chantiers, stockChantier, articles),
		MouvementUC: parc.NewMouvementUseCase(tx, articles, stock, mouvements),
		StockUC:     parc.NewStockUseCase(tx, articles, stock),
		ClotureUC:   parc.NewClotureUseCase(tx, chantiers),
		ImportUC:    parc.NewImportUseCase(tx, articles, chantiers),
		LocationUC:  location.NewUseCase(tx, articles, locations),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func creerArticle(t *testing.T, app *fiber.App) dto.ArticleResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/catalogue", dto.CreateArticleRequest{
		Reference:   "MV-200",
		Designation: "Montant vertical 2m",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ArticleResponse](t, resp)
}

func TestCatalogue_CreationEtDoublon(t *testing.T) {
	app := buildTestApp()

	a := creerArticle(t, app)
	assert.Equal(t, "MV-200", a.Reference)

	resp := doJSON(t, app, http.MethodPost, "/api/catalogue", dto.CreateArticleRequest{
		Reference: "MV-200", Designation: "Doublon",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	erreur := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", erreur.Code)
}

func TestMouvements_SortieRefuseeEn409(t *testing.T) {
	app := buildTestApp()
	a := creerArticle(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/mouvements", dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementEntree, Quantite: 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/mouvements", dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementSortie, Quantite: 11,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	erreur := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "STOCK_INSUFFISANT", erreur.Code)
	require.Len(t, erreur.Lignes, 1)
	assert.Equal(t, 1, erreur.Lignes[0].Manquante)
}

func TestStock_RoutesFixesAvantParametree(t *testing.T) {
	app := buildTestApp()
	a := creerArticle(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/mouvements", dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementEntree, Quantite: 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// /api/stock/hs ne doit pas être avalé par /api/stock/:articleId.
	resp = doJSON(t, app, http.MethodGet, "/api/stock/hs", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/stock/"+a.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[dto.StockGlobalDTO](t, resp)
	assert.Equal(t, 10, s.QuantiteDisponible)

	resp = doJSON(t, app, http.MethodGet, "/api/stock/"+a.ID+"/disponibilite?quantite=4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d := decode[dto.DisponibiliteDTO](t, resp)
	assert.True(t, d.Disponible)
}

func TestImport_LigneFautiveEn400AvecDetail(t *testing.T) {
	app := buildTestApp()
	creerArticle(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/chantiers", dto.CreateChantierRequest{Nom: "Chantier Cathédrale"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	c := decode[dto.ChantierResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/listes/livraison", dto.ImportLivraisonRequest{
		ChantierID: c.ID,
		Lignes: []dto.LigneImport{
			{Reference: "MV-200", Quantite: 5}, // stock vide
			{Reference: "FANTOME", Quantite: 2},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	erreur := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", erreur.Code)
	assert.NotEmpty(t, erreur.Lignes)
}

func TestLocation_CycleComplet(t *testing.T) {
	app := buildTestApp()
	a := creerArticle(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/mouvements", dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementEntree, Quantite: 20,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/locations", dto.CreerLocationRequest{
		ArticleID: a.ID, Quantite: 15, NumeroCommande: "LAY-7741",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	loc := decode[dto.LocationResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/locations/"+loc.ID+"/retour", dto.RetourLocationRequest{Quantite: 15})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	apres := decode[dto.LocationResponse](t, resp)
	assert.Equal(t, entity.LocationRetournee, apres.Statut)

	// Le statut est terminal : un second retour répond 409.
	resp = doJSON(t, app, http.MethodPost, "/api/locations/"+loc.ID+"/retour", dto.RetourLocationRequest{Quantite: 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
