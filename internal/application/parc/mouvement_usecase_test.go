package parc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
	"github.com/ateliergranit/parc-echafaudage/internal/application/usecase"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
	"github.com/ateliergranit/parc-echafaudage/internal/infrastructure/memoire"
)

// ──────────────────────────────────────────────────────────────────────────────
// Banc d'essai : la pile complète des cas d'usage sur le store mémoire, qui
// reproduit la sémantique PostgreSQL (rollback sur erreur, clés d'idempotence
// uniques, lignes de stock à zéro par défaut).
// ──────────────────────────────────────────────────────────────────────────────

type banc struct {
	store       *memoire.Store
	articles    *memoire.ArticleRepo
	mouvements  *memoire.MouvementRepo
	stock       *memoire.StockRepo
	chantiers   *memoire.ChantierRepo
	mouvementUC *parc.MouvementUseCase
	stockUC     *parc.StockUseCase
	clotureUC   *parc.ClotureUseCase
	importUC    *parc.ImportUseCase
	catalogueUC *usecase.CatalogueUseCase
	chantierUC  *usecase.ChantierUseCase
}

func nouveauBanc(t *testing.T) *banc {
	t.Helper()
	store := memoire.NewStore()
	articles := memoire.NewArticleRepository(store)
	mouvements := memoire.NewMouvementRepository(store)
	stock := memoire.NewStockRepository(store)
	stockChantier := memoire.NewStockChantierRepository(store)
	chantiers := memoire.NewChantierRepository(store)
	tx := memoire.NewTxRunner(store)

	return &banc{
		store:       store,
		articles:    articles,
		mouvements:  mouvements,
		stock:       stock,
		chantiers:   chantiers,
		mouvementUC: parc.NewMouvementUseCase(tx, articles, stock, mouvements),
		stockUC:     parc.NewStockUseCase(tx, articles, stock),
		clotureUC:   parc.NewClotureUseCase(tx, chantiers),
		importUC:    parc.NewImportUseCase(tx, articles, chantiers),
		catalogueUC: usecase.NewCatalogueUseCase(articles),
		chantierUC:  usecase.NewChantierUseCase(chantiers, stockChantier, articles),
	}
}

func (b *banc) article(t *testing.T, reference string) *dto.ArticleResponse {
	t.Helper()
	a, err := b.catalogueUC.Creer(dto.CreateArticleRequest{
		Reference:   reference,
		Designation: "Montant vertical 2m",
	})
	require.NoError(t, err)
	return a
}

func (b *banc) chantier(t *testing.T) *dto.ChantierResponse {
	t.Helper()
	c, err := b.chantierUC.Creer(dto.CreateChantierRequest{Nom: "Chantier Cathédrale"})
	require.NoError(t, err)
	return c
}

func (b *banc) mouvement(t *testing.T, in dto.EnregistrerMouvementRequest) *dto.MouvementResponse {
	t.Helper()
	out, err := b.mouvementUC.Enregistrer(context.Background(), in)
	require.NoError(t, err)
	return out
}

func (b *banc) entree(t *testing.T, articleID string, q int) {
	t.Helper()
	b.mouvement(t, dto.EnregistrerMouvementRequest{ArticleID: articleID, Type: entity.MouvementEntree, Quantite: q})
}

// journal renvoie toutes les écritures, du plus ancien au plus récent.
func (b *banc) journal(t *testing.T) []*entity.Mouvement {
	t.Helper()
	var out []*entity.Mouvement
	require.NoError(t, b.mouvements.ForEach(func(m *entity.Mouvement) error {
		out = append(out, m)
		return nil
	}))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Enregistrement des mouvements
// ──────────────────────────────────────────────────────────────────────────────

func TestEnregistrer_EntreePuisSortie(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")
	c := b.chantier(t)

	b.entree(t, a.ID, 100)
	out := b.mouvement(t, dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementSortie, Quantite: 30, ChantierID: c.ID,
	})

	assert.Equal(t, 70, out.Stock.QuantiteDisponible)
	assert.Equal(t, 30, out.Stock.QuantiteSurChantier)
	assert.Equal(t, 100, out.Stock.QuantiteTotale)
	assert.Equal(t, "MV-200", out.Stock.Reference)
	assert.Len(t, b.journal(t), 2)
}

func TestEnregistrer_QuantiteInvalide(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")

	_, err := b.mouvementUC.Enregistrer(context.Background(), dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementEntree, Quantite: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = b.mouvementUC.Enregistrer(context.Background(), dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: "teleportation", Quantite: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnregistrer_ArticleInconnu(t *testing.T) {
	b := nouveauBanc(t)
	_, err := b.mouvementUC.Enregistrer(context.Background(), dto.EnregistrerMouvementRequest{
		ArticleID: "inexistant", Type: entity.MouvementEntree, Quantite: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La garde refuse une sortie qui excède le disponible, et le refus ne laisse
// aucune trace : ni écriture au journal, ni projection modifiée.
func TestEnregistrer_GardeDisponibilite(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")
	c := b.chantier(t)
	b.entree(t, a.ID, 10)

	_, err := b.mouvementUC.Enregistrer(context.Background(), dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementSortie, Quantite: 11, ChantierID: c.ID,
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 11, stockErr.Demandee)
	assert.Equal(t, 10, stockErr.Disponible)
	assert.Equal(t, 1, stockErr.Manquante())

	assert.Len(t, b.journal(t), 1, "le refus ne s'écrit pas au journal")
	s, err := b.stock.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, s.QuantiteDisponible, "la projection reste intacte")
}

// La garde contrôle le compartiment réellement débité, pas systématiquement
// le disponible : une réparation est bornée par le pool HS.
func TestEnregistrer_GardeSurCompartimentDebite(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")
	b.entree(t, a.ID, 100)
	b.mouvement(t, dto.EnregistrerMouvementRequest{ArticleID: a.ID, Type: entity.MouvementHS, Quantite: 5})

	_, err := b.mouvementUC.Enregistrer(context.Background(), dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementReparation, Quantite: 6,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"95 disponibles mais 5 HS seulement : la réparation de 6 est refusée")

	out := b.mouvement(t, dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementReparation, Quantite: 5,
	})
	assert.Equal(t, 0, out.Stock.QuantiteHS)
	assert.Equal(t, 100, out.Stock.QuantiteDisponible)
}

// Rejouer un mouvement avec la même clé d'idempotence échoue en ErrDuplicate
// sans second append ni double débit.
func TestEnregistrer_CleIdempotence(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")
	b.entree(t, a.ID, 100)

	in := dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementSortie, Quantite: 10,
		ChantierID: "", CleIdempotence: "bon-2026-042",
	}
	_, err := b.mouvementUC.Enregistrer(context.Background(), in)
	require.NoError(t, err)

	_, err = b.mouvementUC.Enregistrer(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	s, err := b.stock.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, s.QuantiteDisponible, "un seul débit malgré le rejeu")
	assert.Len(t, b.journal(t), 2)
}

// Un article désactivé ne sort plus, mais les retours et constats de casse
// restent enregistrables pour que le journal suive la réalité du parc.
func TestEnregistrer_ArticleDesactive(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")
	c := b.chantier(t)
	b.entree(t, a.ID, 50)
	b.mouvement(t, dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementSortie, Quantite: 20, ChantierID: c.ID,
	})

	require.NoError(t, b.catalogueUC.Desactiver(a.ID))

	_, err := b.mouvementUC.Enregistrer(context.Background(), dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementSortie, Quantite: 5, ChantierID: c.ID,
	})
	assert.ErrorIs(t, err, domain.ErrArticleInactif)
	assert.ErrorIs(t, err, domain.ErrConflict)

	out := b.mouvement(t, dto.EnregistrerMouvementRequest{
		ArticleID: a.ID, Type: entity.MouvementRetour, Quantite: 20, ChantierID: c.ID,
	})
	assert.Equal(t, 50, out.Stock.QuantiteDisponible)
}

// ──────────────────────────────────────────────────────────────────────────────
// Garde de disponibilité en lecture
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifierDisponibilite(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")
	b.entree(t, a.ID, 25)

	ok, err := b.mouvementUC.VerifierDisponibilite(context.Background(), a.ID, 25)
	require.NoError(t, err)
	assert.True(t, ok.Disponible)
	assert.Equal(t, 0, ok.QuantiteManquante)

	manque, err := b.mouvementUC.VerifierDisponibilite(context.Background(), a.ID, 40)
	require.NoError(t, err)
	assert.False(t, manque.Disponible)
	assert.Equal(t, 25, manque.QuantiteDisponible)
	assert.Equal(t, 15, manque.QuantiteManquante)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultation du journal
// ──────────────────────────────────────────────────────────────────────────────

func TestLister_FiltreParType(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")
	c := b.chantier(t)
	b.entree(t, a.ID, 100)
	b.mouvement(t, dto.EnregistrerMouvementRequest{ArticleID: a.ID, Type: entity.MouvementSortie, Quantite: 30, ChantierID: c.ID})
	b.mouvement(t, dto.EnregistrerMouvementRequest{ArticleID: a.ID, Type: entity.MouvementRetour, Quantite: 10, ChantierID: c.ID})

	out, err := b.mouvementUC.Lister(context.Background(),
		repository.FiltreMouvements{Type: entity.MouvementSortie}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Mouvements, 1)
	assert.Equal(t, entity.MouvementSortie, out.Mouvements[0].Type)
	assert.Equal(t, 30, out.Mouvements[0].Quantite)
}
