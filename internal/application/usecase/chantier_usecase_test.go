package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/usecase"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/infrastructure/memoire"
)

func TestCreerChantier(t *testing.T) {
	store := memoire.NewStore()
	uc := usecase.NewChantierUseCase(
		memoire.NewChantierRepository(store),
		memoire.NewStockChantierRepository(store),
		memoire.NewArticleRepository(store),
	)

	c, err := uc.Creer(dto.CreateChantierRequest{Nom: "Chantier Cathédrale", Adresse: "Place du Château"})
	require.NoError(t, err)
	assert.Equal(t, entity.ChantierOuvert, c.Statut)

	_, err = uc.Creer(dto.CreateChantierRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// L'inventaire donne, par article encore sur place, la quantité et son poids
// (quantité actuelle x poids unitaire) : c'est le chiffrage du chargement
// camion à prévoir pour la clôture.
func TestInventaire_PoidsParLigne(t *testing.T) {
	store := memoire.NewStore()
	articles := memoire.NewArticleRepository(store)
	stockChantier := memoire.NewStockChantierRepository(store)
	chantiers := memoire.NewChantierRepository(store)
	uc := usecase.NewChantierUseCase(chantiers, stockChantier, articles)
	catalogue := usecase.NewCatalogueUseCase(articles)

	montant, err := catalogue.Creer(dto.CreateArticleRequest{
		Reference: "MV-200", Designation: "Montant vertical 2m",
		PoidsUnitaire: decimal.RequireFromString("8.5"),
	})
	require.NoError(t, err)
	plancher, err := catalogue.Creer(dto.CreateArticleRequest{
		Reference: "PL-300", Designation: "Plancher acier 3m",
		PoidsUnitaire: decimal.RequireFromString("22.4"),
	})
	require.NoError(t, err)

	c, err := uc.Creer(dto.CreateChantierRequest{Nom: "Chantier Cathédrale"})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, stockChantier.Upsert(&entity.StockChantier{
		ChantierID: c.ID, ArticleID: montant.ID, QuantiteLivree: 40, QuantiteRecue: 10, UpdatedAt: now,
	}))
	require.NoError(t, stockChantier.Upsert(&entity.StockChantier{
		ChantierID: c.ID, ArticleID: plancher.ID, QuantiteLivree: 12, QuantiteRecue: 12, UpdatedAt: now,
	}))

	inv, err := uc.Inventaire(c.ID)
	require.NoError(t, err)
	require.Len(t, inv.Lignes, 1, "les lignes revenues à zéro n'apparaissent pas")

	ligne := inv.Lignes[0]
	assert.Equal(t, "MV-200", ligne.Reference)
	assert.Equal(t, 30, ligne.QuantiteActuelle)
	assert.True(t, decimal.RequireFromString("255").Equal(ligne.Poids), "30 x 8.5 kg")
	assert.True(t, decimal.RequireFromString("255").Equal(inv.PoidsTotal))

	_, err = uc.Inventaire("inexistant")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
