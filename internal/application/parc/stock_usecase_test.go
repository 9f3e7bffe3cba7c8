package parc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Le journal est la source de vérité : reconstruire les projections par rejeu
// complet doit redonner exactement l'état maintenu incrémentalement.
// ──────────────────────────────────────────────────────────────────────────────

func TestReconstruire_EgaleIncremental(t *testing.T) {
	b := nouveauBanc(t)
	montant := b.article(t, "MV-200")
	diagonale := b.article(t, "DG-300")
	c := b.chantier(t)

	b.entree(t, montant.ID, 100)
	b.entree(t, diagonale.ID, 50)
	_, err := b.importUC.ImporterLivraison(context.Background(), dto.ImportLivraisonRequest{
		ChantierID: c.ID,
		Lignes: []dto.LigneImport{
			{Reference: "MV-200", Quantite: 40},
			{Reference: "DG-300", Quantite: 10},
		},
	})
	require.NoError(t, err)
	_, err = b.importUC.ImporterRetour(context.Background(), dto.ImportRetourRequest{
		ChantierID: c.ID,
		Lignes:     []dto.LigneImport{{Reference: "MV-200", Quantite: 15, QuantiteHS: 2}},
	})
	require.NoError(t, err)
	b.mouvement(t, dto.EnregistrerMouvementRequest{ArticleID: montant.ID, Type: entity.MouvementLayherLocation, Quantite: 5})

	avantMontant, err := b.stock.Get(montant.ID)
	require.NoError(t, err)
	avantDiagonale, err := b.stock.Get(diagonale.ID)
	require.NoError(t, err)

	bilan, err := b.stockUC.Reconstruire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, bilan.ArticlesProjetes)
	assert.Equal(t, 2, bilan.LignesChantier)
	assert.Equal(t, len(b.journal(t)), bilan.MouvementsRejoues)

	apresMontant, err := b.stock.Get(montant.ID)
	require.NoError(t, err)
	apresDiagonale, err := b.stock.Get(diagonale.ID)
	require.NoError(t, err)

	assert.Equal(t, quantites(avantMontant), quantites(apresMontant))
	assert.Equal(t, quantites(avantDiagonale), quantites(apresDiagonale))
}

func quantites(s *entity.StockGlobal) [5]int {
	return [5]int{s.QuantiteTotale, s.QuantiteDisponible, s.QuantiteSurChantier, s.QuantiteHS, s.QuantiteLayher}
}

func TestObtenir_ArticleJamaisBouge(t *testing.T) {
	b := nouveauBanc(t)
	a := b.article(t, "MV-200")

	out, err := b.stockUC.Obtenir(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, out.QuantiteTotale)
	assert.Equal(t, "MV-200", out.Reference)
}

func TestListerHS(t *testing.T) {
	b := nouveauBanc(t)
	montant := b.article(t, "MV-200")
	diagonale := b.article(t, "DG-300")
	b.entree(t, montant.ID, 10)
	b.entree(t, diagonale.ID, 10)
	b.mouvement(t, dto.EnregistrerMouvementRequest{ArticleID: montant.ID, Type: entity.MouvementHS, Quantite: 2})

	out, err := b.stockUC.ListerHS(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, montant.ID, out[0].ArticleID)
	assert.Equal(t, 2, out[0].QuantiteHS)
}
