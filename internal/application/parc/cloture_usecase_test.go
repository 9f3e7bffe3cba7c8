package parc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clôture de chantier : tout le matériel encore présent rentre (bonnes unités
// en retour, cassées en hs) et le chantier passe en "ferme", atomiquement.
// ──────────────────────────────────────────────────────────────────────────────

func TestCloturer_RetourEtCasse(t *testing.T) {
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

	out, err := b.clotureUC.Cloturer(context.Background(), c.ID, dto.ClotureRequest{
		Casse: map[string]int{montant.ID: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 37+10, out.UnitesRetournees)
	assert.Equal(t, 3, out.UnitesHS)
	assert.Equal(t, 3, out.MouvementsGeneres, "retour MV + hs MV + retour DG")

	s, err := b.stock.Get(montant.ID)
	require.NoError(t, err)
	assert.Equal(t, 97, s.QuantiteDisponible)
	assert.Equal(t, 0, s.QuantiteSurChantier)
	assert.Equal(t, 3, s.QuantiteHS)
	assert.Equal(t, 100, s.QuantiteTotale)

	ferme, err := b.chantiers.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChantierFerme, ferme.Statut)

	// L'inventaire d'un chantier fermé est vide.
	inv, err := b.chantierUC.Inventaire(c.ID)
	require.NoError(t, err)
	assert.Empty(t, inv.Lignes)
}

// Les violations sont toutes rapportées en une fois, et rien n'est appliqué :
// un chantier à moitié clôturé n'existe pas.
func TestCloturer_RapportExhaustifEtAtomicite(t *testing.T) {
	b := nouveauBanc(t)
	montant := b.article(t, "MV-200")
	c := b.chantier(t)
	b.entree(t, montant.ID, 100)

	_, err := b.importUC.ImporterLivraison(context.Background(), dto.ImportLivraisonRequest{
		ChantierID: c.ID,
		Lignes:     []dto.LigneImport{{Reference: "MV-200", Quantite: 40}},
	})
	require.NoError(t, err)

	_, err = b.clotureUC.Cloturer(context.Background(), c.ID, dto.ClotureRequest{
		Casse: map[string]int{
			montant.ID: 41, // excède les 40 présents
			"autre-id": 2,  // article absent du chantier
		},
	})

	var clotureErr *domain.ClosureValidationError
	require.ErrorAs(t, err, &clotureErr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, clotureErr.Lignes, 2)

	ouvert, err := b.chantiers.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChantierOuvert, ouvert.Statut, "le chantier reste ouvert")

	s, err := b.stock.Get(montant.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, s.QuantiteSurChantier, "rien n'est rentré")
}

func TestCloturer_ChantierDejaFerme(t *testing.T) {
	b := nouveauBanc(t)
	c := b.chantier(t)

	_, err := b.clotureUC.Cloturer(context.Background(), c.ID, dto.ClotureRequest{})
	require.NoError(t, err)

	_, err = b.clotureUC.Cloturer(context.Background(), c.ID, dto.ClotureRequest{})
	assert.ErrorIs(t, err, domain.ErrChantierFerme)
}

func TestCloturer_ChantierVide(t *testing.T) {
	b := nouveauBanc(t)
	c := b.chantier(t)

	out, err := b.clotureUC.Cloturer(context.Background(), c.ID, dto.ClotureRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.MouvementsGeneres)

	ferme, err := b.chantiers.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChantierFerme, ferme.Statut)
}
