package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Le pli Apply est le cœur comptable du parc : chaque type de mouvement doit
// déplacer les quantités entre les bons compartiments en conservant
// totale = disponible + surChantier + hs + layher. Si quelqu'un touche au
// switch par inadvertance, ces tests cassent immédiatement.
// ──────────────────────────────────────────────────────────────────────────────

func mvt(typ string, q int) entity.Mouvement {
	return entity.Mouvement{ArticleID: "a1", Type: typ, Quantite: q}
}

func mvtChantier(typ string, q int) entity.Mouvement {
	m := mvt(typ, q)
	m.ChantierID = "c1"
	m.Source = entity.LieuChantier
	return m
}

func TestApply_Entree(t *testing.T) {
	s := entity.StockGlobal{ArticleID: "a1"}
	stock.Apply(&s, mvt(entity.MouvementEntree, 100))

	assert.Equal(t, 100, s.QuantiteTotale)
	assert.Equal(t, 100, s.QuantiteDisponible)
	assert.True(t, stock.Conserve(s))
}

func TestApply_SortieEtRetour(t *testing.T) {
	s := entity.StockGlobal{ArticleID: "a1"}
	stock.Apply(&s, mvt(entity.MouvementEntree, 100))
	stock.Apply(&s, mvtChantier(entity.MouvementSortie, 30))

	assert.Equal(t, 70, s.QuantiteDisponible)
	assert.Equal(t, 30, s.QuantiteSurChantier)
	assert.Equal(t, 100, s.QuantiteTotale)

	stock.Apply(&s, mvtChantier(entity.MouvementRetour, 10))
	assert.Equal(t, 80, s.QuantiteDisponible)
	assert.Equal(t, 20, s.QuantiteSurChantier)
	assert.True(t, stock.Conserve(s))
}

// Le hs débite le chantier quand le mouvement y est lié, le dépôt sinon.
func TestApply_HSDepuisChantierEtDepot(t *testing.T) {
	s := entity.StockGlobal{ArticleID: "a1"}
	stock.Apply(&s, mvt(entity.MouvementEntree, 100))
	stock.Apply(&s, mvtChantier(entity.MouvementSortie, 40))

	stock.Apply(&s, mvtChantier(entity.MouvementHS, 5))
	assert.Equal(t, 35, s.QuantiteSurChantier)
	assert.Equal(t, 5, s.QuantiteHS)
	assert.Equal(t, 60, s.QuantiteDisponible)

	stock.Apply(&s, mvt(entity.MouvementHS, 3))
	assert.Equal(t, 57, s.QuantiteDisponible)
	assert.Equal(t, 8, s.QuantiteHS)
	assert.Equal(t, 100, s.QuantiteTotale)
	assert.True(t, stock.Conserve(s))
}

func TestApply_ReparationEtRebut(t *testing.T) {
	s := entity.StockGlobal{ArticleID: "a1"}
	stock.Apply(&s, mvt(entity.MouvementEntree, 50))
	stock.Apply(&s, mvt(entity.MouvementHS, 10))

	stock.Apply(&s, mvt(entity.MouvementReparation, 4))
	assert.Equal(t, 44, s.QuantiteDisponible)
	assert.Equal(t, 6, s.QuantiteHS)

	// Rebut par défaut : depuis le pool HS, la totale baisse.
	stock.Apply(&s, mvt(entity.MouvementRebut, 6))
	assert.Equal(t, 0, s.QuantiteHS)
	assert.Equal(t, 44, s.QuantiteTotale)
	assert.True(t, stock.Conserve(s))

	// Rebut direct depuis le dépôt (source = depot).
	m := mvt(entity.MouvementRebut, 4)
	m.Source = entity.LieuDepot
	stock.Apply(&s, m)
	assert.Equal(t, 40, s.QuantiteDisponible)
	assert.Equal(t, 40, s.QuantiteTotale)
	assert.True(t, stock.Conserve(s))
}

func TestApply_CycleLayher(t *testing.T) {
	s := entity.StockGlobal{ArticleID: "a1"}
	stock.Apply(&s, mvt(entity.MouvementEntree, 20))
	stock.Apply(&s, mvt(entity.MouvementLayherLocation, 15))

	assert.Equal(t, 5, s.QuantiteDisponible)
	assert.Equal(t, 15, s.QuantiteLayher)
	assert.Equal(t, 20, s.QuantiteTotale)

	stock.Apply(&s, mvt(entity.MouvementLayherRetour, 10))
	assert.Equal(t, 15, s.QuantiteDisponible)
	assert.Equal(t, 5, s.QuantiteLayher)
	assert.True(t, stock.Conserve(s))
}

// ──────────────────────────────────────────────────────────────────────────────
// CompartimentDebite désigne le compartiment que la garde de disponibilité
// doit contrôler avant d'accepter le mouvement.
// ──────────────────────────────────────────────────────────────────────────────

func TestCompartimentDebite(t *testing.T) {
	s := entity.StockGlobal{
		ArticleID:           "a1",
		QuantiteTotale:      100,
		QuantiteDisponible:  40,
		QuantiteSurChantier: 30,
		QuantiteHS:          20,
		QuantiteLayher:      10,
	}

	cas := []struct {
		nom     string
		m       entity.Mouvement
		attendu string
		solde   int
		debite  bool
	}{
		{"entrée ne débite rien", mvt(entity.MouvementEntree, 1), "", 0, false},
		{"sortie débite le disponible", mvt(entity.MouvementSortie, 1), "disponible", 40, true},
		{"retour débite le sur-chantier", mvtChantier(entity.MouvementRetour, 1), "sur_chantier", 30, true},
		{"hs chantier débite le sur-chantier", mvtChantier(entity.MouvementHS, 1), "sur_chantier", 30, true},
		{"hs dépôt débite le disponible", mvt(entity.MouvementHS, 1), "disponible", 40, true},
		{"réparation débite le hs", mvt(entity.MouvementReparation, 1), "hs", 20, true},
		{"rebut débite le hs par défaut", mvt(entity.MouvementRebut, 1), "hs", 20, true},
		{"location débite le disponible", mvt(entity.MouvementLayherLocation, 1), "disponible", 40, true},
		{"retour layher débite le layher", mvt(entity.MouvementLayherRetour, 1), "layher", 10, true},
	}
	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			nom, solde, debite := stock.CompartimentDebite(s, c.m)
			assert.Equal(t, c.attendu, nom)
			assert.Equal(t, c.solde, solde)
			assert.Equal(t, c.debite, debite)
		})
	}

	t.Run("rebut depuis le dépôt débite le disponible", func(t *testing.T) {
		m := mvt(entity.MouvementRebut, 1)
		m.Source = entity.LieuDepot
		nom, solde, debite := stock.CompartimentDebite(s, m)
		assert.Equal(t, "disponible", nom)
		assert.Equal(t, 40, solde)
		assert.True(t, debite)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Rejeu : le pli appliqué à tout le journal redonne exactement les mêmes
// projections, quel que soit le nombre de fois où on le rejoue.
// ──────────────────────────────────────────────────────────────────────────────

func TestProjeter_RejeuComplet(t *testing.T) {
	journal := []entity.Mouvement{
		mvt(entity.MouvementEntree, 100),
		mvtChantier(entity.MouvementSortie, 60),
		mvtChantier(entity.MouvementRetour, 20),
		mvtChantier(entity.MouvementHS, 5),
		mvt(entity.MouvementReparation, 2),
		mvt(entity.MouvementRebut, 3),
		mvt(entity.MouvementLayherLocation, 10),
		mvt(entity.MouvementLayherRetour, 4),
	}

	premier := stock.Projeter(journal)
	second := stock.Projeter(journal)

	require.Contains(t, premier, "a1")
	s := *premier["a1"]
	assert.Equal(t, 97, s.QuantiteTotale)
	assert.Equal(t, 56, s.QuantiteDisponible)
	assert.Equal(t, 35, s.QuantiteSurChantier) // 60 sorties - 20 retours - 5 hs
	assert.Equal(t, 0, s.QuantiteHS)
	assert.Equal(t, 6, s.QuantiteLayher)
	assert.True(t, stock.Conserve(s))

	assert.Equal(t, premier["a1"], second["a1"], "le rejeu est déterministe")
}

func TestProjeterChantiers(t *testing.T) {
	journal := []entity.Mouvement{
		mvt(entity.MouvementEntree, 100),
		mvtChantier(entity.MouvementSortie, 60),
		mvtChantier(entity.MouvementRetour, 20),
		mvtChantier(entity.MouvementHS, 5),
		// Une entrée avec ChantierID renseigné ne doit pas toucher la ligne.
		{ArticleID: "a1", Type: entity.MouvementEntree, Quantite: 10, ChantierID: "c1"},
	}

	par := stock.ProjeterChantiers(journal)
	cle := stock.CleChantier{ChantierID: "c1", ArticleID: "a1"}
	require.Contains(t, par, cle)

	sc := par[cle]
	assert.Equal(t, 60, sc.QuantiteLivree)
	assert.Equal(t, 25, sc.QuantiteRecue, "retour + hs cumulent le reçu")
	assert.Equal(t, 35, sc.QuantiteActuelle())
}
