// Package stock contient la projection pure du journal des mouvements :
// le pli (fold) qui transforme la suite des écritures en soldes dérivés.
// Le même pli sert aux deux chemins : mise à jour incrémentale O(1) dans la
// transaction d'écriture, et rejeu complet O(n) pour reconstruire les
// projections après une dérive constatée.
package stock

import (
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
)

// Apply applique un mouvement à la projection globale d'un article.
// Le pli est commutatif par article (sommes signées) : l'ordre d'application
// ne change pas le résultat, seule l'atomicité de chaque étape compte.
//
// Modèle additif :
//
//	entree           totale+  disponible+
//	sortie           disponible-  surChantier+
//	retour           surChantier-  disponible+
//	hs               hs+ ; débite surChantier si lié à un chantier, sinon disponible
//	reparation       hs-  disponible+
//	rebut            totale- ; débite le pool HS, ou disponible si source = depot
//	layher_location  disponible-  layher+
//	layher_retour    layher-  disponible+
//
// Chaque type conserve l'invariant totale = disponible + surChantier + hs + layher.
func Apply(s *entity.StockGlobal, m entity.Mouvement) {
	q := m.Quantite
	switch m.Type {
	case entity.MouvementEntree:
		s.QuantiteTotale += q
		s.QuantiteDisponible += q
	case entity.MouvementSortie:
		s.QuantiteDisponible -= q
		s.QuantiteSurChantier += q
	case entity.MouvementRetour:
		s.QuantiteSurChantier -= q
		s.QuantiteDisponible += q
	case entity.MouvementHS:
		if m.ChantierID != "" {
			s.QuantiteSurChantier -= q
		} else {
			s.QuantiteDisponible -= q
		}
		s.QuantiteHS += q
	case entity.MouvementReparation:
		s.QuantiteHS -= q
		s.QuantiteDisponible += q
	case entity.MouvementRebut:
		if m.Source == entity.LieuDepot {
			s.QuantiteDisponible -= q
		} else {
			s.QuantiteHS -= q
		}
		s.QuantiteTotale -= q
	case entity.MouvementLayherLocation:
		s.QuantiteDisponible -= q
		s.QuantiteLayher += q
	case entity.MouvementLayherRetour:
		s.QuantiteLayher -= q
		s.QuantiteDisponible += q
	}
}

// CompartimentDebite renvoie le nom du compartiment que le mouvement débite
// et la quantité qui s'y trouve. Sert de garde de disponibilité : un mouvement
// dont la quantité excède le solde du compartiment débité doit être refusé
// avant toute écriture. Les entrées ne débitent rien ("", 0, false).
func CompartimentDebite(s entity.StockGlobal, m entity.Mouvement) (string, int, bool) {
	switch m.Type {
	case entity.MouvementSortie, entity.MouvementLayherLocation:
		return "disponible", s.QuantiteDisponible, true
	case entity.MouvementRetour:
		return "sur_chantier", s.QuantiteSurChantier, true
	case entity.MouvementHS:
		if m.ChantierID != "" {
			return "sur_chantier", s.QuantiteSurChantier, true
		}
		return "disponible", s.QuantiteDisponible, true
	case entity.MouvementReparation:
		return "hs", s.QuantiteHS, true
	case entity.MouvementRebut:
		if m.Source == entity.LieuDepot {
			return "disponible", s.QuantiteDisponible, true
		}
		return "hs", s.QuantiteHS, true
	case entity.MouvementLayherRetour:
		return "layher", s.QuantiteLayher, true
	}
	return "", 0, false
}

// ApplyChantier applique un mouvement à la projection (chantier, article).
// Seuls sortie, retour et hs liés à un chantier la font évoluer :
// sortie cumule le livré, retour et hs cumulent le reçu (le matériel cassé
// sur place quitte le chantier sans repasser par le disponible).
func ApplyChantier(sc *entity.StockChantier, m entity.Mouvement) {
	if m.ChantierID == "" || m.ChantierID != sc.ChantierID {
		return
	}
	switch m.Type {
	case entity.MouvementSortie:
		sc.QuantiteLivree += m.Quantite
	case entity.MouvementRetour, entity.MouvementHS:
		sc.QuantiteRecue += m.Quantite
	}
}

// Conserve vérifie l'invariant de conservation sur une projection globale.
func Conserve(s entity.StockGlobal) bool {
	return s.QuantiteTotale == s.QuantiteDisponible+s.QuantiteSurChantier+s.QuantiteHS+s.QuantiteLayher
}

// Projeter rejoue l'intégralité du journal et renvoie les projections
// globales par article. C'est le chemin de réparation : le journal est la
// source de vérité, les lignes matérialisées se reconstruisent toujours.
func Projeter(mouvements []entity.Mouvement) map[string]*entity.StockGlobal {
	par := make(map[string]*entity.StockGlobal)
	for _, m := range mouvements {
		s, ok := par[m.ArticleID]
		if !ok {
			s = &entity.StockGlobal{ArticleID: m.ArticleID}
			par[m.ArticleID] = s
		}
		Apply(s, m)
	}
	return par
}

// CleChantier identifie une ligne de projection par chantier.
type CleChantier struct {
	ChantierID string
	ArticleID  string
}

// ProjeterChantiers rejoue le journal et renvoie les projections par
// (chantier, article). Les lignes sans mouvement chantier n'apparaissent pas.
func ProjeterChantiers(mouvements []entity.Mouvement) map[CleChantier]*entity.StockChantier {
	par := make(map[CleChantier]*entity.StockChantier)
	for _, m := range mouvements {
		if m.ChantierID == "" {
			continue
		}
		switch m.Type {
		case entity.MouvementSortie, entity.MouvementRetour, entity.MouvementHS:
		default:
			continue
		}
		cle := CleChantier{ChantierID: m.ChantierID, ArticleID: m.ArticleID}
		sc, ok := par[cle]
		if !ok {
			sc = &entity.StockChantier{ChantierID: m.ChantierID, ArticleID: m.ArticleID}
			par[cle] = sc
		}
		ApplyChantier(sc, m)
	}
	return par
}
