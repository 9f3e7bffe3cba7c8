package parc

import (
	"time"

	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	stockproj "github.com/ateliergranit/parc-echafaudage/internal/domain/stock"
)

// appliquer exécute une écriture du journal à l'intérieur d'une transaction :
// verrou de la ligne stock_global (point de sérialisation par article), garde
// de disponibilité sur le compartiment débité, mise à jour incrémentale des
// projections, puis append du mouvement. Aucune étape ne s'intercale entre la
// relecture du solde et l'écriture.
//
// Renvoie la projection globale à jour de l'article.
func appliquer(r TxRepos, article *entity.Article, m *entity.Mouvement, now time.Time) (*entity.StockGlobal, error) {
	s, err := r.Stock.GetForUpdate(m.ArticleID)
	if err != nil {
		return nil, err
	}

	if _, solde, debite := stockproj.CompartimentDebite(*s, *m); debite && solde < m.Quantite {
		return nil, &domain.InsufficientStockError{
			ArticleID:  article.ID,
			Reference:  article.Reference,
			Demandee:   m.Quantite,
			Disponible: solde,
		}
	}

	// Ligne (chantier, article) : le retour et le hs ne peuvent pas excéder
	// ce qui est encore sur place.
	if m.ChantierID != "" {
		switch m.Type {
		case entity.MouvementSortie, entity.MouvementRetour, entity.MouvementHS:
			sc, err := r.StockChantier.GetForUpdate(m.ChantierID, m.ArticleID)
			if err != nil {
				return nil, err
			}
			if m.Type != entity.MouvementSortie && sc.QuantiteActuelle() < m.Quantite {
				return nil, &domain.InsufficientStockError{
					ArticleID:  article.ID,
					Reference:  article.Reference,
					Demandee:   m.Quantite,
					Disponible: sc.QuantiteActuelle(),
				}
			}
			stockproj.ApplyChantier(sc, *m)
			sc.UpdatedAt = now
			if err := r.StockChantier.Upsert(sc); err != nil {
				return nil, err
			}
		}
	}

	stockproj.Apply(s, *m)
	s.UpdatedAt = now
	if err := r.Stock.Upsert(s); err != nil {
		return nil, err
	}
	if err := r.Mouvements.Create(m); err != nil {
		return nil, err
	}
	return s, nil
}

// Appliquer expose l'écriture transactionnelle aux cas d'usage des autres
// paquets (locations Layher notamment), mêmes garanties qu'appliquer.
func Appliquer(r TxRepos, article *entity.Article, m *entity.Mouvement, now time.Time) error {
	_, err := appliquer(r, article, m, now)
	return err
}

// defautsLieux remplit source/destination selon le type quand l'appelant ne
// les précise pas, pour garder un journal lisible.
func defautsLieux(m *entity.Mouvement) {
	type lieux struct{ src, dst string }
	defauts := map[string]lieux{
		entity.MouvementEntree:         {"", entity.LieuDepot},
		entity.MouvementSortie:         {entity.LieuDepot, entity.LieuChantier},
		entity.MouvementRetour:         {entity.LieuChantier, entity.LieuDepot},
		entity.MouvementHS:             {entity.LieuDepot, entity.LieuHS},
		entity.MouvementReparation:     {entity.LieuHS, entity.LieuDepot},
		entity.MouvementRebut:          {entity.LieuHS, entity.LieuRebut},
		entity.MouvementLayherLocation: {entity.LieuDepot, entity.LieuLayher},
		entity.MouvementLayherRetour:   {entity.LieuLayher, entity.LieuDepot},
	}
	d, ok := defauts[m.Type]
	if !ok {
		return
	}
	if m.Source == "" {
		m.Source = d.src
		if m.Type == entity.MouvementHS && m.ChantierID != "" {
			m.Source = entity.LieuChantier
		}
	}
	if m.Destination == "" {
		m.Destination = d.dst
	}
}
