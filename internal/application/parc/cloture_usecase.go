package parc

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

// ClotureUseCase ferme un chantier : tout le matériel encore sur place
// revient, les bonnes unités en "retour", les unités déclarées cassées en
// "hs". L'opération est atomique sur l'ensemble du chantier : la moindre
// ligne en échec annule tout, un chantier à moitié clôturé est un bug de
// cohérence, pas un mode dégradé.
type ClotureUseCase struct {
	tx        TxRunner
	chantiers repository.ChantierRepository
}

// NewClotureUseCase construit le cas d'usage.
func NewClotureUseCase(tx TxRunner, chantiers repository.ChantierRepository) *ClotureUseCase {
	return &ClotureUseCase{tx: tx, chantiers: chantiers}
}

// Cloturer valide la répartition bon/cassé fournie pour chaque article encore
// présent, génère les mouvements de retour dans une seule transaction, puis
// passe le chantier en "ferme". Les violations sont toutes rapportées en un
// seul ClosureValidationError, pas seulement la première.
func (uc *ClotureUseCase) Cloturer(ctx context.Context, chantierID string, in dto.ClotureRequest) (*dto.ClotureResponse, error) {
	chantier, err := uc.chantiers.GetByID(chantierID)
	if err != nil {
		return nil, err
	}
	if chantier == nil {
		return nil, domain.ErrNotFound
	}
	if chantier.Statut == entity.ChantierFerme {
		return nil, domain.ErrChantierFerme
	}

	bilan := &dto.ClotureResponse{ChantierID: chantierID}
	now := time.Now()

	err = uc.tx.Run(ctx, func(r TxRepos) error {
		lignes, err := r.StockChantier.ListByChantier(chantierID)
		if err != nil {
			return err
		}
		// Ordre déterministe de verrouillage des lignes stock.
		sort.Slice(lignes, func(i, j int) bool { return lignes[i].ArticleID < lignes[j].ArticleID })

		presents := make(map[string]int, len(lignes))
		var fautes []domain.LigneErreur
		for _, l := range lignes {
			actuelle := l.QuantiteActuelle()
			if actuelle <= 0 {
				continue
			}
			presents[l.ArticleID] = actuelle
			casse := in.Casse[l.ArticleID]
			if casse < 0 || casse > actuelle {
				fautes = append(fautes, domain.LigneErreur{
					ArticleID:  l.ArticleID,
					Reference:  uc.reference(r, l.ArticleID),
					Quantite:   casse,
					Disponible: actuelle,
					Motif:      "quantité cassée hors de l'intervalle [0, quantité actuelle]",
				})
			}
		}
		// Une casse déclarée sur un article absent du chantier est une erreur
		// de saisie, pas un no-op silencieux.
		for articleID, casse := range in.Casse {
			if _, ok := presents[articleID]; !ok && casse != 0 {
				fautes = append(fautes, domain.LigneErreur{
					ArticleID: articleID,
					Reference: uc.reference(r, articleID),
					Quantite:  casse,
					Motif:     "article absent du chantier",
				})
			}
		}
		if len(fautes) > 0 {
			return &domain.ClosureValidationError{ChantierID: chantierID, Lignes: fautes}
		}

		for _, l := range lignes {
			actuelle, ok := presents[l.ArticleID]
			if !ok {
				continue
			}
			article, err := r.Articles.GetByID(l.ArticleID)
			if err != nil {
				return err
			}
			if article == nil {
				return domain.ErrNotFound
			}
			casse := in.Casse[l.ArticleID]
			if bon := actuelle - casse; bon > 0 {
				m := &entity.Mouvement{
					ID:          uuid.New().String(),
					ArticleID:   l.ArticleID,
					Type:        entity.MouvementRetour,
					Quantite:    bon,
					Source:      entity.LieuChantier,
					Destination: entity.LieuDepot,
					ChantierID:  chantierID,
					Commentaire: in.Commentaire,
					CreatedAt:   now,
				}
				if _, err := appliquer(r, article, m, now); err != nil {
					return err
				}
				bilan.MouvementsGeneres++
				bilan.UnitesRetournees += bon
			}
			if casse > 0 {
				m := &entity.Mouvement{
					ID:          uuid.New().String(),
					ArticleID:   l.ArticleID,
					Type:        entity.MouvementHS,
					Quantite:    casse,
					Source:      entity.LieuChantier,
					Destination: entity.LieuHS,
					ChantierID:  chantierID,
					Commentaire: in.Commentaire,
					CreatedAt:   now,
				}
				if _, err := appliquer(r, article, m, now); err != nil {
					return err
				}
				bilan.MouvementsGeneres++
				bilan.UnitesHS += casse
			}
		}

		chantier.Statut = entity.ChantierFerme
		chantier.UpdatedAt = now
		return r.Chantiers.Update(chantier)
	})
	if err != nil {
		return nil, err
	}
	return bilan, nil
}

func (uc *ClotureUseCase) reference(r TxRepos, articleID string) string {
	article, err := r.Articles.GetByID(articleID)
	if err != nil || article == nil {
		return articleID
	}
	return article.Reference
}
