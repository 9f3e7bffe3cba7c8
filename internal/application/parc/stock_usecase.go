package parc

import (
	"context"
	"time"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
	stockproj "github.com/ateliergranit/parc-echafaudage/internal/domain/stock"
)

// StockUseCase sert les vues de stock dérivées et le chemin de réparation
// (rejeu complet du journal).
type StockUseCase struct {
	tx       TxRunner
	articles repository.ArticleRepository
	stock    repository.StockRepository
}

// NewStockUseCase construit le cas d'usage.
func NewStockUseCase(tx TxRunner, articles repository.ArticleRepository, stock repository.StockRepository) *StockUseCase {
	return &StockUseCase{tx: tx, articles: articles, stock: stock}
}

// Lister renvoie la projection globale de tous les articles suivis.
func (uc *StockUseCase) Lister(ctx context.Context, page dto.PageRequest) ([]dto.StockGlobalDTO, error) {
	page.DefaultPage()
	stocks, err := uc.stock.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.decorer(stocks)
}

// Obtenir renvoie la projection globale d'un article.
func (uc *StockUseCase) Obtenir(ctx context.Context, articleID string) (*dto.StockGlobalDTO, error) {
	article, err := uc.articles.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	s, err := uc.stock.Get(articleID)
	if err != nil {
		return nil, err
	}
	out := toStockDTO(s, article)
	return &out, nil
}

// ListerHS renvoie les articles ayant du matériel hors service en attente de
// réparation ou de rebut.
func (uc *StockUseCase) ListerHS(ctx context.Context) ([]dto.StockGlobalDTO, error) {
	stocks, err := uc.stock.ListHS()
	if err != nil {
		return nil, err
	}
	return uc.decorer(stocks)
}

// Reconstruire vide les projections matérialisées et rejoue l'intégralité du
// journal dans une seule transaction. C'est le chemin de réconciliation prévu
// quand une dérive est suspectée (solde négatif observé, etc.) : le journal
// est la source de vérité, pas les lignes matérialisées.
func (uc *StockUseCase) Reconstruire(ctx context.Context) (*dto.ReconstructionResponse, error) {
	var bilan dto.ReconstructionResponse
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Stock.DeleteAll(); err != nil {
			return err
		}
		if err := r.StockChantier.DeleteAll(); err != nil {
			return err
		}

		now := time.Now()
		globaux := make(map[string]*entity.StockGlobal)
		chantiers := make(map[stockproj.CleChantier]*entity.StockChantier)

		err := r.Mouvements.ForEach(func(m *entity.Mouvement) error {
			bilan.MouvementsRejoues++
			s, ok := globaux[m.ArticleID]
			if !ok {
				s = &entity.StockGlobal{ArticleID: m.ArticleID}
				globaux[m.ArticleID] = s
			}
			stockproj.Apply(s, *m)

			if m.ChantierID != "" {
				switch m.Type {
				case entity.MouvementSortie, entity.MouvementRetour, entity.MouvementHS:
					cle := stockproj.CleChantier{ChantierID: m.ChantierID, ArticleID: m.ArticleID}
					sc, ok := chantiers[cle]
					if !ok {
						sc = &entity.StockChantier{ChantierID: m.ChantierID, ArticleID: m.ArticleID}
						chantiers[cle] = sc
					}
					stockproj.ApplyChantier(sc, *m)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, s := range globaux {
			s.UpdatedAt = now
			if err := r.Stock.Upsert(s); err != nil {
				return err
			}
		}
		for _, sc := range chantiers {
			sc.UpdatedAt = now
			if err := r.StockChantier.Upsert(sc); err != nil {
				return err
			}
		}
		bilan.ArticlesProjetes = len(globaux)
		bilan.LignesChantier = len(chantiers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bilan, nil
}

func (uc *StockUseCase) decorer(stocks []*entity.StockGlobal) ([]dto.StockGlobalDTO, error) {
	out := make([]dto.StockGlobalDTO, 0, len(stocks))
	for _, s := range stocks {
		article, err := uc.articles.GetByID(s.ArticleID)
		if err != nil {
			return nil, err
		}
		out = append(out, toStockDTO(s, article))
	}
	return out, nil
}
