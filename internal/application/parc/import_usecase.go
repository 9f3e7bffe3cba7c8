package parc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

// ImportUseCase applique les bons de livraison et de retour produits par le
// pipeline d'extraction (tableur, OCR) : des lignes (référence, quantités)
// déjà résolues en amont. Sémantique tout-ou-rien : la validation énumère
// toutes les lignes fautives en un seul rapport, et aucune ligne n'est
// appliquée tant qu'une seule est refusée.
type ImportUseCase struct {
	tx        TxRunner
	articles  repository.ArticleRepository
	chantiers repository.ChantierRepository
}

// NewImportUseCase construit le cas d'usage.
func NewImportUseCase(tx TxRunner, articles repository.ArticleRepository, chantiers repository.ChantierRepository) *ImportUseCase {
	return &ImportUseCase{tx: tx, articles: articles, chantiers: chantiers}
}

type ligneResolue struct {
	article    *entity.Article
	quantite   int
	quantiteHS int
}

// ImporterLivraison enregistre un bon de livraison : une sortie par ligne
// vers le chantier. Les manques de stock sont tous collectés (verrouillage
// des lignes stock dans un ordre déterministe) avant d'appliquer quoi que ce
// soit.
func (uc *ImportUseCase) ImporterLivraison(ctx context.Context, in dto.ImportLivraisonRequest) (*dto.ImportResponse, error) {
	chantier, err := uc.chantier(in.ChantierID)
	if err != nil {
		return nil, err
	}
	lignes, err := uc.resoudre(in.Lignes, false)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	liste := &entity.Liste{
		ID:          uuid.New().String(),
		Type:        entity.ListeLivraison,
		ChantierID:  chantier.ID,
		Commentaire: in.Commentaire,
		CreatedAt:   now,
	}
	bilan := &dto.ImportResponse{ListeID: liste.ID}

	err = uc.tx.Run(ctx, func(r TxRepos) error {
		// Passe 1 : verrouiller chaque article touché (ordre trié) et
		// vérifier que le disponible couvre le cumul de ses lignes.
		besoins := cumulParArticle(lignes)
		var fautes []domain.LigneErreur
		for _, b := range besoins {
			s, err := r.Stock.GetForUpdate(b.article.ID)
			if err != nil {
				return err
			}
			if s.QuantiteDisponible < b.total {
				fautes = append(fautes, domain.LigneErreur{
					Reference:  b.article.Reference,
					ArticleID:  b.article.ID,
					Quantite:   b.total,
					Disponible: s.QuantiteDisponible,
					Manquante:  b.total - s.QuantiteDisponible,
					Motif:      "stock insuffisant",
				})
			}
		}
		if len(fautes) > 0 {
			return &domain.ImportValidationError{Lignes: fautes}
		}

		// Passe 2 : appliquer. Les verrous sont déjà détenus par la
		// transaction, chaque relecture voit les écritures précédentes.
		if err := r.Listes.Create(liste); err != nil {
			return err
		}
		for i, l := range lignes {
			m := &entity.Mouvement{
				ID:             uuid.New().String(),
				ArticleID:      l.article.ID,
				Type:           entity.MouvementSortie,
				Quantite:       l.quantite,
				Source:         entity.LieuDepot,
				Destination:    entity.LieuChantier,
				ChantierID:     chantier.ID,
				ListeID:        liste.ID,
				CleIdempotence: cleLigne(in.CleIdempotence, i),
				CreatedAt:      now,
			}
			if _, err := appliquer(r, l.article, m, now); err != nil {
				return err
			}
			bilan.MouvementsGeneres++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bilan, nil
}

// ImporterRetour enregistre un bon de retour : par ligne, un "retour" pour
// les unités en bon état et un "hs" pour les unités revenues cassées. La
// validation borne chaque ligne par la quantité encore sur le chantier.
func (uc *ImportUseCase) ImporterRetour(ctx context.Context, in dto.ImportRetourRequest) (*dto.ImportResponse, error) {
	chantier, err := uc.chantier(in.ChantierID)
	if err != nil {
		return nil, err
	}
	lignes, err := uc.resoudre(in.Lignes, true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	liste := &entity.Liste{
		ID:          uuid.New().String(),
		Type:        entity.ListeRetour,
		ChantierID:  chantier.ID,
		Commentaire: in.Commentaire,
		CreatedAt:   now,
	}
	bilan := &dto.ImportResponse{ListeID: liste.ID}

	err = uc.tx.Run(ctx, func(r TxRepos) error {
		besoins := cumulParArticle(lignes)
		var fautes []domain.LigneErreur
		for _, b := range besoins {
			sc, err := r.StockChantier.GetForUpdate(chantier.ID, b.article.ID)
			if err != nil {
				return err
			}
			if sc.QuantiteActuelle() < b.total {
				fautes = append(fautes, domain.LigneErreur{
					Reference:  b.article.Reference,
					ArticleID:  b.article.ID,
					Quantite:   b.total,
					Disponible: sc.QuantiteActuelle(),
					Manquante:  b.total - sc.QuantiteActuelle(),
					Motif:      "quantité supérieure au matériel présent sur le chantier",
				})
			}
		}
		if len(fautes) > 0 {
			return &domain.ImportValidationError{Lignes: fautes}
		}

		if err := r.Listes.Create(liste); err != nil {
			return err
		}
		for i, l := range lignes {
			if bon := l.quantite - l.quantiteHS; bon > 0 {
				m := &entity.Mouvement{
					ID:             uuid.New().String(),
					ArticleID:      l.article.ID,
					Type:           entity.MouvementRetour,
					Quantite:       bon,
					Source:         entity.LieuChantier,
					Destination:    entity.LieuDepot,
					ChantierID:     chantier.ID,
					ListeID:        liste.ID,
					CleIdempotence: cleLigne(in.CleIdempotence, 2*i),
					CreatedAt:      now,
				}
				if _, err := appliquer(r, l.article, m, now); err != nil {
					return err
				}
				bilan.MouvementsGeneres++
			}
			if l.quantiteHS > 0 {
				m := &entity.Mouvement{
					ID:             uuid.New().String(),
					ArticleID:      l.article.ID,
					Type:           entity.MouvementHS,
					Quantite:       l.quantiteHS,
					Source:         entity.LieuChantier,
					Destination:    entity.LieuHS,
					ChantierID:     chantier.ID,
					ListeID:        liste.ID,
					CleIdempotence: cleLigne(in.CleIdempotence, 2*i+1),
					CreatedAt:      now,
				}
				if _, err := appliquer(r, l.article, m, now); err != nil {
					return err
				}
				bilan.MouvementsGeneres++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bilan, nil
}

func (uc *ImportUseCase) chantier(id string) (*entity.Chantier, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	chantier, err := uc.chantiers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chantier == nil {
		return nil, domain.ErrNotFound
	}
	if chantier.Statut == entity.ChantierFerme {
		return nil, domain.ErrChantierFerme
	}
	return chantier, nil
}

// resoudre traduit les références en articles et collecte TOUTES les lignes
// invalides (référence inconnue, article désactivé, quantités incohérentes)
// dans un seul ImportValidationError.
func (uc *ImportUseCase) resoudre(lignes []dto.LigneImport, retour bool) ([]ligneResolue, error) {
	if len(lignes) == 0 {
		return nil, domain.ErrInvalidInput
	}
	resolues := make([]ligneResolue, 0, len(lignes))
	var fautes []domain.LigneErreur
	for _, l := range lignes {
		if l.Quantite <= 0 {
			fautes = append(fautes, domain.LigneErreur{Reference: l.Reference, Quantite: l.Quantite, Motif: "quantité invalide"})
			continue
		}
		if retour && (l.QuantiteHS < 0 || l.QuantiteHS > l.Quantite) {
			fautes = append(fautes, domain.LigneErreur{Reference: l.Reference, Quantite: l.QuantiteHS, Motif: "quantité HS hors de l'intervalle [0, quantité]"})
			continue
		}
		if !retour && l.QuantiteHS != 0 {
			fautes = append(fautes, domain.LigneErreur{Reference: l.Reference, Quantite: l.QuantiteHS, Motif: "quantité HS interdite sur une livraison"})
			continue
		}
		article, err := uc.articles.GetByReference(l.Reference)
		if err != nil {
			return nil, err
		}
		if article == nil {
			fautes = append(fautes, domain.LigneErreur{Reference: l.Reference, Quantite: l.Quantite, Motif: "référence inconnue"})
			continue
		}
		if !retour && !article.Actif {
			// Un retour de matériel désactivé reste légitime, une nouvelle
			// livraison non.
			fautes = append(fautes, domain.LigneErreur{Reference: l.Reference, ArticleID: article.ID, Quantite: l.Quantite, Motif: "article désactivé"})
			continue
		}
		resolues = append(resolues, ligneResolue{article: article, quantite: l.Quantite, quantiteHS: l.QuantiteHS})
	}
	if len(fautes) > 0 {
		return nil, &domain.ImportValidationError{Lignes: fautes}
	}
	return resolues, nil
}

type besoinArticle struct {
	article *entity.Article
	total   int
}

// cumulParArticle agrège les lignes par article, trié par ID pour un ordre de
// verrouillage déterministe entre imports concurrents.
func cumulParArticle(lignes []ligneResolue) []besoinArticle {
	par := make(map[string]*besoinArticle)
	for _, l := range lignes {
		b, ok := par[l.article.ID]
		if !ok {
			b = &besoinArticle{article: l.article}
			par[l.article.ID] = b
		}
		b.total += l.quantite
	}
	out := make([]besoinArticle, 0, len(par))
	for _, b := range par {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].article.ID < out[j].article.ID })
	return out
}

func cleLigne(cle string, i int) string {
	if cle == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", cle, i)
}
