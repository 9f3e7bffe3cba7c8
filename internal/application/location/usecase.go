// Package location porte le cycle de vie des locations Layher : ouverture
// d'une position (mouvement layher_location) puis retours, partiels ou non,
// jusqu'au retour complet (statut "retourne", terminal).
package location

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

// UseCase cas d'usage des locations Layher.
type UseCase struct {
	tx        parc.TxRunner
	articles  repository.ArticleRepository
	locations repository.LocationLayherRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(tx parc.TxRunner, articles repository.ArticleRepository, locations repository.LocationLayherRepository) *UseCase {
	return &UseCase{tx: tx, articles: articles, locations: locations}
}

// Creer ouvre une position de location : la garde de disponibilité, le
// mouvement layher_location et la création de la position partagent la même
// transaction.
func (uc *UseCase) Creer(ctx context.Context, in dto.CreerLocationRequest) (*dto.LocationResponse, error) {
	if in.Quantite <= 0 || in.NumeroCommande == "" {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.articles.GetByID(in.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if !article.Actif {
		return nil, domain.ErrArticleInactif
	}

	now := time.Now()
	loc := &entity.LocationLayher{
		ID:               uuid.New().String(),
		ArticleID:        article.ID,
		Quantite:         in.Quantite,
		DateLocation:     now,
		DateRetourPrevue: in.DateRetourPrevue,
		NumeroCommande:   in.NumeroCommande,
		Statut:           entity.LocationEnCours,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.tx.Run(ctx, func(r parc.TxRepos) error {
		m := &entity.Mouvement{
			ID:          uuid.New().String(),
			ArticleID:   article.ID,
			Type:        entity.MouvementLayherLocation,
			Quantite:    in.Quantite,
			Source:      entity.LieuDepot,
			Destination: entity.LieuLayher,
			Commentaire: fmt.Sprintf("location %s", in.NumeroCommande),
			CreatedAt:   now,
		}
		if err := parc.Appliquer(r, article, m, now); err != nil {
			return err
		}
		return r.Locations.Create(loc)
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Retourner enregistre un retour, partiel ou complet, contre une position en
// cours. La position est verrouillée le temps du retour pour que deux retours
// concurrents ne dépassent pas la quantité louée. Au retour complet, la date
// effective est posée et le statut bascule en "retourne" (terminal).
func (uc *UseCase) Retourner(ctx context.Context, locationID string, in dto.RetourLocationRequest) (*dto.LocationResponse, error) {
	if in.Quantite <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.LocationLayher
	err := uc.tx.Run(ctx, func(r parc.TxRepos) error {
		loc, err := r.Locations.GetForUpdate(locationID)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.ErrNotFound
		}
		if loc.Statut == entity.LocationRetournee {
			return domain.ErrLocationRetournee
		}
		if restante := loc.QuantiteRestante(); in.Quantite > restante {
			return fmt.Errorf("retour de %d unités pour %d restantes : %w", in.Quantite, restante, domain.ErrInvalidInput)
		}

		article, err := r.Articles.GetByID(loc.ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		m := &entity.Mouvement{
			ID:          uuid.New().String(),
			ArticleID:   loc.ArticleID,
			Type:        entity.MouvementLayherRetour,
			Quantite:    in.Quantite,
			Source:      entity.LieuLayher,
			Destination: entity.LieuDepot,
			Commentaire: fmt.Sprintf("retour location %s", loc.NumeroCommande),
			CreatedAt:   now,
		}
		if err := parc.Appliquer(r, article, m, now); err != nil {
			return err
		}

		loc.QuantiteRetournee += in.Quantite
		loc.UpdatedAt = now
		if loc.QuantiteRestante() == 0 {
			loc.Statut = entity.LocationRetournee
			loc.DateRetourEffective = &now
		}
		if err := r.Locations.Update(loc); err != nil {
			return err
		}
		out = loc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(out), nil
}

// Lister consulte les positions, filtrées par statut et/ou article.
func (uc *UseCase) Lister(ctx context.Context, statut, articleID string, page dto.PageRequest) (*dto.LocationListResponse, error) {
	page.DefaultPage()
	locations, err := uc.locations.List(statut, articleID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.LocationListResponse{
		Locations: make([]dto.LocationResponse, 0, len(locations)),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, loc := range locations {
		out.Locations = append(out.Locations, *toLocationResponse(loc))
	}
	return out, nil
}

func toLocationResponse(l *entity.LocationLayher) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:                  l.ID,
		ArticleID:           l.ArticleID,
		Quantite:            l.Quantite,
		QuantiteRetournee:   l.QuantiteRetournee,
		QuantiteRestante:    l.QuantiteRestante(),
		DateLocation:        l.DateLocation,
		DateRetourPrevue:    l.DateRetourPrevue,
		DateRetourEffective: l.DateRetourEffective,
		NumeroCommande:      l.NumeroCommande,
		Statut:              l.Statut,
	}
}
