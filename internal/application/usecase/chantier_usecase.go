package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

// ChantierUseCase gestion des chantiers et lecture de leur inventaire.
type ChantierUseCase struct {
	chantiers repository.ChantierRepository
	stock     repository.StockChantierRepository
	articles  repository.ArticleRepository
}

// NewChantierUseCase construit le cas d'usage.
func NewChantierUseCase(
	chantiers repository.ChantierRepository,
	stock repository.StockChantierRepository,
	articles repository.ArticleRepository,
) *ChantierUseCase {
	return &ChantierUseCase{chantiers: chantiers, stock: stock, articles: articles}
}

// Creer ouvre un chantier.
func (uc *ChantierUseCase) Creer(in dto.CreateChantierRequest) (*dto.ChantierResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	chantier := &entity.Chantier{
		ID:        uuid.New().String(),
		Nom:       in.Nom,
		Adresse:   in.Adresse,
		Statut:    entity.ChantierOuvert,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.chantiers.Create(chantier); err != nil {
		return nil, err
	}
	return toChantierResponse(chantier), nil
}

// Obtenir renvoie un chantier par ID.
func (uc *ChantierUseCase) Obtenir(id string) (*dto.ChantierResponse, error) {
	chantier, err := uc.chantiers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chantier == nil {
		return nil, domain.ErrNotFound
	}
	return toChantierResponse(chantier), nil
}

// Lister renvoie les chantiers, filtrés par statut ("" = tous).
func (uc *ChantierUseCase) Lister(statut string, page dto.PageRequest) ([]dto.ChantierResponse, error) {
	page.DefaultPage()
	chantiers, err := uc.chantiers.List(statut, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChantierResponse, 0, len(chantiers))
	for _, c := range chantiers {
		out = append(out, *toChantierResponse(c))
	}
	return out, nil
}

// Inventaire renvoie le matériel encore présent sur un chantier, avec le
// poids par ligne et le poids total (quantité actuelle x poids unitaire).
func (uc *ChantierUseCase) Inventaire(id string) (*dto.InventaireResponse, error) {
	chantier, err := uc.chantiers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chantier == nil {
		return nil, domain.ErrNotFound
	}
	lignes, err := uc.stock.ListByChantier(id)
	if err != nil {
		return nil, err
	}

	out := &dto.InventaireResponse{ChantierID: id, Lignes: []dto.InventaireLigne{}, PoidsTotal: decimal.Zero}
	for _, l := range lignes {
		actuelle := l.QuantiteActuelle()
		if actuelle == 0 {
			continue
		}
		article, err := uc.articles.GetByID(l.ArticleID)
		if err != nil {
			return nil, err
		}
		ligne := dto.InventaireLigne{
			ArticleID:        l.ArticleID,
			QuantiteLivree:   l.QuantiteLivree,
			QuantiteRecue:    l.QuantiteRecue,
			QuantiteActuelle: actuelle,
		}
		if article != nil {
			ligne.Reference = article.Reference
			ligne.Designation = article.Designation
			ligne.Poids = article.PoidsUnitaire.Mul(decimal.NewFromInt(int64(actuelle)))
		}
		out.PoidsTotal = out.PoidsTotal.Add(ligne.Poids)
		out.Lignes = append(out.Lignes, ligne)
	}
	return out, nil
}

func toChantierResponse(c *entity.Chantier) *dto.ChantierResponse {
	return &dto.ChantierResponse{
		ID:        c.ID,
		Nom:       c.Nom,
		Adresse:   c.Adresse,
		Statut:    c.Statut,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
