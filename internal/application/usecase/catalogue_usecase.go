package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
	"github.com/ateliergranit/parc-echafaudage/pkg/normalise"
)

// CatalogueUseCase administration du catalogue matériel. Jamais de
// suppression : un article sort du catalogue par désactivation pour que les
// mouvements historiques restent résolubles.
type CatalogueUseCase struct {
	repo repository.ArticleRepository
}

// NewCatalogueUseCase construit le cas d'usage.
func NewCatalogueUseCase(repo repository.ArticleRepository) *CatalogueUseCase {
	return &CatalogueUseCase{repo: repo}
}

// Creer ajoute un article au catalogue. La référence est unique.
func (uc *CatalogueUseCase) Creer(in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Reference == "" || in.Designation == "" || in.PoidsUnitaire.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existant, err := uc.repo.GetByReference(in.Reference)
	if err != nil {
		return nil, err
	}
	if existant != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	article := &entity.Article{
		ID:              uuid.New().String(),
		Reference:       in.Reference,
		Designation:     in.Designation,
		DesignationNorm: normalise.Chaine(in.Designation),
		PoidsUnitaire:   in.PoidsUnitaire,
		Categorie:       in.Categorie,
		Actif:           true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// Obtenir renvoie un article par ID.
func (uc *CatalogueUseCase) Obtenir(id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article), nil
}

// Modifier met à jour désignation, poids ou catégorie (jamais la référence :
// c'est la clé métier des mouvements).
func (uc *CatalogueUseCase) Modifier(id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.Designation != nil {
		article.Designation = *in.Designation
		article.DesignationNorm = normalise.Chaine(*in.Designation)
	}
	if in.PoidsUnitaire != nil {
		if in.PoidsUnitaire.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		article.PoidsUnitaire = *in.PoidsUnitaire
	}
	if in.Categorie != nil {
		article.Categorie = *in.Categorie
	}
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// Desactiver retire l'article du catalogue actif (soft delete).
func (uc *CatalogueUseCase) Desactiver(id string) error {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// Lister recherche dans le catalogue. La requête est normalisée (accents,
// casse) avant d'être passée au repository.
func (uc *CatalogueUseCase) Lister(q string, page dto.PageRequest) (*dto.ArticleListResponse, error) {
	page.DefaultPage()
	articles, err := uc.repo.List(normalise.Chaine(q), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ArticleListResponse{
		Articles: make([]dto.ArticleResponse, 0, len(articles)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, a := range articles {
		out.Articles = append(out.Articles, *toArticleResponse(a))
	}
	return out, nil
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:            a.ID,
		Reference:     a.Reference,
		Designation:   a.Designation,
		PoidsUnitaire: a.PoidsUnitaire,
		Categorie:     a.Categorie,
		Actif:         a.Actif,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
