package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateArticleRequest body pour POST /api/catalogue.
type CreateArticleRequest struct {
	Reference     string          `json:"reference"`
	Designation   string          `json:"designation"`
	PoidsUnitaire decimal.Decimal `json:"poidsUnitaire"` // kg
	Categorie     string          `json:"categorie,omitempty"`
}

// UpdateArticleRequest body pour PUT /api/catalogue/:id (champs optionnels).
type UpdateArticleRequest struct {
	Designation   *string          `json:"designation,omitempty"`
	PoidsUnitaire *decimal.Decimal `json:"poidsUnitaire,omitempty"`
	Categorie     *string          `json:"categorie,omitempty"`
}

// ArticleResponse représentation HTTP d'un article du catalogue.
type ArticleResponse struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	Designation   string          `json:"designation"`
	PoidsUnitaire decimal.Decimal `json:"poidsUnitaire"`
	Categorie     string          `json:"categorie,omitempty"`
	Actif         bool            `json:"actif"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ArticleListResponse liste paginée d'articles.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Page     PageResponse      `json:"page"`
}

// PageResponse métadonnées de pagination.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
