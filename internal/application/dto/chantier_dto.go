package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateChantierRequest body pour POST /api/chantiers.
type CreateChantierRequest struct {
	Nom     string `json:"nom"`
	Adresse string `json:"adresse,omitempty"`
}

// ChantierResponse représentation HTTP d'un chantier.
type ChantierResponse struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Adresse   string    `json:"adresse,omitempty"`
	Statut    string    `json:"statut"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InventaireLigne une ligne d'inventaire chantier, avec le poids de la
// quantité encore sur place (poids unitaire x quantité actuelle).
type InventaireLigne struct {
	ArticleID        string          `json:"articleId"`
	Reference        string          `json:"reference"`
	Designation      string          `json:"designation"`
	QuantiteLivree   int             `json:"quantiteLivree"`
	QuantiteRecue    int             `json:"quantiteRecue"`
	QuantiteActuelle int             `json:"quantiteActuelle"`
	Poids            decimal.Decimal `json:"poids"` // kg
}

// InventaireResponse inventaire complet d'un chantier.
type InventaireResponse struct {
	ChantierID string            `json:"chantierId"`
	Lignes     []InventaireLigne `json:"lignes"`
	PoidsTotal decimal.Decimal   `json:"poidsTotal"` // kg
}

// ClotureRequest body pour POST /api/chantiers/:id/cloture.
// Casse donne, par article présent sur le chantier, le nombre d'unités à
// déclarer hors service ; les autres reviennent en stock disponible.
type ClotureRequest struct {
	Casse       map[string]int `json:"casse"`
	Commentaire string         `json:"commentaire,omitempty"`
}

// ClotureResponse bilan d'une clôture.
type ClotureResponse struct {
	ChantierID        string `json:"chantierId"`
	MouvementsGeneres int    `json:"mouvementsGeneres"`
	UnitesRetournees  int    `json:"unitesRetournees"`
	UnitesHS          int    `json:"unitesHs"`
}
