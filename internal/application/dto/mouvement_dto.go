package dto

import "time"

// EnregistrerMouvementRequest body pour POST /api/mouvements.
type EnregistrerMouvementRequest struct {
	ArticleID      string `json:"articleId"`
	Type           string `json:"type"`
	Quantite       int    `json:"quantite"`
	Source         string `json:"source,omitempty"`
	Destination    string `json:"destination,omitempty"`
	ChantierID     string `json:"chantierId,omitempty"`
	ListeID        string `json:"listeId,omitempty"`
	CleIdempotence string `json:"cleIdempotence,omitempty"`
	Commentaire    string `json:"commentaire,omitempty"`
}

// MouvementResponse écriture persistée, accompagnée de la projection à jour
// de l'article (lecture de ses propres écritures sans refetch).
type MouvementResponse struct {
	ID          string         `json:"id"`
	ArticleID   string         `json:"articleId"`
	Type        string         `json:"type"`
	Quantite    int            `json:"quantite"`
	Source      string         `json:"source,omitempty"`
	Destination string         `json:"destination,omitempty"`
	ChantierID  string         `json:"chantierId,omitempty"`
	ListeID     string         `json:"listeId,omitempty"`
	Commentaire string         `json:"commentaire,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Stock       StockGlobalDTO `json:"stock"`
}

// MouvementListResponse page du journal.
type MouvementListResponse struct {
	Mouvements []MouvementResponse `json:"mouvements"`
	Page       PageResponse        `json:"page"`
}
