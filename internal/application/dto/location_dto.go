package dto

import "time"

// CreerLocationRequest body pour POST /api/locations.
type CreerLocationRequest struct {
	ArticleID        string     `json:"articleId"`
	Quantite         int        `json:"quantite"`
	NumeroCommande   string     `json:"numeroCommande"`
	DateRetourPrevue *time.Time `json:"dateRetourPrevue,omitempty"`
	Commentaire      string     `json:"commentaire,omitempty"`
}

// RetourLocationRequest body pour POST /api/locations/:id/retour.
// Quantite peut être inférieure au restant : les retours partiels
// s'accumulent, le statut ne bascule qu'au retour complet.
type RetourLocationRequest struct {
	Quantite    int    `json:"quantite"`
	Commentaire string `json:"commentaire,omitempty"`
}

// LocationResponse représentation HTTP d'une position de location.
type LocationResponse struct {
	ID                  string     `json:"id"`
	ArticleID           string     `json:"articleId"`
	Quantite            int        `json:"quantite"`
	QuantiteRetournee   int        `json:"quantiteRetournee"`
	QuantiteRestante    int        `json:"quantiteRestante"`
	DateLocation        time.Time  `json:"dateLocation"`
	DateRetourPrevue    *time.Time `json:"dateRetourPrevue,omitempty"`
	DateRetourEffective *time.Time `json:"dateRetourEffective,omitempty"`
	NumeroCommande      string     `json:"numeroCommande"`
	Statut              string     `json:"statut"`
}

// LocationListResponse page de positions de location.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Page      PageResponse       `json:"page"`
}
