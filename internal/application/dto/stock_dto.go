package dto

// StockGlobalDTO projection globale d'un article (répartition par compartiment).
type StockGlobalDTO struct {
	ArticleID           string `json:"articleId"`
	Reference           string `json:"reference,omitempty"`
	Designation         string `json:"designation,omitempty"`
	QuantiteTotale      int    `json:"quantiteTotale"`
	QuantiteDisponible  int    `json:"quantiteDisponible"`
	QuantiteSurChantier int    `json:"quantiteSurChantier"`
	QuantiteHS          int    `json:"quantiteHs"`
	QuantiteLayher      int    `json:"quantiteLayher"`
}

// DisponibiliteDTO résultat de la garde de disponibilité.
type DisponibiliteDTO struct {
	ArticleID          string `json:"articleId"`
	Disponible         bool   `json:"disponible"`
	QuantiteDisponible int    `json:"quantiteDisponible"`
	QuantiteManquante  int    `json:"quantiteManquante"`
}

// ReconstructionResponse bilan d'un rejeu complet du journal.
type ReconstructionResponse struct {
	MouvementsRejoues int `json:"mouvementsRejoues"`
	ArticlesProjetes  int `json:"articlesProjetes"`
	LignesChantier    int `json:"lignesChantier"`
}
