package dto

// LigneImport une ligne de bon de livraison ou de retour, déjà résolue en
// amont (parsing tableur / extraction) en (référence, quantités).
type LigneImport struct {
	Reference  string `json:"reference"`
	Quantite   int    `json:"quantite"`
	QuantiteHS int    `json:"quantiteHs,omitempty"` // retours uniquement : unités revenant cassées
}

// ImportLivraisonRequest body pour POST /api/listes/livraison.
// L'import est tout-ou-rien : la moindre ligne invalide rejette le lot entier.
type ImportLivraisonRequest struct {
	ChantierID     string        `json:"chantierId"`
	CleIdempotence string        `json:"cleIdempotence,omitempty"`
	Commentaire    string        `json:"commentaire,omitempty"`
	Lignes         []LigneImport `json:"lignes"`
}

// ImportRetourRequest body pour POST /api/listes/retour.
type ImportRetourRequest struct {
	ChantierID     string        `json:"chantierId"`
	CleIdempotence string        `json:"cleIdempotence,omitempty"`
	Commentaire    string        `json:"commentaire,omitempty"`
	Lignes         []LigneImport `json:"lignes"`
}

// ImportResponse bilan d'un import appliqué.
type ImportResponse struct {
	ListeID           string `json:"listeId"`
	MouvementsGeneres int    `json:"mouvementsGeneres"`
}
