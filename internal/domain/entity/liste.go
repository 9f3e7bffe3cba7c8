package entity

import "time"

// Types de liste (en-tête d'un lot de mouvements importés).
const (
	ListeLivraison = "livraison"
	ListeRetour    = "retour"
)

// Liste est l'en-tête d'un bon de livraison ou de retour importé : les
// mouvements générés par l'import la référencent via ListeID.
type Liste struct {
	ID         string
	Type       string
	ChantierID string
	Commentaire string
	CreatedAt  time.Time
}
