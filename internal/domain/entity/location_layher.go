package entity

import "time"

// Statuts d'une location Layher.
const (
	LocationEnCours  = "en_cours"
	LocationRetournee = "retourne"
)

// LocationLayher suit une position de location : du matériel du parc mis en
// location sous un numéro de commande, à rendre en une ou plusieurs fois.
// Les retours partiels s'accumulent dans QuantiteRetournee ; le statut passe
// à "retourne" quand tout est revenu. Pas de retour en arrière : relouer du
// matériel rendu ouvre une nouvelle location.
type LocationLayher struct {
	ID                 string
	ArticleID          string
	Quantite           int
	QuantiteRetournee  int
	DateLocation       time.Time
	DateRetourPrevue   *time.Time
	DateRetourEffective *time.Time
	NumeroCommande     string
	Statut             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// QuantiteRestante renvoie ce qui est encore dehors.
func (l LocationLayher) QuantiteRestante() int {
	return l.Quantite - l.QuantiteRetournee
}
