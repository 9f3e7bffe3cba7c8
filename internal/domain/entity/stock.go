package entity

import "time"

// StockGlobal est la projection matérialisée du journal pour un article :
// répartition de la quantité totale entre les compartiments disponible,
// sur chantier, hors service et en location Layher.
// Invariant de conservation :
//
//	QuantiteTotale = QuantiteDisponible + QuantiteSurChantier + QuantiteHS + QuantiteLayher
type StockGlobal struct {
	ArticleID           string
	QuantiteTotale      int
	QuantiteDisponible  int
	QuantiteSurChantier int
	QuantiteHS          int
	QuantiteLayher      int
	UpdatedAt           time.Time
}

// StockChantier est la projection par (chantier, article) : cumul livré,
// cumul revenu, et la quantité encore sur place.
type StockChantier struct {
	ChantierID     string
	ArticleID      string
	QuantiteLivree int
	QuantiteRecue  int
	UpdatedAt      time.Time
}

// QuantiteActuelle renvoie livré - reçu. Ne doit jamais être négatif.
func (s StockChantier) QuantiteActuelle() int {
	return s.QuantiteLivree - s.QuantiteRecue
}
