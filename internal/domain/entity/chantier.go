package entity

import "time"

// Statuts d'un chantier.
const (
	ChantierOuvert = "ouvert"
	ChantierFerme  = "ferme"
)

// Chantier est un lieu virtuel pouvant détenir du matériel livré.
// La clôture rapatrie tout le matériel (bons + HS) et passe le statut à "ferme".
type Chantier struct {
	ID        string
	Nom       string
	Adresse   string
	Statut    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
