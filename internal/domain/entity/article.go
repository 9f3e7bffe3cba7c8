package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article représente un type de matériel d'échafaudage du catalogue
// (référence unique, désignation, poids unitaire en kg).
// Jamais supprimé, seulement désactivé : les mouvements historiques doivent
// rester résolubles.
type Article struct {
	ID              string
	Reference       string // code métier unique, ex. "LAY-2657"
	Designation     string
	DesignationNorm string          // désignation normalisée (sans accents, minuscules) pour la recherche
	PoidsUnitaire   decimal.Decimal // kg
	Categorie       string
	Actif           bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
