package dto

import "github.com/ateliergranit/parc-echafaudage/internal/domain"

// PageRequest pagination des listes.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage applique les valeurs par défaut si Limit/Offset sont absents.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 200 {
		p.Limit = 200
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse corps d'erreur HTTP. Lignes porte le détail ligne à ligne des
// refus d'import ou de clôture (le rapport énumère toutes les lignes fautives,
// pas seulement la première).
type ErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Lignes  []domain.LigneErreur `json:"lignes,omitempty"`
}
