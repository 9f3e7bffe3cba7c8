package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound          = errors.New("ressource introuvable")
	ErrInvalidInput      = errors.New("entrée invalide")
	ErrDuplicate         = errors.New("ressource dupliquée")
	ErrConflict          = errors.New("conflit avec l'état actuel")
	ErrInsufficientStock = errors.New("stock insuffisant")

	// Conflits métier spécifiques, tous résolubles par errors.Is(err, ErrConflict).
	ErrArticleInactif    = fmt.Errorf("article désactivé: %w", ErrConflict)
	ErrChantierFerme     = fmt.Errorf("chantier déjà fermé: %w", ErrConflict)
	ErrLocationRetournee = fmt.Errorf("location déjà retournée: %w", ErrConflict)
)

// InsufficientStockError porte le détail d'un refus de sortie : la quantité
// demandée, ce qui reste dans le compartiment sollicité et le manque.
// Enveloppe ErrInsufficientStock pour errors.Is.
type InsufficientStockError struct {
	ArticleID  string
	Reference  string
	Demandee   int
	Disponible int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuffisant pour %s : demandé %d, disponible %d (manque %d)",
		e.Reference, e.Demandee, e.Disponible, e.Manquante())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Manquante renvoie max(0, demandée - disponible).
func (e *InsufficientStockError) Manquante() int {
	if e.Demandee <= e.Disponible {
		return 0
	}
	return e.Demandee - e.Disponible
}

// LigneErreur décrit une ligne refusée dans un import ou une clôture.
type LigneErreur struct {
	Reference  string `json:"reference"`
	ArticleID  string `json:"articleId,omitempty"`
	Quantite   int    `json:"quantite"`
	Disponible int    `json:"quantiteDisponible,omitempty"`
	Manquante  int    `json:"quantiteManquante,omitempty"`
	Motif      string `json:"motif"`
}

// ImportValidationError agrège toutes les lignes fautives d'un import en un
// seul rapport : l'import est tout-ou-rien, aucune ligne n'est appliquée.
type ImportValidationError struct {
	Lignes []LigneErreur
}

func (e *ImportValidationError) Error() string {
	motifs := make([]string, 0, len(e.Lignes))
	for _, l := range e.Lignes {
		motifs = append(motifs, fmt.Sprintf("%s: %s", l.Reference, l.Motif))
	}
	return fmt.Sprintf("import refusé, %d ligne(s) invalide(s) : %s", len(e.Lignes), strings.Join(motifs, "; "))
}

func (e *ImportValidationError) Unwrap() error { return ErrInvalidInput }

// ClosureValidationError agrège les articles fautifs d'une clôture de chantier.
type ClosureValidationError struct {
	ChantierID string
	Lignes     []LigneErreur
}

func (e *ClosureValidationError) Error() string {
	motifs := make([]string, 0, len(e.Lignes))
	for _, l := range e.Lignes {
		motifs = append(motifs, fmt.Sprintf("%s: %s", l.Reference, l.Motif))
	}
	return fmt.Sprintf("clôture du chantier %s refusée : %s", e.ChantierID, strings.Join(motifs, "; "))
}

func (e *ClosureValidationError) Unwrap() error { return ErrInvalidInput }
