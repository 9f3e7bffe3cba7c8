package repository

import "github.com/ateliergranit/parc-echafaudage/internal/domain/entity"

// FiltreMouvements critères de consultation du journal.
type FiltreMouvements struct {
	ArticleID  string
	ChantierID string
	ListeID    string
	Type       string
}

// MouvementRepository définit le port de persistance du journal.
// Append-only : Create est la seule écriture, pas d'Update ni de Delete.
// Les corrections se font par mouvements compensatoires.
type MouvementRepository interface {
	Create(mouvement *entity.Mouvement) error
	GetByID(id string) (*entity.Mouvement, error)
	List(filtre FiltreMouvements, limit, offset int) ([]*entity.Mouvement, error)
	// ForEach parcourt tout le journal par ordre de création (rejeu complet).
	ForEach(fn func(*entity.Mouvement) error) error
}
