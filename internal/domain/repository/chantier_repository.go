package repository

import "github.com/ateliergranit/parc-echafaudage/internal/domain/entity"

// ChantierRepository port de persistance des chantiers.
type ChantierRepository interface {
	Create(chantier *entity.Chantier) error
	GetByID(id string) (*entity.Chantier, error)
	Update(chantier *entity.Chantier) error
	List(statut string, limit, offset int) ([]*entity.Chantier, error)
}

// ListeRepository port de persistance des en-têtes de listes importées.
type ListeRepository interface {
	Create(liste *entity.Liste) error
	GetByID(id string) (*entity.Liste, error)
	List(chantierID string, limit, offset int) ([]*entity.Liste, error)
}
