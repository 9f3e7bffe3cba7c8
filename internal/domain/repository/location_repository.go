package repository

import "github.com/ateliergranit/parc-echafaudage/internal/domain/entity"

// LocationLayherRepository port de persistance des positions de location.
// La ligne se verrouille (GetForUpdate) pendant un retour pour empêcher deux
// retours concurrents de dépasser la quantité louée.
type LocationLayherRepository interface {
	Create(location *entity.LocationLayher) error
	GetByID(id string) (*entity.LocationLayher, error)
	GetForUpdate(id string) (*entity.LocationLayher, error)
	Update(location *entity.LocationLayher) error
	// List filtre par statut ("" = toutes) et par article ("" = tous).
	List(statut, articleID string, limit, offset int) ([]*entity.LocationLayher, error)
}
