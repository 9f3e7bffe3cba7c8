package repository

import "github.com/ateliergranit/parc-echafaudage/internal/domain/entity"

// ArticleRepository définit le port de persistance du catalogue (DIP).
// Pas de Delete : un article se désactive, les mouvements historiques doivent
// rester résolubles.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	GetByReference(reference string) (*entity.Article, error)
	Update(article *entity.Article) error
	Deactivate(id string) error
	// List filtre par texte normalisé (référence ou désignation), "" = tous.
	List(q string, limit, offset int) ([]*entity.Article, error)
}
