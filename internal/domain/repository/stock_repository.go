package repository

import "github.com/ateliergranit/parc-echafaudage/internal/domain/entity"

// StockRepository port de la projection globale matérialisée.
// GetForUpdate verrouille la ligne (SELECT FOR UPDATE) : c'est le point de
// sérialisation par article entre la garde de disponibilité et l'écriture.
type StockRepository interface {
	Get(articleID string) (*entity.StockGlobal, error)
	GetForUpdate(articleID string) (*entity.StockGlobal, error)
	Upsert(stock *entity.StockGlobal) error
	List(limit, offset int) ([]*entity.StockGlobal, error)
	// ListHS renvoie les articles dont le compartiment HS est non nul.
	ListHS() ([]*entity.StockGlobal, error)
	// DeleteAll vide la projection avant un rejeu complet.
	DeleteAll() error
}

// StockChantierRepository port de la projection par (chantier, article).
type StockChantierRepository interface {
	Get(chantierID, articleID string) (*entity.StockChantier, error)
	GetForUpdate(chantierID, articleID string) (*entity.StockChantier, error)
	Upsert(stock *entity.StockChantier) error
	ListByChantier(chantierID string) ([]*entity.StockChantier, error)
	DeleteAll() error
}
