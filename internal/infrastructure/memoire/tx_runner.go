package memoire

import (
	"context"

	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
)

var _ parc.TxRunner = (*TxRunner)(nil)

// TxRunner transaction mémoire : un instantané est pris avant le callback et
// restauré si celui-ci échoue. Les transactions sont sérialisées par un mutex,
// ce qui suffit pour les tests.
type TxRunner struct {
	store *Store
}

// NewTxRunner construit le runner sur le store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run exécute fn avec des repositories sur le même store ; toute erreur
// ramène l'état exactement à celui d'avant l'appel.
func (r *TxRunner) Run(ctx context.Context, fn func(parc.TxRepos) error) error {
	r.store.mu.Lock()
	avant := r.store.prendre()
	r.store.mu.Unlock()

	repos := parc.TxRepos{
		Articles:      NewArticleRepository(r.store),
		Mouvements:    NewMouvementRepository(r.store),
		Stock:         NewStockRepository(r.store),
		StockChantier: NewStockChantierRepository(r.store),
		Locations:     NewLocationRepository(r.store),
		Listes:        NewListeRepository(r.store),
		Chantiers:     NewChantierRepository(r.store),
	}
	if err := fn(repos); err != nil {
		r.store.mu.Lock()
		r.store.restaurer(avant)
		r.store.mu.Unlock()
		return err
	}
	return nil
}
