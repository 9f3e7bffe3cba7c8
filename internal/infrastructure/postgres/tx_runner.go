package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
)

var _ parc.TxRunner = (*TxRunner)(nil)

// TxRunner exécute les callbacks du moteur de stock dans une transaction
// PostgreSQL : Commit si le callback renvoie nil, Rollback sinon.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ouvre la transaction et passe au callback des repositories attachés à
// celle-ci. Les verrous SELECT FOR UPDATE pris par les repositories tiennent
// jusqu'au Commit/Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(parc.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := parc.TxRepos{
		Articles:      NewArticleRepository(tx),
		Mouvements:    NewMouvementRepository(tx),
		Stock:         NewStockRepository(tx),
		StockChantier: NewStockChantierRepository(tx),
		Locations:     NewLocationRepository(tx),
		Listes:        NewListeRepository(tx),
		Chantiers:     NewChantierRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
