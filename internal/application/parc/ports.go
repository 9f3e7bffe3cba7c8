package parc

import (
	"context"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

// TxRepos regroupe les repositories liés à une même transaction.
// Toute écriture gardée par la disponibilité (relire le solde, valider,
// écrire) passe par eux, jamais par les repositories attachés au pool.
type TxRepos struct {
	Articles      repository.ArticleRepository
	Mouvements    repository.MouvementRepository
	Stock         repository.StockRepository
	StockChantier repository.StockChantierRepository
	Locations     repository.LocationLayherRepository
	Listes        repository.ListeRepository
	Chantiers     repository.ChantierRepository
}

// TxRunner exécute une fonction dans une transaction de BD, en lui passant
// des repositories attachés à cette transaction. Commit si fn renvoie nil,
// Rollback sinon : c'est la garantie d'atomicité du moteur de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
