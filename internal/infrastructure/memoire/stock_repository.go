package memoire

import (
	"sort"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo projection globale en mémoire. Ligne absente = stock à zéro.
type StockRepo struct {
	s *Store
}

// NewStockRepository construit l'adaptateur.
func NewStockRepository(s *Store) *StockRepo {
	return &StockRepo{s: s}
}

func (r *StockRepo) Get(articleID string) (*entity.StockGlobal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	s, ok := r.s.stocks[articleID]
	if !ok {
		return &entity.StockGlobal{ArticleID: articleID}, nil
	}
	return &s, nil
}

func (r *StockRepo) GetForUpdate(articleID string) (*entity.StockGlobal, error) {
	return r.Get(articleID)
}

func (r *StockRepo) Upsert(s *entity.StockGlobal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stocks[s.ArticleID] = *s
	return nil
}

func (r *StockRepo) List(limit, offset int) ([]*entity.StockGlobal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.StockGlobal
	for _, s := range r.s.stocks {
		copie := s
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ArticleID < list[j].ArticleID })
	return page(list, limit, offset), nil
}

func (r *StockRepo) ListHS() ([]*entity.StockGlobal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.StockGlobal
	for _, s := range r.s.stocks {
		if s.QuantiteHS <= 0 {
			continue
		}
		copie := s
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ArticleID < list[j].ArticleID })
	return list, nil
}

func (r *StockRepo) DeleteAll() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stocks = make(map[string]entity.StockGlobal)
	return nil
}

var _ repository.StockChantierRepository = (*StockChantierRepo)(nil)

// StockChantierRepo projection (chantier, article) en mémoire.
type StockChantierRepo struct {
	s *Store
}

// NewStockChantierRepository construit l'adaptateur.
func NewStockChantierRepository(s *Store) *StockChantierRepo {
	return &StockChantierRepo{s: s}
}

func (r *StockChantierRepo) Get(chantierID, articleID string) (*entity.StockChantier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sc, ok := r.s.stocksChantier[cleChantier{chantierID, articleID}]
	if !ok {
		return &entity.StockChantier{ChantierID: chantierID, ArticleID: articleID}, nil
	}
	return &sc, nil
}

func (r *StockChantierRepo) GetForUpdate(chantierID, articleID string) (*entity.StockChantier, error) {
	return r.Get(chantierID, articleID)
}

func (r *StockChantierRepo) Upsert(sc *entity.StockChantier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stocksChantier[cleChantier{sc.ChantierID, sc.ArticleID}] = *sc
	return nil
}

func (r *StockChantierRepo) ListByChantier(chantierID string) ([]*entity.StockChantier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.StockChantier
	for cle, sc := range r.s.stocksChantier {
		if cle.chantierID != chantierID {
			continue
		}
		copie := sc
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ArticleID < list[j].ArticleID })
	return list, nil
}

func (r *StockChantierRepo) DeleteAll() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stocksChantier = make(map[cleChantier]entity.StockChantier)
	return nil
}
