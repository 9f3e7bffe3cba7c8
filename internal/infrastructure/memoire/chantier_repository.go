package memoire

import (
	"sort"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.ChantierRepository = (*ChantierRepo)(nil)

// ChantierRepo chantiers en mémoire.
type ChantierRepo struct {
	s *Store
}

// NewChantierRepository construit l'adaptateur.
func NewChantierRepository(s *Store) *ChantierRepo {
	return &ChantierRepo{s: s}
}

func (r *ChantierRepo) Create(c *entity.Chantier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.chantiers[c.ID] = *c
	return nil
}

func (r *ChantierRepo) GetByID(id string) (*entity.Chantier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.chantiers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ChantierRepo) Update(c *entity.Chantier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.chantiers[c.ID] = *c
	return nil
}

func (r *ChantierRepo) List(statut string, limit, offset int) ([]*entity.Chantier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Chantier
	for _, c := range r.s.chantiers {
		if statut != "" && c.Statut != statut {
			continue
		}
		copie := c
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nom < list[j].Nom })
	return page(list, limit, offset), nil
}

var _ repository.ListeRepository = (*ListeRepo)(nil)

// ListeRepo en-têtes de listes en mémoire.
type ListeRepo struct {
	s *Store
}

// NewListeRepository construit l'adaptateur.
func NewListeRepository(s *Store) *ListeRepo {
	return &ListeRepo{s: s}
}

func (r *ListeRepo) Create(l *entity.Liste) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.listes[l.ID] = *l
	return nil
}

func (r *ListeRepo) GetByID(id string) (*entity.Liste, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.listes[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *ListeRepo) List(chantierID string, limit, offset int) ([]*entity.Liste, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Liste
	for _, l := range r.s.listes {
		if chantierID != "" && l.ChantierID != chantierID {
			continue
		}
		copie := l
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}
