package memoire

import (
	"sort"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.LocationLayherRepository = (*LocationRepo)(nil)

// LocationRepo positions de location en mémoire.
type LocationRepo struct {
	s *Store
}

// NewLocationRepository construit l'adaptateur.
func NewLocationRepository(s *Store) *LocationRepo {
	return &LocationRepo{s: s}
}

func (r *LocationRepo) Create(l *entity.LocationLayher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.locations[l.ID] = *l
	return nil
}

func (r *LocationRepo) GetByID(id string) (*entity.LocationLayher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *LocationRepo) GetForUpdate(id string) (*entity.LocationLayher, error) {
	return r.GetByID(id)
}

func (r *LocationRepo) Update(l *entity.LocationLayher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.locations[l.ID] = *l
	return nil
}

func (r *LocationRepo) List(statut, articleID string, limit, offset int) ([]*entity.LocationLayher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.LocationLayher
	for _, l := range r.s.locations {
		if statut != "" && l.Statut != statut {
			continue
		}
		if articleID != "" && l.ArticleID != articleID {
			continue
		}
		copie := l
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].DateLocation.Equal(list[j].DateLocation) {
			return list[i].DateLocation.After(list[j].DateLocation)
		}
		return list[i].ID < list[j].ID
	})
	return page(list, limit, offset), nil
}
