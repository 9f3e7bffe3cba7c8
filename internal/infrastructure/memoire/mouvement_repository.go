package memoire

import (
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.MouvementRepository = (*MouvementRepo)(nil)

// MouvementRepo journal en mémoire, en ordre d'append.
type MouvementRepo struct {
	s *Store
}

// NewMouvementRepository construit l'adaptateur.
func NewMouvementRepository(s *Store) *MouvementRepo {
	return &MouvementRepo{s: s}
}

func (r *MouvementRepo) Create(m *entity.Mouvement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m.CleIdempotence != "" {
		if r.s.cles[m.CleIdempotence] {
			return domain.ErrDuplicate
		}
		r.s.cles[m.CleIdempotence] = true
	}
	r.s.mouvements = append(r.s.mouvements, *m)
	return nil
}

func (r *MouvementRepo) GetByID(id string) (*entity.Mouvement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.mouvements {
		if m.ID == id {
			copie := m
			return &copie, nil
		}
	}
	return nil, nil
}

func (r *MouvementRepo) List(filtre repository.FiltreMouvements, limit, offset int) ([]*entity.Mouvement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Mouvement
	// Du plus récent au plus ancien, comme le SQL.
	for i := len(r.s.mouvements) - 1; i >= 0; i-- {
		m := r.s.mouvements[i]
		if filtre.ArticleID != "" && m.ArticleID != filtre.ArticleID {
			continue
		}
		if filtre.ChantierID != "" && m.ChantierID != filtre.ChantierID {
			continue
		}
		if filtre.ListeID != "" && m.ListeID != filtre.ListeID {
			continue
		}
		if filtre.Type != "" && m.Type != filtre.Type {
			continue
		}
		copie := m
		list = append(list, &copie)
	}
	return page(list, limit, offset), nil
}

func (r *MouvementRepo) ForEach(fn func(*entity.Mouvement) error) error {
	r.s.mu.Lock()
	journal := append([]entity.Mouvement(nil), r.s.mouvements...)
	r.s.mu.Unlock()
	for i := range journal {
		if err := fn(&journal[i]); err != nil {
			return err
		}
	}
	return nil
}
