package memoire

import (
	"sort"
	"strings"

	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo catalogue en mémoire.
type ArticleRepo struct {
	s *Store
}

// NewArticleRepository construit l'adaptateur.
func NewArticleRepository(s *Store) *ArticleRepo {
	return &ArticleRepo{s: s}
}

func (r *ArticleRepo) Create(a *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, pris := r.s.parReference[a.Reference]; pris {
		return domain.ErrDuplicate
	}
	r.s.articles[a.ID] = *a
	r.s.parReference[a.Reference] = a.ID
	return nil
}

func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *ArticleRepo) GetByReference(reference string) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.parReference[reference]
	if !ok {
		return nil, nil
	}
	a := r.s.articles[id]
	return &a, nil
}

func (r *ArticleRepo) Update(a *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.articles[a.ID] = *a
	return nil
}

func (r *ArticleRepo) Deactivate(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Actif = false
	r.s.articles[id] = a
	return nil
}

func (r *ArticleRepo) List(q string, limit, offset int) ([]*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Article
	for _, a := range r.s.articles {
		if q != "" && !strings.Contains(a.DesignationNorm, q) &&
			!strings.Contains(strings.ToLower(a.Reference), q) {
			continue
		}
		copie := a
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Reference < list[j].Reference })
	return page(list, limit, offset), nil
}

// page découpe la tranche triée comme un LIMIT/OFFSET SQL.
func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
