package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implémentation du catalogue sur PostgreSQL (pool ou tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

const articleColonnes = `id, reference, designation, designation_norm, poids_unitaire, categorie, actif, created_at, updated_at`

// Create persiste un article. Référence dupliquée -> domain.ErrDuplicate.
func (r *ArticleRepo) Create(a *entity.Article) error {
	query := `
		INSERT INTO catalogue_articles (id, reference, designation, designation_norm, poids_unitaire, categorie, actif, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Reference, a.Designation, a.DesignationNorm, a.PoidsUnitaire,
		nullable(a.Categorie), a.Actif, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// GetByID renvoie un article par ID, nil si absent.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	return r.get(`SELECT `+articleColonnes+` FROM catalogue_articles WHERE id = $1`, id)
}

// GetByReference renvoie un article par référence métier, nil si absent.
func (r *ArticleRepo) GetByReference(reference string) (*entity.Article, error) {
	return r.get(`SELECT `+articleColonnes+` FROM catalogue_articles WHERE reference = $1`, reference)
}

func (r *ArticleRepo) get(query string, arg any) (*entity.Article, error) {
	var a entity.Article
	var categorie *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Reference, &a.Designation, &a.DesignationNorm, &a.PoidsUnitaire,
		&categorie, &a.Actif, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	if categorie != nil {
		a.Categorie = *categorie
	}
	return &a, nil
}

// Update met à jour les champs modifiables (jamais la référence).
func (r *ArticleRepo) Update(a *entity.Article) error {
	query := `
		UPDATE catalogue_articles
		SET designation = $2, designation_norm = $3, poids_unitaire = $4, categorie = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Designation, a.DesignationNorm, a.PoidsUnitaire, nullable(a.Categorie), a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Deactivate passe l'article en inactif (soft delete).
func (r *ArticleRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE catalogue_articles SET actif = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate article: %w", err)
	}
	return nil
}

// List recherche par référence ou désignation normalisée ("" = tous),
// classé par référence.
func (r *ArticleRepo) List(q string, limit, offset int) ([]*entity.Article, error) {
	query := `SELECT ` + articleColonnes + ` FROM catalogue_articles`
	args := []any{}
	if q != "" {
		query += ` WHERE designation_norm LIKE '%' || $1 || '%' OR lower(reference) LIKE '%' || $1 || '%'`
		args = append(args, q)
	}
	query += fmt.Sprintf(` ORDER BY reference LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		var categorie *string
		if err := rows.Scan(&a.ID, &a.Reference, &a.Designation, &a.DesignationNorm,
			&a.PoidsUnitaire, &categorie, &a.Actif, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		if categorie != nil {
			a.Categorie = *categorie
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// nullable convertit "" en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
