package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.ChantierRepository = (*ChantierRepo)(nil)

// ChantierRepo chantiers sur PostgreSQL.
type ChantierRepo struct {
	q Querier
}

// NewChantierRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewChantierRepository(q Querier) *ChantierRepo {
	return &ChantierRepo{q: q}
}

const chantierColonnes = `id, nom, adresse, statut, created_at, updated_at`

// Create persiste un chantier.
func (r *ChantierRepo) Create(c *entity.Chantier) error {
	query := `
		INSERT INTO chantiers (` + chantierColonnes + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nom, nullable(c.Adresse), c.Statut, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create chantier: %w", err)
	}
	return nil
}

// GetByID renvoie un chantier par ID, nil si absent.
func (r *ChantierRepo) GetByID(id string) (*entity.Chantier, error) {
	var c entity.Chantier
	var adresse *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+chantierColonnes+` FROM chantiers WHERE id = $1`, id).Scan(
		&c.ID, &c.Nom, &adresse, &c.Statut, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chantier: %w", err)
	}
	if adresse != nil {
		c.Adresse = *adresse
	}
	return &c, nil
}

// Update réécrit le chantier (statut notamment).
func (r *ChantierRepo) Update(c *entity.Chantier) error {
	query := `
		UPDATE chantiers
		SET nom = $2, adresse = $3, statut = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nom, nullable(c.Adresse), c.Statut, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chantier: %w", err)
	}
	return nil
}

// List filtre par statut ("" = tous), classé par nom.
func (r *ChantierRepo) List(statut string, limit, offset int) ([]*entity.Chantier, error) {
	query := `SELECT ` + chantierColonnes + ` FROM chantiers`
	args := []any{}
	if statut != "" {
		query += ` WHERE statut = $1`
		args = append(args, statut)
	}
	query += fmt.Sprintf(` ORDER BY nom LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chantiers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Chantier
	for rows.Next() {
		var c entity.Chantier
		var adresse *string
		if err := rows.Scan(&c.ID, &c.Nom, &adresse, &c.Statut, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chantier: %w", err)
		}
		if adresse != nil {
			c.Adresse = *adresse
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

var _ repository.ListeRepository = (*ListeRepo)(nil)

// ListeRepo en-têtes des listes importées sur PostgreSQL.
type ListeRepo struct {
	q Querier
}

// NewListeRepository construit l'adaptateur.
func NewListeRepository(q Querier) *ListeRepo {
	return &ListeRepo{q: q}
}

const listeColonnes = `id, type, chantier_id, commentaire, created_at`

// Create persiste un en-tête de liste.
func (r *ListeRepo) Create(l *entity.Liste) error {
	query := `
		INSERT INTO listes (` + listeColonnes + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Type, l.ChantierID, nullable(l.Commentaire), l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create liste: %w", err)
	}
	return nil
}

// GetByID renvoie une liste par ID, nil si absente.
func (r *ListeRepo) GetByID(id string) (*entity.Liste, error) {
	var l entity.Liste
	var commentaire *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+listeColonnes+` FROM listes WHERE id = $1`, id).Scan(
		&l.ID, &l.Type, &l.ChantierID, &commentaire, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get liste: %w", err)
	}
	if commentaire != nil {
		l.Commentaire = *commentaire
	}
	return &l, nil
}

// List filtre par chantier ("" = toutes), les plus récentes d'abord.
func (r *ListeRepo) List(chantierID string, limit, offset int) ([]*entity.Liste, error) {
	query := `SELECT ` + listeColonnes + ` FROM listes`
	args := []any{}
	if chantierID != "" {
		query += ` WHERE chantier_id = $1`
		args = append(args, chantierID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Liste
	for rows.Next() {
		var l entity.Liste
		var commentaire *string
		if err := rows.Scan(&l.ID, &l.Type, &l.ChantierID, &commentaire, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan liste: %w", err)
		}
		if commentaire != nil {
			l.Commentaire = *commentaire
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
