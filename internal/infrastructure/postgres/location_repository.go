package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.LocationLayherRepository = (*LocationRepo)(nil)

// LocationRepo positions de location Layher sur PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColonnes = `id, article_id, quantite, quantite_retournee, date_location, date_retour_prevue, date_retour_effective, numero_commande, statut, created_at, updated_at`

// Create persiste une nouvelle position de location.
func (r *LocationRepo) Create(l *entity.LocationLayher) error {
	query := `
		INSERT INTO locations_layher (` + locationColonnes + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.ArticleID, l.Quantite, l.QuantiteRetournee,
		l.DateLocation, l.DateRetourPrevue, l.DateRetourEffective,
		nullable(l.NumeroCommande), l.Statut, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

// GetByID renvoie une location par ID, nil si absente.
func (r *LocationRepo) GetByID(id string) (*entity.LocationLayher, error) {
	return r.get(id, "")
}

// GetForUpdate verrouille la ligne le temps d'un retour.
func (r *LocationRepo) GetForUpdate(id string) (*entity.LocationLayher, error) {
	return r.get(id, " FOR UPDATE")
}

func (r *LocationRepo) get(id, suffix string) (*entity.LocationLayher, error) {
	query := `SELECT ` + locationColonnes + ` FROM locations_layher WHERE id = $1` + suffix
	row := r.q.QueryRow(context.Background(), query, id)
	l, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// Update réécrit la position (cumul retourné, statut, date effective).
func (r *LocationRepo) Update(l *entity.LocationLayher) error {
	query := `
		UPDATE locations_layher
		SET quantite_retournee = $2, date_retour_effective = $3, statut = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.QuantiteRetournee, l.DateRetourEffective, l.Statut, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List filtre par statut ("" = toutes) et article ("" = tous), les plus
// récentes d'abord.
func (r *LocationRepo) List(statut, articleID string, limit, offset int) ([]*entity.LocationLayher, error) {
	query := `SELECT ` + locationColonnes + ` FROM locations_layher WHERE 1=1`
	args := []any{}
	pos := 1
	if statut != "" {
		query += fmt.Sprintf(" AND statut = $%d", pos)
		args = append(args, statut)
		pos++
	}
	if articleID != "" {
		query += fmt.Sprintf(" AND article_id = $%d", pos)
		args = append(args, articleID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date_location DESC, id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.LocationLayher
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanLocation(row pgx.Row) (*entity.LocationLayher, error) {
	var l entity.LocationLayher
	var numeroCommande *string
	err := row.Scan(&l.ID, &l.ArticleID, &l.Quantite, &l.QuantiteRetournee,
		&l.DateLocation, &l.DateRetourPrevue, &l.DateRetourEffective,
		&numeroCommande, &l.Statut, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if numeroCommande != nil {
		l.NumeroCommande = *numeroCommande
	}
	return &l, nil
}
