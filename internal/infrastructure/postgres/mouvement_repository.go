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

var _ repository.MouvementRepository = (*MouvementRepo)(nil)

// MouvementRepo journal des mouvements sur PostgreSQL. Append-only : aucun
// UPDATE ni DELETE n'existe sur la table mouvements.
type MouvementRepo struct {
	q Querier
}

// NewMouvementRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewMouvementRepository(q Querier) *MouvementRepo {
	return &MouvementRepo{q: q}
}

const mouvementColonnes = `id, article_id, type, quantite, source, destination, chantier_id, liste_id, cle_idempotence, commentaire, created_at`

// Create ajoute une écriture au journal. Une clé d'idempotence déjà vue
// renvoie domain.ErrDuplicate (contrainte unique), sans second append.
func (r *MouvementRepo) Create(m *entity.Mouvement) error {
	query := `
		INSERT INTO mouvements (` + mouvementColonnes + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ArticleID, m.Type, m.Quantite,
		nullable(m.Source), nullable(m.Destination), nullable(m.ChantierID),
		nullable(m.ListeID), nullable(m.CleIdempotence), nullable(m.Commentaire),
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create mouvement: %w", err)
	}
	return nil
}

// GetByID renvoie une écriture par ID, nil si absente.
func (r *MouvementRepo) GetByID(id string) (*entity.Mouvement, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+mouvementColonnes+` FROM mouvements WHERE id = $1`, id)
	m, err := scanMouvement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mouvement: %w", err)
	}
	return m, nil
}

// List consulte le journal, du plus récent au plus ancien.
func (r *MouvementRepo) List(filtre repository.FiltreMouvements, limit, offset int) ([]*entity.Mouvement, error) {
	query := `SELECT ` + mouvementColonnes + ` FROM mouvements WHERE 1=1`
	args := []any{}
	pos := 1
	add := func(clause, val string) {
		if val != "" {
			query += fmt.Sprintf(" AND %s = $%d", clause, pos)
			args = append(args, val)
			pos++
		}
	}
	add("article_id", filtre.ArticleID)
	add("chantier_id", filtre.ChantierID)
	add("liste_id", filtre.ListeID)
	add("type", filtre.Type)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Mouvement
	for rows.Next() {
		m, err := scanMouvement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mouvement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ForEach parcourt tout le journal par ordre de création (rejeu complet).
func (r *MouvementRepo) ForEach(fn func(*entity.Mouvement) error) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+mouvementColonnes+` FROM mouvements ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("scan journal: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMouvement(rows)
		if err != nil {
			return fmt.Errorf("scan mouvement: %w", err)
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return rows.Err()
}

func scanMouvement(row pgx.Row) (*entity.Mouvement, error) {
	var m entity.Mouvement
	var source, destination, chantierID, listeID, cle, commentaire *string
	err := row.Scan(&m.ID, &m.ArticleID, &m.Type, &m.Quantite,
		&source, &destination, &chantierID, &listeID, &cle, &commentaire, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	deref := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	deref(&m.Source, source)
	deref(&m.Destination, destination)
	deref(&m.ChantierID, chantierID)
	deref(&m.ListeID, listeID)
	deref(&m.CleIdempotence, cle)
	deref(&m.Commentaire, commentaire)
	return &m, nil
}
