package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo projection globale matérialisée sur PostgreSQL. Une ligne absente
// équivaut à un stock à zéro : Get renvoie une ligne vierge, jamais nil.
type StockRepo struct {
	q Querier
}

// NewStockRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColonnes = `article_id, quantite_totale, quantite_disponible, quantite_sur_chantier, quantite_hs, quantite_layher, updated_at`

// Get renvoie la position globale d'un article, zéro partout si jamais bougé.
func (r *StockRepo) Get(articleID string) (*entity.StockGlobal, error) {
	return r.get(articleID, "")
}

// GetForUpdate verrouille la ligne jusqu'à la fin de la transaction. Sur une
// ligne encore absente il n'y a rien à verrouiller : le premier Upsert posera
// la ligne et le conflit éventuel se règle à l'INSERT.
func (r *StockRepo) GetForUpdate(articleID string) (*entity.StockGlobal, error) {
	return r.get(articleID, " FOR UPDATE")
}

func (r *StockRepo) get(articleID, suffix string) (*entity.StockGlobal, error) {
	query := `SELECT ` + stockColonnes + ` FROM stock_global WHERE article_id = $1` + suffix
	var s entity.StockGlobal
	err := r.q.QueryRow(context.Background(), query, articleID).Scan(
		&s.ArticleID, &s.QuantiteTotale, &s.QuantiteDisponible,
		&s.QuantiteSurChantier, &s.QuantiteHS, &s.QuantiteLayher, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockGlobal{ArticleID: articleID}, nil
		}
		return nil, fmt.Errorf("get stock global: %w", err)
	}
	return &s, nil
}

// Upsert écrit la position complète de l'article.
func (r *StockRepo) Upsert(s *entity.StockGlobal) error {
	query := `
		INSERT INTO stock_global (` + stockColonnes + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (article_id) DO UPDATE SET
			quantite_totale = EXCLUDED.quantite_totale,
			quantite_disponible = EXCLUDED.quantite_disponible,
			quantite_sur_chantier = EXCLUDED.quantite_sur_chantier,
			quantite_hs = EXCLUDED.quantite_hs,
			quantite_layher = EXCLUDED.quantite_layher,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ArticleID, s.QuantiteTotale, s.QuantiteDisponible,
		s.QuantiteSurChantier, s.QuantiteHS, s.QuantiteLayher, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock global: %w", err)
	}
	return nil
}

// List renvoie la projection globale classée par article.
func (r *StockRepo) List(limit, offset int) ([]*entity.StockGlobal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+stockColonnes+` FROM stock_global ORDER BY article_id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock global: %w", err)
	}
	return scanStockGlobal(rows)
}

// ListHS renvoie les articles avec du matériel hors service.
func (r *StockRepo) ListHS() ([]*entity.StockGlobal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+stockColonnes+` FROM stock_global WHERE quantite_hs > 0 ORDER BY article_id`)
	if err != nil {
		return nil, fmt.Errorf("list stock HS: %w", err)
	}
	return scanStockGlobal(rows)
}

// DeleteAll vide la projection avant un rejeu complet du journal.
func (r *StockRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stock_global`); err != nil {
		return fmt.Errorf("delete stock global: %w", err)
	}
	return nil
}

func scanStockGlobal(rows pgx.Rows) ([]*entity.StockGlobal, error) {
	defer rows.Close()
	var list []*entity.StockGlobal
	for rows.Next() {
		var s entity.StockGlobal
		if err := rows.Scan(&s.ArticleID, &s.QuantiteTotale, &s.QuantiteDisponible,
			&s.QuantiteSurChantier, &s.QuantiteHS, &s.QuantiteLayher, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock global: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

var _ repository.StockChantierRepository = (*StockChantierRepo)(nil)

// StockChantierRepo projection par (chantier, article) sur PostgreSQL.
type StockChantierRepo struct {
	q Querier
}

// NewStockChantierRepository construit l'adaptateur.
func NewStockChantierRepository(q Querier) *StockChantierRepo {
	return &StockChantierRepo{q: q}
}

const stockChantierColonnes = `chantier_id, article_id, quantite_livree, quantite_recue, updated_at`

// Get renvoie la position d'un article sur un chantier, zéro si jamais livré.
func (r *StockChantierRepo) Get(chantierID, articleID string) (*entity.StockChantier, error) {
	return r.get(chantierID, articleID, "")
}

// GetForUpdate verrouille la ligne jusqu'à la fin de la transaction.
func (r *StockChantierRepo) GetForUpdate(chantierID, articleID string) (*entity.StockChantier, error) {
	return r.get(chantierID, articleID, " FOR UPDATE")
}

func (r *StockChantierRepo) get(chantierID, articleID, suffix string) (*entity.StockChantier, error) {
	query := `SELECT ` + stockChantierColonnes + ` FROM stock_chantier WHERE chantier_id = $1 AND article_id = $2` + suffix
	var s entity.StockChantier
	err := r.q.QueryRow(context.Background(), query, chantierID, articleID).Scan(
		&s.ChantierID, &s.ArticleID, &s.QuantiteLivree, &s.QuantiteRecue, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockChantier{ChantierID: chantierID, ArticleID: articleID}, nil
		}
		return nil, fmt.Errorf("get stock chantier: %w", err)
	}
	return &s, nil
}

// Upsert écrit les cumuls livré/reçu du couple (chantier, article).
func (r *StockChantierRepo) Upsert(s *entity.StockChantier) error {
	query := `
		INSERT INTO stock_chantier (` + stockChantierColonnes + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (chantier_id, article_id) DO UPDATE SET
			quantite_livree = EXCLUDED.quantite_livree,
			quantite_recue = EXCLUDED.quantite_recue,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ChantierID, s.ArticleID, s.QuantiteLivree, s.QuantiteRecue, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock chantier: %w", err)
	}
	return nil
}

// ListByChantier renvoie toutes les lignes d'un chantier, classées par article.
func (r *StockChantierRepo) ListByChantier(chantierID string) ([]*entity.StockChantier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+stockChantierColonnes+` FROM stock_chantier WHERE chantier_id = $1 ORDER BY article_id`,
		chantierID)
	if err != nil {
		return nil, fmt.Errorf("list stock chantier: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockChantier
	for rows.Next() {
		var s entity.StockChantier
		if err := rows.Scan(&s.ChantierID, &s.ArticleID, &s.QuantiteLivree, &s.QuantiteRecue, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock chantier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteAll vide la projection avant un rejeu complet du journal.
func (r *StockChantierRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stock_chantier`); err != nil {
		return fmt.Errorf("delete stock chantier: %w", err)
	}
	return nil
}
