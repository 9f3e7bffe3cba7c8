// Package memoire fournit une implémentation en mémoire des ports de
// persistance et du TxRunner, avec la même sémantique que l'implémentation
// PostgreSQL : unicité des références et des clés d'idempotence, lignes de
// stock à zéro quand elles n'existent pas, rollback sur erreur. Utilisée par
// les tests des cas d'usage.
package memoire

import (
	"sync"

	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
)

type cleChantier struct {
	chantierID string
	articleID  string
}

// Store état partagé par tous les repositories mémoire. Les maps contiennent
// des valeurs (pas des pointeurs) : un instantané est une copie des maps.
type Store struct {
	mu sync.Mutex

	articles       map[string]entity.Article
	parReference   map[string]string // reference -> articleID
	mouvements     []entity.Mouvement
	cles           map[string]bool // clés d'idempotence déjà vues
	stocks         map[string]entity.StockGlobal
	stocksChantier map[cleChantier]entity.StockChantier
	locations      map[string]entity.LocationLayher
	chantiers      map[string]entity.Chantier
	listes         map[string]entity.Liste
}

// NewStore construit un état vide.
func NewStore() *Store {
	return &Store{
		articles:       make(map[string]entity.Article),
		parReference:   make(map[string]string),
		cles:           make(map[string]bool),
		stocks:         make(map[string]entity.StockGlobal),
		stocksChantier: make(map[cleChantier]entity.StockChantier),
		locations:      make(map[string]entity.LocationLayher),
		chantiers:      make(map[string]entity.Chantier),
		listes:         make(map[string]entity.Liste),
	}
}

type instantane struct {
	articles       map[string]entity.Article
	parReference   map[string]string
	mouvements     []entity.Mouvement
	cles           map[string]bool
	stocks         map[string]entity.StockGlobal
	stocksChantier map[cleChantier]entity.StockChantier
	locations      map[string]entity.LocationLayher
	chantiers      map[string]entity.Chantier
	listes         map[string]entity.Liste
}

func (s *Store) prendre() instantane {
	return instantane{
		articles:       copier(s.articles),
		parReference:   copier(s.parReference),
		mouvements:     append([]entity.Mouvement(nil), s.mouvements...),
		cles:           copier(s.cles),
		stocks:         copier(s.stocks),
		stocksChantier: copier(s.stocksChantier),
		locations:      copier(s.locations),
		chantiers:      copier(s.chantiers),
		listes:         copier(s.listes),
	}
}

func (s *Store) restaurer(i instantane) {
	s.articles = i.articles
	s.parReference = i.parReference
	s.mouvements = i.mouvements
	s.cles = i.cles
	s.stocks = i.stocks
	s.stocksChantier = i.stocksChantier
	s.locations = i.locations
	s.chantiers = i.chantiers
	s.listes = i.listes
}

func copier[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
