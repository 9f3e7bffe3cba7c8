package parc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/entity"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

// MouvementUseCase enregistre les écritures du journal de façon
// transactionnelle (verrou de ligne sur la projection globale) et sert la
// garde de disponibilité et la consultation du journal.
type MouvementUseCase struct {
	tx       TxRunner
	articles repository.ArticleRepository
	stock    repository.StockRepository
	journal  repository.MouvementRepository
}

// NewMouvementUseCase construit le cas d'usage.
func NewMouvementUseCase(
	tx TxRunner,
	articles repository.ArticleRepository,
	stock repository.StockRepository,
	journal repository.MouvementRepository,
) *MouvementUseCase {
	return &MouvementUseCase{tx: tx, articles: articles, stock: stock, journal: journal}
}

// Enregistrer valide puis ajoute une écriture au journal. Pour les types qui
// débitent un compartiment, la garde de disponibilité et l'append se font dans
// la même transaction ; un refus ne laisse aucune trace. La clé d'idempotence,
// si fournie, fait échouer les rejeux en ErrDuplicate sans second append.
func (uc *MouvementUseCase) Enregistrer(ctx context.Context, in dto.EnregistrerMouvementRequest) (*dto.MouvementResponse, error) {
	if !entity.TypeMouvementValide(in.Type) || in.Quantite <= 0 {
		return nil, domain.ErrInvalidInput
	}

	article, err := uc.articles.GetByID(in.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	// Un article désactivé ne bouge plus vers l'extérieur ; les retours et les
	// constats de casse restent enregistrables.
	if !article.Actif {
		switch in.Type {
		case entity.MouvementEntree, entity.MouvementSortie, entity.MouvementLayherLocation:
			return nil, domain.ErrArticleInactif
		}
	}

	now := time.Now()
	m := &entity.Mouvement{
		ID:             uuid.New().String(),
		ArticleID:      article.ID,
		Type:           in.Type,
		Quantite:       in.Quantite,
		Source:         in.Source,
		Destination:    in.Destination,
		ChantierID:     in.ChantierID,
		ListeID:        in.ListeID,
		CleIdempotence: in.CleIdempotence,
		Commentaire:    in.Commentaire,
		CreatedAt:      now,
	}
	defautsLieux(m)

	var projection *entity.StockGlobal
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		s, err := appliquer(r, article, m, now)
		if err != nil {
			return err
		}
		projection = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toMouvementResponse(m)
	resp.Stock = toStockDTO(projection, article)
	return resp, nil
}

// VerifierDisponibilite lit la projection courante et répond disponible /
// manquant. Lecture hors transaction : la vérification qui fait foi est
// rejouée sous verrou au moment de l'écriture.
func (uc *MouvementUseCase) VerifierDisponibilite(ctx context.Context, articleID string, quantite int) (*dto.DisponibiliteDTO, error) {
	if quantite <= 0 {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.articles.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	s, err := uc.stock.Get(articleID)
	if err != nil {
		return nil, err
	}
	manquante := 0
	if quantite > s.QuantiteDisponible {
		manquante = quantite - s.QuantiteDisponible
	}
	return &dto.DisponibiliteDTO{
		ArticleID:          articleID,
		Disponible:         s.QuantiteDisponible >= quantite,
		QuantiteDisponible: s.QuantiteDisponible,
		QuantiteManquante:  manquante,
	}, nil
}

// Lister consulte le journal, du plus récent au plus ancien.
func (uc *MouvementUseCase) Lister(ctx context.Context, filtre repository.FiltreMouvements, page dto.PageRequest) (*dto.MouvementListResponse, error) {
	page.DefaultPage()
	mouvements, err := uc.journal.List(filtre, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MouvementListResponse{
		Mouvements: make([]dto.MouvementResponse, 0, len(mouvements)),
		Page:       dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range mouvements {
		out.Mouvements = append(out.Mouvements, *toMouvementResponse(m))
	}
	return out, nil
}

func toMouvementResponse(m *entity.Mouvement) *dto.MouvementResponse {
	return &dto.MouvementResponse{
		ID:          m.ID,
		ArticleID:   m.ArticleID,
		Type:        m.Type,
		Quantite:    m.Quantite,
		Source:      m.Source,
		Destination: m.Destination,
		ChantierID:  m.ChantierID,
		ListeID:     m.ListeID,
		Commentaire: m.Commentaire,
		CreatedAt:   m.CreatedAt,
	}
}

func toStockDTO(s *entity.StockGlobal, article *entity.Article) dto.StockGlobalDTO {
	out := dto.StockGlobalDTO{
		ArticleID:           s.ArticleID,
		QuantiteTotale:      s.QuantiteTotale,
		QuantiteDisponible:  s.QuantiteDisponible,
		QuantiteSurChantier: s.QuantiteSurChantier,
		QuantiteHS:          s.QuantiteHS,
		QuantiteLayher:      s.QuantiteLayher,
	}
	if article != nil {
		out.Reference = article.Reference
		out.Designation = article.Designation
	}
	return out
}
