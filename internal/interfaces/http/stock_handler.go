package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
)

// StockHandler gère les requêtes HTTP des vues de stock dérivées.
type StockHandler struct {
	uc *parc.StockUseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(uc *parc.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Projection globale du parc
// @Tags         stock
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.StockGlobalDTO
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Lister(c.UserContext(), page)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// GetByArticle godoc
// @Summary      Projection globale d'un article
// @Tags         stock
// @Produce      json
// @Param        articleId  path  string  true  "ID de l'article"
// @Success      200  {object}  dto.StockGlobalDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{articleId} [get]
func (h *StockHandler) GetByArticle(c *fiber.Ctx) error {
	out, err := h.uc.Obtenir(c.UserContext(), c.Params("articleId"))
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// ListHS godoc
// @Summary      Matériel hors service
// @Description  Articles dont le compartiment HS est non nul, en attente de
// @Description  réparation ou de rebut.
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockGlobalDTO
// @Router       /api/stock/hs [get]
func (h *StockHandler) ListHS(c *fiber.Ctx) error {
	out, err := h.uc.ListerHS(c.UserContext())
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// Rebuild godoc
// @Summary      Reconstruire les projections depuis le journal
// @Description  Vide les projections matérialisées et rejoue l'intégralité du
// @Description  journal dans une transaction. Chemin de réconciliation en cas
// @Description  de dérive suspectée.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.ReconstructionResponse
// @Router       /api/stock/reconstruction [post]
func (h *StockHandler) Rebuild(c *fiber.Ctx) error {
	out, err := h.uc.Reconstruire(c.UserContext())
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}
