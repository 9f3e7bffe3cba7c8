package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
	"github.com/ateliergranit/parc-echafaudage/internal/application/usecase"
)

// ChantierHandler gère les requêtes HTTP des chantiers : cycle de vie,
// inventaire et clôture.
type ChantierHandler struct {
	uc      *usecase.ChantierUseCase
	cloture *parc.ClotureUseCase
}

// NewChantierHandler construit le handler.
func NewChantierHandler(uc *usecase.ChantierUseCase, cloture *parc.ClotureUseCase) *ChantierHandler {
	return &ChantierHandler{uc: uc, cloture: cloture}
}

// Create godoc
// @Summary      Ouvrir un chantier
// @Tags         chantiers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChantierRequest  true  "Données du chantier"
// @Success      201   {object}  dto.ChantierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chantiers [post]
func (h *ChantierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChantierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Creer(in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un chantier par ID
// @Tags         chantiers
// @Produce      json
// @Param        id   path  string  true  "ID du chantier"
// @Success      200  {object}  dto.ChantierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chantiers/{id} [get]
func (h *ChantierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtenir(c.Params("id"))
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les chantiers
// @Tags         chantiers
// @Produce      json
// @Param        statut  query  string  false  "ouvert ou ferme"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.ChantierResponse
// @Router       /api/chantiers [get]
func (h *ChantierHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Lister(c.Query("statut"), page)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventaire d'un chantier
// @Description  Matériel encore sur place, avec le poids par ligne et le poids
// @Description  total (chargement camion).
// @Tags         chantiers
// @Produce      json
// @Param        id   path  string  true  "ID du chantier"
// @Success      200  {object}  dto.InventaireResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chantiers/{id}/inventaire [get]
func (h *ChantierHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventaire(c.Params("id"))
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Clôturer un chantier
// @Description  Rapatrie tout le matériel encore présent : retours pour les
// @Description  bonnes unités, HS pour les unités déclarées cassées, puis passe
// @Description  le chantier en "ferme". Tout-ou-rien : la moindre ligne
// @Description  invalide annule l'opération entière.
// @Tags         chantiers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du chantier"
// @Param        body  body  dto.ClotureRequest  true  "Répartition bon/cassé par article"
// @Success      200   {object}  dto.ClotureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chantiers/{id}/cloture [post]
func (h *ChantierHandler) Close(c *fiber.Ctx) error {
	var in dto.ClotureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.cloture.Cloturer(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}
