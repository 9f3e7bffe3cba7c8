package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
	"github.com/ateliergranit/parc-echafaudage/internal/domain/repository"
)

// MouvementHandler gère les requêtes HTTP du journal de mouvements.
type MouvementHandler struct {
	uc *parc.MouvementUseCase
}

// NewMouvementHandler construit le handler.
func NewMouvementHandler(uc *parc.MouvementUseCase) *MouvementHandler {
	return &MouvementHandler{uc: uc}
}

// Register godoc
// @Summary      Enregistrer un mouvement
// @Description  Ajoute une écriture au journal. Les types qui débitent un
// @Description  compartiment (sortie, hs, rebut, layher_location, layher_retour)
// @Description  sont refusés en 409 si le compartiment ne couvre pas la quantité.
// @Tags         mouvements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnregistrerMouvementRequest  true  "Mouvement"
// @Success      201   {object}  dto.MouvementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mouvements [post]
func (h *MouvementHandler) Register(c *fiber.Ctx) error {
	var in dto.EnregistrerMouvementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Enregistrer(c.UserContext(), in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Consulter le journal
// @Tags         mouvements
// @Produce      json
// @Param        articleId   query  string  false  "Filtrer par article"
// @Param        chantierId  query  string  false  "Filtrer par chantier"
// @Param        listeId     query  string  false  "Filtrer par liste"
// @Param        type        query  string  false  "Filtrer par type de mouvement"
// @Param        limit       query  int     false  "Limite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MouvementListResponse
// @Router       /api/mouvements [get]
func (h *MouvementHandler) List(c *fiber.Ctx) error {
	filtre := repository.FiltreMouvements{
		ArticleID:  c.Query("articleId"),
		ChantierID: c.Query("chantierId"),
		ListeID:    c.Query("listeId"),
		Type:       c.Query("type"),
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Lister(c.UserContext(), filtre, page)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// CheckAvailability godoc
// @Summary      Vérifier la disponibilité d'un article
// @Description  Lecture indicative de la projection : la vérification qui fait
// @Description  foi est rejouée sous verrou à l'enregistrement du mouvement.
// @Tags         mouvements
// @Produce      json
// @Param        articleId  path   string  true  "ID de l'article"
// @Param        quantite   query  int     true  "Quantité demandée"
// @Success      200  {object}  dto.DisponibiliteDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{articleId}/disponibilite [get]
func (h *MouvementHandler) CheckAvailability(c *fiber.Ctx) error {
	out, err := h.uc.VerifierDisponibilite(c.UserContext(), c.Params("articleId"), c.QueryInt("quantite", 0))
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}
