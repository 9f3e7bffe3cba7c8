package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/parc"
)

// ListeHandler gère l'import des bons de livraison et de retour (lignes déjà
// résolues en amont par le pipeline d'extraction).
type ListeHandler struct {
	uc *parc.ImportUseCase
}

// NewListeHandler construit le handler.
func NewListeHandler(uc *parc.ImportUseCase) *ListeHandler {
	return &ListeHandler{uc: uc}
}

// ImportDelivery godoc
// @Summary      Importer un bon de livraison
// @Description  Tout-ou-rien : les lignes invalides et les manques de stock
// @Description  sont tous énumérés dans la réponse 400/409, et aucune ligne
// @Description  n'est appliquée tant qu'une seule est refusée.
// @Tags         listes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportLivraisonRequest  true  "Bon de livraison"
// @Success      201   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/listes/livraison [post]
func (h *ListeHandler) ImportDelivery(c *fiber.Ctx) error {
	var in dto.ImportLivraisonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.ImporterLivraison(c.UserContext(), in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ImportReturn godoc
// @Summary      Importer un bon de retour
// @Description  Par ligne : un mouvement "retour" pour les unités en bon état
// @Description  et un "hs" pour celles revenues cassées. Tout-ou-rien.
// @Tags         listes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRetourRequest  true  "Bon de retour"
// @Success      201   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/listes/retour [post]
func (h *ListeHandler) ImportReturn(c *fiber.Ctx) error {
	var in dto.ImportRetourRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.ImporterRetour(c.UserContext(), in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
