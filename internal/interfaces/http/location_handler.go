package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/location"
)

// LocationHandler gère les requêtes HTTP des locations Layher.
type LocationHandler struct {
	uc *location.UseCase
}

// NewLocationHandler construit le handler.
func NewLocationHandler(uc *location.UseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Ouvrir une location
// @Description  Met du matériel du parc en location : la garde de
// @Description  disponibilité, le mouvement layher_location et la position
// @Description  partagent la même transaction.
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreerLocationRequest  true  "Données de la location"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreerLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Creer(c.UserContext(), in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Return godoc
// @Summary      Retourner du matériel loué
// @Description  Retour partiel ou complet contre une position en cours. Au
// @Description  retour complet le statut bascule en "retourne" (terminal).
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la location"
// @Param        body  body  dto.RetourLocationRequest  true  "Quantité retournée"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/retour [post]
func (h *LocationHandler) Return(c *fiber.Ctx) error {
	var in dto.RetourLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Retourner(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les locations
// @Tags         locations
// @Produce      json
// @Param        statut     query  string  false  "en_cours ou retourne"
// @Param        articleId  query  string  false  "Filtrer par article"
// @Param        limit      query  int     false  "Limite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Lister(c.UserContext(), c.Query("statut"), c.Query("articleId"), page)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}
