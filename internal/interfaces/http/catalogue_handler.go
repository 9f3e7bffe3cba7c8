package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/application/usecase"
)

// CatalogueHandler gère les requêtes HTTP du catalogue matériel.
type CatalogueHandler struct {
	uc *usecase.CatalogueUseCase
}

// NewCatalogueHandler construit le handler.
func NewCatalogueHandler(uc *usecase.CatalogueUseCase) *CatalogueHandler {
	return &CatalogueHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un article
// @Tags         catalogue
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "Données de l'article"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogue [post]
func (h *CatalogueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
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
// @Summary      Obtenir un article par ID
// @Tags         catalogue
// @Produce      json
// @Param        id   path  string  true  "ID de l'article"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogue/{id} [get]
func (h *CatalogueHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtenir(c.Params("id"))
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Rechercher dans le catalogue
// @Tags         catalogue
// @Produce      json
// @Param        q       query  string  false  "Recherche (référence ou désignation, accents ignorés)"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ArticleListResponse
// @Router       /api/catalogue [get]
func (h *CatalogueHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Lister(c.Query("q"), page)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un article
// @Tags         catalogue
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de l'article"
// @Param        body  body  dto.UpdateArticleRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogue/{id} [put]
func (h *CatalogueHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Modifier(c.Params("id"), in)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Désactiver un article
// @Tags         catalogue
// @Param        id  path  string  true  "ID de l'article"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogue/{id} [delete]
func (h *CatalogueHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Desactiver(c.Params("id")); err != nil {
		return repondreErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
