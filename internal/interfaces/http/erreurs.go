package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ateliergranit/parc-echafaudage/internal/application/dto"
	"github.com/ateliergranit/parc-echafaudage/internal/domain"
)

// repondreErreur traduit les erreurs du domaine en réponses HTTP. Les erreurs
// de validation agrégées (import, clôture) embarquent le détail ligne à ligne.
func repondreErreur(c *fiber.Ctx, err error) error {
	var importErr *domain.ImportValidationError
	if errors.As(err, &importErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: importErr.Error(), Lignes: importErr.Lignes,
		})
	}
	var clotureErr *domain.ClosureValidationError
	if errors.As(err, &clotureErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: clotureErr.Error(), Lignes: clotureErr.Lignes,
		})
	}
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "STOCK_INSUFFISANT", Message: stockErr.Error(),
			Lignes: []domain.LigneErreur{{
				Reference:  stockErr.Reference,
				ArticleID:  stockErr.ArticleID,
				Quantite:   stockErr.Demandee,
				Disponible: stockErr.Disponible,
				Manquante:  stockErr.Manquante(),
			}},
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrChantierFerme):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHANTIER_FERME", Message: "le chantier est fermé"})
	case errors.Is(err, domain.ErrLocationRetournee):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOCATION_RETOURNEE", Message: "la location est déjà intégralement retournée"})
	case errors.Is(err, domain.ErrArticleInactif):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ARTICLE_INACTIF", Message: "article désactivé"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
