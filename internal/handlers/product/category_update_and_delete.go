package product

import (
	"errors"
	"log"
	"net/http"

	"boutique_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

type categoryUpdateInput struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	ParentID    *string `json:"parent_id"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image"`
}

// UpdateCategory met à jour les champs fournis d'une catégorie
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var input categoryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corps de requête invalide"})
		return
	}
	if input.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'id' est obligatoire"})
		return
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID catégorie invalide"})
		return
	}

	category, err := h.categories.FindByID(c.Request.Context(), gocql.UUID(id))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}
	if err != nil {
		log.Printf("❌ Erreur lecture catégorie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.ImageURL != nil {
		category.ImageURL = *input.ImageURL
	}
	if input.ParentID != nil {
		parentID, ok := h.resolveParent(c, input.ParentID)
		if !ok {
			return
		}
		category.ParentID = parentID
	}

	if err := h.categories.Update(c.Request.Context(), category); err != nil {
		log.Printf("❌ Erreur mise à jour catégorie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusOK, category)
}

// DeleteCategory supprime une catégorie sans produit rattaché
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID catégorie invalide"})
		return
	}
	categoryID := gocql.UUID(id)

	// Refuser tant que des produits pointent encore sur cette catégorie
	if count, err := h.products.CountByCategory(c.Request.Context(), categoryID); err == nil && count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Impossible de supprimer : des produits utilisent cette catégorie"})
		return
	}

	if err := h.categories.Delete(c.Request.Context(), categoryID); err != nil {
		log.Printf("❌ Erreur suppression catégorie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée avec succès"})
}
