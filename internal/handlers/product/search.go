package product

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchProducts recherche plein texte via Elasticsearch
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le paramètre 'q' est obligatoire"})
		return
	}

	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recherche indisponible"})
		return
	}

	products, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("❌ Erreur recherche Elastic: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la recherche"})
		return
	}

	c.JSON(http.StatusOK, products)
}
