package product

import (
	"errors"
	"log"
	"net/http"
	"time"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/services"
	"boutique_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// ProductHandler expose les endpoints produits. L'index Elastic et le store
// d'images sont optionnels (nil dans les tests).
type ProductHandler struct {
	products   store.ProductStore
	categories store.CategoryStore
	search     *services.ProductIndex
	images     *services.ImageStore
}

func NewProductHandler(products store.ProductStore, categories store.CategoryStore, search *services.ProductIndex, images *services.ImageStore) *ProductHandler {
	return &ProductHandler{products: products, categories: categories, search: search, images: images}
}

// GetProducts liste tous les produits
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.products.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("❌ Erreur lecture produits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucun produit trouvé"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct retourne un produit par id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	p, err := h.products.FindByID(c.Request.Context(), gocql.UUID(id))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		log.Printf("❌ Erreur lecture produit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProductsByCategory liste les produits d'une catégorie
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID catégorie invalide"})
		return
	}

	products, err := h.products.FindByCategory(c.Request.Context(), gocql.UUID(id))
	if err != nil {
		log.Printf("❌ Erreur lecture produits par catégorie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucun produit dans cette catégorie"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type productInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image"`
}

// CreateProduct crée un produit rattaché à une catégorie existante
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corps de requête invalide"})
		return
	}
	if input.Name == "" || input.Description == "" || input.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les champs 'name', 'description' et 'category_id' sont obligatoires"})
		return
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID catégorie invalide"})
		return
	}

	// La catégorie doit exister
	if _, err := h.categories.FindByID(c.Request.Context(), gocql.UUID(categoryID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie introuvable"})
		} else {
			log.Printf("❌ Erreur vérification catégorie: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		}
		return
	}

	now := time.Now()
	p := &models.Product{
		ID:          gocql.TimeUUID(),
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  gocql.UUID(categoryID),
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	if err := h.products.Create(c.Request.Context(), p); err != nil {
		log.Printf("❌ Erreur création produit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	// Indexation Elasticsearch en arrière-plan
	if h.search != nil {
		go h.search.IndexProduct(*p)
	}

	c.JSON(http.StatusOK, p)
}
