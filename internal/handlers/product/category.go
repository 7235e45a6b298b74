package product

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"boutique_back_end/internal/catalog"
	"boutique_back_end/internal/models"
	"boutique_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = time.Hour
)

// CategoryHandler expose les endpoints catégories. Le cache Redis est
// optionnel (nil dans les tests).
type CategoryHandler struct {
	categories store.CategoryStore
	products   store.ProductStore
	redis      *redis.Client
}

func NewCategoryHandler(categories store.CategoryStore, products store.ProductStore, rdb *redis.Client) *CategoryHandler {
	return &CategoryHandler{categories: categories, products: products, redis: rdb}
}

// GetAllCategories retourne la forêt imbriquée des catégories
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	ctx := c.Request.Context()

	// Cache Redis
	if h.redis != nil {
		if val, err := h.redis.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var cached []*models.CategoryNode
			if json.Unmarshal([]byte(val), &cached) == nil && len(cached) > 0 {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	categories, err := h.categories.FindAll(ctx)
	if err != nil {
		log.Printf("❌ Erreur lecture catégories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	forest := catalog.Build(categories, nil)
	if len(forest) == 0 {
		// comportement historique du storefront : collection vide = 404
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune catégorie trouvée"})
		return
	}

	if h.redis != nil {
		if data, err := json.Marshal(forest); err == nil {
			h.redis.Set(ctx, categoriesCacheKey, data, categoriesCacheTTL)
		}
	}

	c.JSON(http.StatusOK, forest)
}

// GetCategory retourne une catégorie par id (ligne plate, sans enfants)
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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

	c.JSON(http.StatusOK, category)
}

type categoryInput struct {
	Name        string  `json:"name"`
	ParentID    *string `json:"parent_id"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image"`
}

// CreateCategory crée une catégorie, racine si parent_id est null
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corps de requête invalide"})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}

	parentID, ok := h.resolveParent(c, input.ParentID)
	if !ok {
		return
	}

	now := time.Now()
	category := &models.Category{
		ID:          gocql.TimeUUID(),
		Name:        input.Name,
		ParentID:    parentID,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   &now,
	}
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		log.Printf("❌ Erreur création catégorie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusOK, category)
}

// resolveParent parse et vérifie le parent déclaré. Répond lui-même en cas
// d'erreur et retourne faux.
func (h *CategoryHandler) resolveParent(c *gin.Context, raw *string) (*gocql.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}

	parsed, err := uuid.Parse(*raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID parent invalide"})
		return nil, false
	}

	parentID := gocql.UUID(parsed)
	if _, err := h.categories.FindByID(c.Request.Context(), parentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie parente introuvable"})
		} else {
			log.Printf("❌ Erreur vérification parent: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		}
		return nil, false
	}
	return &parentID, true
}

func (h *CategoryHandler) invalidateCache(c *gin.Context) {
	if h.redis != nil {
		h.redis.Del(c.Request.Context(), categoriesCacheKey)
	}
}
