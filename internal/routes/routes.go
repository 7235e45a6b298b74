package routes

import (
	"net/http"

	"boutique_back_end/internal/customer"
	customerhandlers "boutique_back_end/internal/handlers/customer"
	producthandlers "boutique_back_end/internal/handlers/product"
	"boutique_back_end/internal/middleware"
	"boutique_back_end/internal/services"
	"boutique_back_end/internal/session"
	"boutique_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps rassemble les dépendances injectées dans les handlers
type Deps struct {
	Sessions     session.Store
	Manager      *customer.Manager
	Categories   store.CategoryStore
	Products     store.ProductStore
	Search       *services.ProductIndex
	Images       *services.ImageStore
	Redis        *redis.Client
	SecureCookie bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	authenticate := middleware.Authenticate(d.Sessions)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "200 OK")
	})

	// Customers
	customers := r.Group("/api/customers")
	ch := customerhandlers.NewHandler(d.Manager, d.SecureCookie)
	customers.POST("/sign-up", middleware.RegisterRateLimit(d.Redis), ch.SignUp)
	customers.POST("/sign-in", middleware.LoginRateLimit(d.Redis), ch.SignIn)
	customers.GET("/sign-out", authenticate, ch.SignOut)
	customers.GET("/authenticate", authenticate, ch.Authenticate)

	// Categories
	categories := r.Group("/api/categories")
	cat := producthandlers.NewCategoryHandler(d.Categories, d.Products, d.Redis)
	categories.GET("", cat.GetAllCategories)
	categories.GET("/:id", cat.GetCategory)
	categories.POST("", cat.CreateCategory)
	categories.PUT("", cat.UpdateCategory)
	categories.DELETE("/:id", cat.DeleteCategory)

	// Products
	products := r.Group("/api/products")
	ph := producthandlers.NewProductHandler(d.Products, d.Categories, d.Search, d.Images)
	products.GET("", ph.GetProducts)
	products.GET("/search", ph.SearchProducts)
	products.GET("/category/:category_id", ph.GetProductsByCategory)
	products.GET("/:id", ph.GetProduct)
	products.POST("", ph.CreateProduct)
	products.PUT("", ph.UpdateProduct)
	products.POST("/:id/image", ph.UploadProductImage)
}
