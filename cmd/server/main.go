package main

import (
	"context"
	"log"
	"time"

	"boutique_back_end/internal/config"
	"boutique_back_end/internal/customer"
	"boutique_back_end/internal/database"
	"boutique_back_end/internal/routes"
	"boutique_back_end/internal/services"
	"boutique_back_end/internal/session"
	"boutique_back_end/internal/store"
	"boutique_back_end/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	cfg := config.FromEnv()

	conns, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ ", err)
	}
	defer conns.Close()

	sessions := session.NewRedisStore(conns.Redis)
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	customers := store.NewScyllaCustomerStore(conns.Scylla)
	categories := store.NewScyllaCategoryStore(conns.Scylla)
	products := store.NewScyllaProductStore(conns.Scylla)

	manager := customer.NewManager(customers, sessions, hasher)

	var search *services.ProductIndex
	if conns.Elastic != nil {
		search = services.NewProductIndex(conns.Elastic)
	}

	var images *services.ImageStore
	if conns.MinIO != nil {
		images = services.NewImageStore(conns.MinIO, cfg.MinioBucket, cfg.MinioEndpoint)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := images.EnsureBucket(ctx); err != nil {
			log.Println("⚠️ Bucket MinIO indisponible :", err)
		}
		cancel()
	}

	r := gin.Default()

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"X-Requested-With", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	routes.RegisterRoutes(r, routes.Deps{
		Sessions:     sessions,
		Manager:      manager,
		Categories:   categories,
		Products:     products,
		Search:       search,
		Images:       images,
		Redis:        conns.Redis,
		SecureCookie: !cfg.IsDevelopment(),
	})

	log.Println("🚀 Serveur boutique lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Erreur serveur HTTP:", err)
	}
}
