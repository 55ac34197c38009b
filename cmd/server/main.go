package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/config"
	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/handlers"
	"vitrine_back_end/internal/routes"
	"vitrine_back_end/internal/store"
)

func main() {
	config.Load()

	db, err := database.Open(config.DBPath())
	if err != nil {
		log.Fatal("❌ Impossible d'ouvrir la base de données:", err)
	}
	defer db.Close()

	if err := database.Seed(db); err != nil {
		log.Fatal("❌ Échec de l'initialisation du catalogue:", err)
	}

	// Redis / Elasticsearch / MinIO — optionnels, le serveur démarre sans
	database.ConnectSidecars(context.Background())

	products := store.NewProductStore(db)
	cart := store.NewCartStore(db)
	orders := store.NewOrderStore(db)

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Handlers{
		Products: handlers.NewProductHandler(products),
		Cart:     handlers.NewCartHandler(cart),
		Checkout: handlers.NewCheckoutHandler(orders),
		Orders:   handlers.NewOrderHandler(orders),
		Upload:   handlers.NewUploadHandler(config.UploadDir()),
	}, config.UploadDir())

	port := config.Port()
	log.Println("🚀 Serveur Vitrine lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur serveur:", err)
	}
}
