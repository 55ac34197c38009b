package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Get retourne la variable d'environnement, ou le fallback si elle est absente
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return Get("PORT", "3001")
}

func DBPath() string {
	return Get("DB_PATH", "ecommerce.db")
}

func UploadDir() string {
	return Get("UPLOAD_DIR", "uploads")
}
