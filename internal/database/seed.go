package database

import (
	"database/sql"
	"fmt"
	"log"
)

type seedProduct struct {
	name        string
	price       float64
	description string
	imageURL    string
}

var sampleProducts = []seedProduct{
	{"MacBook Pro 16-inch", 89999, "Apple M3 Pro chip with 12-core CPU and 18-core GPU. 18GB unified memory, 512GB SSD storage. Perfect for professionals and creatives.", "laptop.jpg"},
	{"Sony WH-1000XM5", 15999, "Industry-leading noise canceling wireless headphones with 30-hour battery life and premium sound quality.", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&h=400&fit=crop&q=80"},
	{"iPhone 15 Pro", 54999, "Titanium design with A17 Pro chip, Pro camera system, and Action Button. Available in Natural Titanium.", "https://images.unsplash.com/photo-1556656793-08538906a9f8?w=600&h=400&fit=crop&q=80"},
	{"Dell UltraSharp 27\" 4K Monitor", 24999, "27-inch 4K UHD monitor with HDR400, 99% sRGB color coverage, and USB-C connectivity for professionals.", "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=600&h=400&fit=crop&q=80"},
	{"Logitech MX Master 3S", 4299, "Advanced wireless mouse with ultra-fast scrolling, customizable buttons, and precision tracking on any surface.", "mouse.jpg"},
	{"Apple Magic Keyboard", 8999, "Wireless keyboard with scissor mechanism and numeric keypad. Pairs automatically with your Mac.", "keyboard.jpeg"},
	{"AirPods Pro (2nd Gen)", 12999, "Active Noise Cancellation, Adaptive Transparency, and Personalized Spatial Audio with up to 30 hours of listening time.", "https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?w=600&h=400&fit=crop&q=80"},
	{"Gaming Laptop RTX 4080", 124999, "High-performance gaming laptop with RTX 4080, Intel i9 processor, 32GB RAM, and 1TB NVMe SSD for ultimate gaming experience.", "gaminglaptop.jpg"},
	{"Professional Laptop", 67999, "Sleek business laptop with premium build quality, all-day battery life, and enterprise-grade security features.", "laptop5.jpg"},
	{"Wireless Gaming Mouse", 3499, "Precision gaming mouse with customizable RGB lighting, ultra-fast wireless connection, and ergonomic design.", "mouse2.jpeg"},
	{"Premium Gaming Mouse", 5999, "Professional esports mouse with ultra-precise sensor, customizable weights, and tournament-grade performance.", "mouse3.jpeg"},
	{"Mechanical Gaming Keyboard", 12999, "RGB backlit mechanical keyboard with cherry MX switches, programmable keys, and premium aluminum construction.", "keyboard2.webp"},
	{"Wireless Keyboard Pro", 7999, "Slim wireless keyboard with premium key switches, long battery life, and elegant design for professionals.", "keyboard3.jpeg"},
}

// Seed insère le catalogue d'exemple si la table products est vide
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("comptage produits: %w", err)
	}
	if count > 0 {
		log.Println("✅ Catalogue déjà rempli —", count, "produits")
		return nil
	}

	log.Println("🌱 Insertion du catalogue d'exemple...")
	stmt, err := db.Prepare(`INSERT INTO products (name, price, description, imageUrl) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("préparation insertion: %w", err)
	}
	defer stmt.Close()

	for _, p := range sampleProducts {
		if _, err := stmt.Exec(p.name, p.price, p.description, p.imageURL); err != nil {
			return fmt.Errorf("insertion produit %q: %w", p.name, err)
		}
	}

	log.Printf("✅ %d produits d'exemple insérés", len(sampleProducts))
	return nil
}
