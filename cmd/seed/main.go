package main

import (
	"fmt"
	"log"

	"github.com/Paida-All/paidaall-store-backend/catalog"
	"github.com/Paida-All/paidaall-store-backend/config"
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func price(v float64) *float64 { return &v }

func order(v int) *int { return &v }

// main seeds the products table with a small demo catalog.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PAIDA ALL STORE - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate products table: %v", err)
	}
	log.Println("✓ Products table migrated")

	products := demoProducts()
	for i := range products {
		p := &products[i]
		p.Slug = catalog.DeriveSlug(p.Name, p.ID)

		if err := config.StoreGorm.Save(p).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.Name, err)
		}
	}

	fmt.Println()
	fmt.Printf("✓ Seeded %d products\n", len(products))
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Чай Assam листовой 250 г",
			Price:       price(1450),
			Category:    "Чай и кофе",
			Subcategory: "Чай",
			Producer:    "Assam",
			Description: "Классический листовой чай, плотный настой.",
			InBox:       "40 шт в коробке",
			SortOrder:   order(1),
			Meta:        datatypes.JSON([]byte(`{"unit":"шт","weight_g":250}`)),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Кофе растворимый Jacobs Monarch 190 г",
			Price:       price(3890),
			Category:    "Чай и кофе",
			Subcategory: "Кофе",
			Producer:    "Jacobs",
			Description: "Сублимированный растворимый кофе.",
			InBox:       "12 шт в коробке",
			SortOrder:   order(2),
			Meta:        datatypes.JSON([]byte(`{"unit":"шт","weight_g":190}`)),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Конфеты Казахстан 1 кг",
			Price:       price(2950),
			Category:    "Кондитерские изделия",
			Subcategory: "Конфеты",
			Producer:    "Рахат",
			Description: "Шоколадные конфеты с вафельной крошкой.",
			InBox:       "6 кг в коробке",
			SortOrder:   order(3),
			Meta:        datatypes.JSON([]byte(`{"unit":"кг"}`)),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Мука пшеничная высший сорт 2 кг",
			Price:       price(980),
			Category:    "Бакалея",
			Producer:    "Цесна",
			Description: "Мука высшего сорта для выпечки.",
			InBox:       "6 шт в коробке",
			SortOrder:   order(4),
			Meta:        datatypes.JSON([]byte(`{"unit":"шт","weight_g":2000}`)),
		},
		{
			// No price and no category: exercises the storefront fallbacks.
			ID:          uuid.NewString(),
			Name:        "Пакет фасовочный 24x37",
			Description: "Фасовочные пакеты, рулон.",
			InBox:       "100 шт в рулоне",
		},
		{
			ID:       uuid.NewString(),
			Name:     "Товар из архива",
			Price:    price(100),
			Category: "Бакалея",
			Archived: true,
		},
	}
}
