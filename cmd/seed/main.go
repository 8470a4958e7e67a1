package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/controllers/cms/product_controller"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/specs"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a sample catalog for local development.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NEXU WEBSHOP - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.DB.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.BlogPost{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	var existing int64
	if err := config.DB.Model(&models.Category{}).Count(&existing).Error; err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if existing > 0 {
		fmt.Println("❌ Catalog is not empty, refusing to seed over existing data")
		return
	}

	electronics := seedCategory("Elektronika", "Telefonok, laptopok és kiegészítők", nil)
	phones := seedCategory("Telefonok", "Okostelefonok minden árkategóriában", &electronics.ID)
	laptops := seedCategory("Laptopok", "Munkára és játékra", &electronics.ID)
	home := seedCategory("Otthon", "Otthoni eszközök", nil)
	coffee := seedCategory("Kávéfőzők", "Eszpresszó és filteres gépek", &home.ID)
	log.Println("✓ Categories created")

	seedProduct(models.Product{
		Name:          "Nexu Phone X2",
		Description:   "Vékony ház, erős akkumulátor és kiváló kamera.",
		Price:         129990,
		SubCategoryID: phones.ID,
		Status:        models.ProductStatusActive,
		Tags:          models.TagsList{"telefon", "5g"},
		Specifications: specs.Sanitize([]specs.Entry{
			{Key: "Kijelző", Type: specs.TypeHeader},
			{Key: "Méret", Value: "6,1 hüvelyk", Type: specs.TypeText},
			{Key: "Felbontás", Value: "2532 x 1170", Type: specs.TypeText},
			{Key: "Memória", Type: specs.TypeHeader},
			{Key: "Tárhely", Value: "128 GB", Type: specs.TypeText},
			{Key: "RAM", Value: "8 GB", Type: specs.TypeText},
			{Key: "Kapcsolat", Type: specs.TypeHeader},
			{Key: "5G", Value: true, Type: specs.TypeBoolean},
			{Key: "NFC", Value: true, Type: specs.TypeBoolean},
		}),
	}, []models.Attribute{
		{Name: "Szín", Values: []string{"Fekete", "Fehér"}},
		{Name: "Tárhely", Values: []string{"128 GB", "256 GB"}},
	})

	seedProduct(models.Product{
		Name:          "Nexu Phone X2 Lite",
		Description:   "A kedvenc telefonunk megfizethető kiadásban.",
		Price:         89990,
		SubCategoryID: phones.ID,
		Status:        models.ProductStatusActive,
		Tags:          models.TagsList{"telefon"},
		Specifications: specs.Sanitize([]specs.Entry{
			{Key: "Kijelző", Type: specs.TypeHeader},
			{Key: "Méret", Value: "6,1 hüvelyk", Type: specs.TypeText},
			{Key: "Memória", Type: specs.TypeHeader},
			{Key: "Tárhely", Value: "64 GB", Type: specs.TypeText},
			{Key: "RAM", Value: "6 GB", Type: specs.TypeText},
			{Key: "Kapcsolat", Type: specs.TypeHeader},
			{Key: "5G", Value: false, Type: specs.TypeBoolean},
			{Key: "NFC", Value: true, Type: specs.TypeBoolean},
		}),
	}, []models.Attribute{
		{Name: "Szín", Values: []string{"Fekete", "Kék"}},
	})

	seedProduct(models.Product{
		Name:          "Nexu Book 14",
		Description:   "Könnyű ultrabook egész napos üzemidővel.",
		Price:         349990,
		SubCategoryID: laptops.ID,
		Status:        models.ProductStatusActive,
		Tags:          models.TagsList{"laptop", "ultrabook"},
		Specifications: specs.Sanitize([]specs.Entry{
			{Key: "Kijelző", Type: specs.TypeHeader},
			{Key: "Méret", Value: "14 hüvelyk", Type: specs.TypeText},
			{Key: "Memória", Type: specs.TypeHeader},
			{Key: "Tárhely", Value: "512 GB", Type: specs.TypeText},
			{Key: "RAM", Value: "16 GB", Type: specs.TypeText},
			{Key: "Kapcsolat", Type: specs.TypeHeader},
			{Key: "Wi-Fi 6", Value: true, Type: specs.TypeBoolean},
		}),
	}, []models.Attribute{
		{Name: "Szín", Values: []string{"Ezüst", "Szürke"}},
		{Name: "Garancia", Values: []string{"1 év", "3 év"}},
	})

	seedProduct(models.Product{
		Name:          "Nexu Presso",
		Description:   "Kompakt eszpresszógép 15 bar nyomással.",
		Price:         49990,
		SubCategoryID: coffee.ID,
		Status:        models.ProductStatusActive,
		Tags:          models.TagsList{"kávé", "konyha"},
		Specifications: specs.Sanitize([]specs.Entry{
			{Key: "Teljesítmény", Value: "1450 W", Type: specs.TypeText},
			{Key: "Nyomás", Value: "15 bar", Type: specs.TypeText},
			{Key: "Tejhabosító", Value: true, Type: specs.TypeBoolean},
		}),
	}, nil)

	log.Println("✓ Products created")

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse products at GET /api/v1/store/products")
	fmt.Println("3. Facet groups at GET /api/v1/store/products/spec-filters")
	fmt.Println()
}

func seedCategory(name, description string, parentID *uuid.UUID) *models.Category {
	category := models.Category{
		Name:        name,
		Description: description,
		ParentID:    parentID,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		log.Fatalf("Failed to create category %q: %v", name, err)
	}
	return &category
}

func seedProduct(product models.Product, attributes []models.Attribute) {
	if attributes != nil {
		product.Attributes = models.AttributeList(attributes)
		product.Variants = models.VariantList(product_controller.ExpandVariants(attributes))
		for i := range product.Variants {
			product.Variants[i].Stock = 10
		}
	}
	if err := config.DB.Create(&product).Error; err != nil {
		log.Fatalf("Failed to create product %q: %v", product.Name, err)
	}
}
