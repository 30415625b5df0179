package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/config"
	"github.com/real-danalex/butterburst-api/mailer"
	"github.com/real-danalex/butterburst-api/models"
	"github.com/real-danalex/butterburst-api/routes"
	"github.com/real-danalex/butterburst-api/session"
)

func main() {
	rootCmd := &cobra.Command{Use: "butterburst-api"}
	rootCmd.AddCommand(
		serveCommand(),
		seedCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the storefront API server",
		Run: func(cmd *cobra.Command, args []string) {
			log.Println("✅ Starting application...")

			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("❌ Failed to load config: %v", err)
			}

			db := initDatabase(cfg)

			r := gin.Default()
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
				ExposeHeaders:    []string{"Content-Length", "Location"},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			}))

			store := session.NewStore(cfg.Session.Secret, time.Duration(cfg.Session.TTLSec)*time.Second)
			routes.SetupRoutes(r, db, store, mailer.New(cfg.Mail))

			log.Printf("🚀 Server running on port %s...", cfg.HTTP.Port)
			if err := r.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
				log.Fatalf("❌ Failed to start server: %v", err)
			}
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "insert the sample product catalog if the products table is empty",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("❌ Failed to load config: %v", err)
			}

			db := initDatabase(cfg)
			if err := seedProducts(db); err != nil {
				log.Fatalf("❌ Seeding failed: %v", err)
			}
		},
	}
}

// initDatabase sets up the GORM DB connection and migrates the schema.
func initDatabase(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Contact{},
		&models.DistributorApplication{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	return db
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Products table is not empty, skipping seed")
		return nil
	}

	samples := []models.Product{
		{Name: "White Bread", Description: "Soft and fluffy white bread perfect for sandwiches",
			Price: decimal.NewFromInt(500), Category: "white", Image: "white_bread.jpg", InStock: true},
		{Name: "Wheat Bread", Description: "Wholesome wheat bread packed with nutrients",
			Price: decimal.NewFromInt(600), Category: "wheat", Image: "wheat_bread.jpg", InStock: true},
		{Name: "Multigrain Bread", Description: "Healthy multigrain bread with seeds",
			Price: decimal.NewFromInt(700), Category: "multigrain", Image: "multigrain_bread.jpg", InStock: true},
		{Name: "Sweet Bread", Description: "Deliciously sweet bread for breakfast",
			Price: decimal.NewFromInt(550), Category: "sweet", Image: "sweet_bread.jpg", InStock: true},
		{Name: "Sandwich Loaf", Description: "Perfect sized loaf for sandwiches",
			Price: decimal.NewFromInt(450), Category: "white", Image: "sandwich_loaf.jpg", InStock: true},
		{Name: "Family Pack", Description: "Large family-sized bread",
			Price: decimal.NewFromInt(800), Category: "white", Image: "family_pack.jpg", InStock: true},
	}
	if err := db.Create(&samples).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d sample products", len(samples))
	return nil
}
