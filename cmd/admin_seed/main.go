// Seeds the admin account and the default fee configuration. Intended for
// one-time setup of a fresh environment; it is a no-op when both already
// exist.
package main

import (
	"log"
	"os"

	"renthub/internal/config"
	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminPhone := os.Getenv("ADMIN_PHONE")

	if adminEmail == "" || adminPassword == "" || adminPhone == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD, and ADMIN_PHONE must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	seedAdmin(adminEmail, adminPassword, adminPhone)
	seedFeeConfig()
}

func seedAdmin(email, password, phone string) {
	var existing models.User
	if err := repositories.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	code, err := utils.GenerateReferralCode()
	if err != nil {
		log.Fatal("Failed to generate referral code:", err)
	}

	admin := models.User{
		Email:        email,
		Password:     string(hashedPassword),
		Phone:        phone,
		Name:         "Administrator",
		Role:         "admin",
		Status:       "active",
		ReferralCode: code,
	}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}
	log.Printf("Admin user created with id %d", admin.ID)
}

func seedFeeConfig() {
	var count int64
	repositories.DB.Model(&models.FeeConfig{}).Where("active = ?", true).Count(&count)
	if count > 0 {
		log.Println("Active fee config already exists")
		return
	}

	cfg := models.FeeConfig{
		RenterPercentage:      models.DefaultRenterPercentage,
		HubberPercentage:      models.DefaultHubberPercentage,
		SuperHubberPercentage: models.DefaultSuperHubberPercentage,
		RenterFixedFee:        models.DefaultRenterFixedFee,
		HubberFixedFee:        models.DefaultHubberFixedFee,
		MaxCreditUsagePercent: models.DefaultMaxCreditUsagePercent,
		Active:                true,
	}
	if err := repositories.DB.Create(&cfg).Error; err != nil {
		log.Fatal("Failed to create fee config:", err)
	}
	log.Println("Default fee config created")
}
