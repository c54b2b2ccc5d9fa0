package config

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-burjo-pos/models"
)

// SeedAdmin membuat satu user staff dari konfigurasi kalau belum ada.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedSampleData mengisi meja 1-10 (kapasitas 2 untuk meja 1-5, selain itu 4)
// dan menu awal. Idempotent: hanya jalan saat tabel masih kosong.
func SeedSampleData(db *gorm.DB) error {
	var tableCount int64
	db.Model(&models.Table{}).Count(&tableCount)
	if tableCount == 0 {
		for i := 1; i <= 10; i++ {
			capacity := 2
			if i > 5 {
				capacity = 4
			}
			table := models.Table{
				TableNumber: i,
				Capacity:    capacity,
				Status:      models.TableStatusEmpty,
			}
			if err := db.Create(&table).Error; err != nil {
				return err
			}
		}
	}

	var menuCount int64
	db.Model(&models.Menu{}).Count(&menuCount)
	if menuCount == 0 {
		menus := []models.Menu{
			{ID: 1, Name: "Ayam Balap", Category: models.CategoryFood, Price: 15000, Stock: 15, SpiceLevel: 2},
			{ID: 2, Name: "Ayam Bali", Category: models.CategoryFood, Price: 15000, Stock: 10, SpiceLevel: 1},
			{ID: 3, Name: "Mie Dok Dok", Category: models.CategoryFood, Price: 18000, Stock: 8},
			{ID: 101, Name: "Es Teh Manis", Category: models.CategoryDrink, Price: 5000, Stock: 20, Size: "regular", IsCold: true},
			{ID: 102, Name: "Jus Jeruk", Category: models.CategoryDrink, Price: 12000, Stock: 15, Size: "regular", IsCold: true},
			{ID: 103, Name: "Kopi Latte", Category: models.CategoryDrink, Price: 18000, Stock: 12, Size: "large", IsCold: false},
		}
		for _, m := range menus {
			menu := m
			if err := db.Create(&menu).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
