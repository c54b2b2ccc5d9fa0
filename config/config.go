package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"go-burjo-pos/utils"
)

// RestaurantProfile adalah identitas restoran yang ditampilkan di beranda
// dan di kepala nota. Nilainya dibekukan saat startup.
type RestaurantProfile struct {
	Name      string  `json:"name"`
	Rating    float64 `json:"rating"`
	OpenTime  string  `json:"open_time"`
	CloseTime string  `json:"close_time"`
}

type Config struct {
	Restaurant RestaurantProfile
	Port       string
	DBDriver   string
	DBSource   string
	AdminName  string
	AdminEmail string
	AdminPass  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if utils.InfoLogger != nil {
			utils.InfoLogger.Println("Warning: .env file not found")
		}
	}

	return &Config{
		Restaurant: RestaurantProfile{
			Name:      getEnv("RESTAURANT_NAME", "Burjo Tubagus"),
			Rating:    getEnvFloat("RESTAURANT_RATING", 4.9),
			OpenTime:  getEnv("RESTAURANT_OPEN", "10:00"),
			CloseTime: getEnv("RESTAURANT_CLOSE", "22:00"),
		},
		Port:       getEnv("PORT", "8080"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBSource:   getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		AdminName:  getEnv("ADMIN_NAME", "Admin"),
		AdminEmail: getEnv("ADMIN_EMAIL", "admin@burjo.local"),
		AdminPass:  getEnv("ADMIN_PASSWORD", "rahasia123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
