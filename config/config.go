package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	util "Sistem-Absensi-Karyawan/pkg/utils"
)

type AppConfig struct {
	Port         string
	MongoString  string
	PasetoSecret string
	WorkdayRule  string
}

// LoadConfig membaca konfigurasi dari .env / environment variables.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env tidak ditemukan, menggunakan environment variables sistem: %v", err)
	}

	secret := getEnv("PASETO_SECRET", "")
	if secret == "" {
		if example, err := util.GenerateBase64Key(32); err == nil {
			log.Printf("PASETO_SECRET belum di-set. Contoh key yang bisa dipakai: %s", example)
		}
		log.Fatal("PASETO_SECRET wajib di-set (base64 URL-encoded, 32 byte)")
	}

	return &AppConfig{
		Port:         getEnv("PORT", "3000"),
		MongoString:  getEnv("MONGOSTRING", ""),
		PasetoSecret: secret,
		WorkdayRule:  getEnv("WORKDAY_RRULE", util.DefaultWorkdayRule),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
