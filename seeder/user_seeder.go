package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Sistem-Absensi-Karyawan/models"
	"Sistem-Absensi-Karyawan/pkg/password"
	"Sistem-Absensi-Karyawan/repository"
)

var sampleEmployees = []models.User{
	{Name: "Budi Santoso", Email: "budi.santoso@gmail.com", Position: "Backend Developer", Department: "Teknologi Informasi (IT)"},
	{Name: "Siti Rahayu", Email: "siti.rahayu@gmail.com", Position: "HR Specialist", Department: "Sumber Daya Manusia (HRD)"},
	{Name: "Agus Wijaya", Email: "agus.wijaya@gmail.com", Position: "Akuntan Junior", Department: "Keuangan"},
	{Name: "Dewi Lestari", Email: "dewi.lestari@gmail.com", Position: "Marketing Specialist", Department: "Pemasaran"},
	{Name: "Joko Pratama", Email: "joko.pratama@gmail.com", Position: "Sales Executive", Department: "Penjualan"},
}

// SeedUsers mengisi user admin default dan beberapa karyawan contoh.
// Aman dipanggil berulang: user yang sudah ada dilewati.
func SeedUsers(userRepo *repository.UserRepository) {
	log.Println("Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	hashedPassword, err := password.HashPassword("Password123")
	if err != nil {
		log.Fatalf("Gagal hash password: %v", err)
	}

	adminEmail := "admin.utama@gmail.com"
	existingAdmin, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && existingAdmin != nil {
		log.Println("User admin sudah ada, seeding admin dilewati.")
	} else {
		newAdmin := &models.User{
			Name:       "Admin Utama",
			Email:      adminEmail,
			Password:   hashedPassword,
			Role:       models.RoleAdmin,
			Position:   "Manajer Umum",
			Department: "Manajemen",
		}
		if _, err := userRepo.CreateUser(ctx, newAdmin); err != nil {
			log.Printf("Gagal menyimpan user admin: %v", err)
		} else {
			fmt.Printf("User Admin (%s) berhasil ditambahkan.\n", newAdmin.Email)
		}
	}

	for _, employee := range sampleEmployees {
		existing, err := userRepo.FindUserByEmail(ctx, employee.Email)
		if err == nil && existing != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", employee.Email)
			continue
		}

		newUser := &models.User{
			Name:       employee.Name,
			Email:      employee.Email,
			Password:   hashedPassword,
			Role:       models.RoleKaryawan,
			Position:   employee.Position,
			Department: employee.Department,
		}
		if _, err := userRepo.CreateUser(ctx, newUser); err != nil {
			log.Printf("Gagal menyimpan user %s: %v", employee.Email, err)
			continue
		}
		fmt.Printf("User %s (%s) berhasil ditambahkan.\n", newUser.Name, newUser.Email)
	}

	log.Println("Seeding user selesai.")
}
