package users

import (
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/users/auth/model"
	"pengajianku_backend/internals/features/users/auth/service"
)

type UserSeed struct {
	UserFullName string `json:"user_full_name"`
	UserUsername string `json:"user_username"`
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_password"`
	UserRole     string `json:"user_role"`
}

// SeedUsersFromJSON isi akun awal dari file JSON; user yang emailnya sudah
// terdaftar dilewati. Akun hasil seed langsung aktif.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.UserEmail))

		var existing model.UserModel
		if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", email)
			continue
		}

		hashed, err := service.HashPassword(data.UserPassword)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", email, err)
			continue
		}

		newUser := model.UserModel{
			UserFullName: data.UserFullName,
			UserUsername: strings.TrimSpace(data.UserUsername),
			UserEmail:    email,
			UserPassword: hashed,
			UserRole:     data.UserRole,
			UserIsActive: true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal seed user '%s': %v", email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) berhasil di-seed.", newUser.UserUsername, newUser.UserRole)
	}
}
