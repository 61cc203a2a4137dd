// Package testutil содержит общие хелперы для тестов: sqlite в памяти
// и фабрики пользователей.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"campushire_backend/database"
	"campushire_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seq atomic.Int64

// NewTestDB открывает отдельную sqlite базу в памяти с примененными миграциями
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить миграции: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateUser сохраняет пользователя. Если PasswordHash не похож на bcrypt,
// он считается сырым паролем и хешируется.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	n := seq.Add(1)
	if user.Username == "" {
		user.Username = fmt.Sprintf("user%d", n)
	}
	if user.Email == "" {
		user.Email = fmt.Sprintf("user%d@test.com", n)
	}
	if user.Role == "" {
		user.Role = models.UserRoleStudent
	}
	if user.College == "" {
		user.College = "MIT"
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", user.Email, err)
	}
	return user
}

// CreateJobholder - верифицированный jobholder указанного колледжа
func CreateJobholder(t *testing.T, db *gorm.DB, college string) *models.User {
	return CreateUser(t, db, &models.User{
		Role:       models.UserRoleJobholder,
		College:    college,
		IsVerified: true,
	})
}

func CreateStudent(t *testing.T, db *gorm.DB, college string) *models.User {
	return CreateUser(t, db, &models.User{Role: models.UserRoleStudent, College: college})
}

func CreateAdmin(t *testing.T, db *gorm.DB) *models.User {
	return CreateUser(t, db, &models.User{Role: models.UserRoleAdmin, College: "admin", IsVerified: true})
}

// CreateJob сохраняет вакансию от имени poster. age сдвигает created_at в прошлое.
func CreateJob(t *testing.T, db *gorm.DB, poster *models.User, company, salary string, age time.Duration) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyName:   company,
		Role:          "Engineer",
		Salary:        salary,
		Description:   "Work on things",
		YearOfJoining: 2022,
		College:       poster.College,
		PostedBy:      poster.ID,
	}
	job.CreatedAt = time.Now().Add(-age)

	if err := db.Create(job).Error; err != nil {
		t.Fatalf("Не удалось создать вакансию: %v", err)
	}
	return job
}
