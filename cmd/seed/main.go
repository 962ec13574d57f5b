package main

import (
	"log"

	"meetscribe-backend/internal/notification"
	taskdomain "meetscribe-backend/internal/task/domain"
	userdomain "meetscribe-backend/internal/user/domain"
	userRepo "meetscribe-backend/internal/user/repository"
	"meetscribe-backend/pkg/config"
	"meetscribe-backend/pkg/database"
)

// Seed accounts for a fresh install: one admin plus one employee per
// canonical job role so extracted tasks always have someone to land on.
var employees = []struct {
	name  string
	email string
	role  taskdomain.Role
}{
	{"Alex", "alex@example.com", taskdomain.RoleSalesAnalyst},
	{"Sarah", "sarah@example.com", taskdomain.RolePresentationDesigner},
	{"Maya", "maya@example.com", taskdomain.RoleSoftwareEngineer},
	{"James", "james@example.com", taskdomain.RoleMarketingManager},
}

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(&userdomain.User{}, &taskdomain.Task{}, &notification.Notification{}, &notification.DeviceToken{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	users := userRepo.NewGormUserRepository(db)

	seed(users, &userdomain.User{
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  userdomain.AccountAdmin,
	}, "admin123")

	for _, e := range employees {
		seed(users, &userdomain.User{
			Name:         e.name,
			Email:        e.email,
			Role:         userdomain.AccountEmployee,
			EmployeeRole: string(e.role),
		}, "password123")
	}

	log.Println("Seeding complete")
}

func seed(users userRepo.UserRepository, u *userdomain.User, password string) {
	existing, err := users.FindByEmail(u.Email)
	if err != nil {
		log.Fatal("Failed to look up user:", err)
	}
	if existing != nil {
		log.Printf("[Seed] %s already exists, skipping", u.Email)
		return
	}

	hashed, err := userRepo.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	u.Password = hashed

	if err := users.Create(u); err != nil {
		log.Fatal("Failed to create user:", err)
	}
	log.Printf("[Seed] Created %s (%s)", u.Name, u.Email)
}
