package repository

import (
	"meetscribe-backend/internal/user/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *domain.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*domain.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*domain.User, error)

	// FindByName finds a user by display name
	FindByName(name string) (*domain.User, error)

	// FindByEmployeeRole finds any employee holding the given job role
	FindByEmployeeRole(role string) (*domain.User, error)

	// ListByEmployeeRole lists all employees holding the given job role
	ListByEmployeeRole(role string) ([]*domain.User, error)
}
