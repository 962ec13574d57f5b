package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"meetscribe-backend/internal/user/domain"
)

// gormUserRepository implements UserRepository using GORM
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based UserRepository
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *gormUserRepository) FindByID(id string) (*domain.User, error) {
	return r.findOne("id = ?", id)
}

func (r *gormUserRepository) FindByEmail(email string) (*domain.User, error) {
	return r.findOne("email = ?", email)
}

func (r *gormUserRepository) FindByName(name string) (*domain.User, error) {
	return r.findOne("name = ?", name)
}

func (r *gormUserRepository) FindByEmployeeRole(role string) (*domain.User, error) {
	return r.findOne("role = ? AND employee_role = ?", domain.AccountEmployee, role)
}

func (r *gormUserRepository) ListByEmployeeRole(role string) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Where("employee_role = ?", role).Find(&users).Error
	return users, err
}

func (r *gormUserRepository) findOne(query string, args ...interface{}) (*domain.User, error) {
	var user domain.User
	err := r.db.Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
