package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for notification data access
type Repository interface {
	// Create stores a new notification and returns its identifier
	Create(n *Notification) (string, error)

	// FindUnread returns a user's unread notifications, newest first
	FindUnread(userID string) ([]*Notification, error)

	// MarkRead marks a notification as read
	MarkRead(id string) error

	// SaveToken registers a device token for push notifications
	SaveToken(token *DeviceToken) error

	// TokensByUser returns all device tokens registered for a user
	TokensByUser(userID string) ([]*DeviceToken, error)

	// DeleteToken removes a device token that is no longer valid
	DeleteToken(token string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-based notification Repository
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(n *Notification) (string, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()
	if err := r.db.Create(n).Error; err != nil {
		return "", err
	}
	return n.ID, nil
}

func (r *gormRepository) FindUnread(userID string) ([]*Notification, error) {
	var notifications []*Notification
	err := r.db.Where("user_id = ? AND read = ?", userID, false).
		Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *gormRepository) MarkRead(id string) error {
	return r.db.Model(&Notification{}).Where("id = ?", id).
		Update("read", true).Error
}

func (r *gormRepository) SaveToken(token *DeviceToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	token.CreatedAt = time.Now()
	return r.db.Create(token).Error
}

func (r *gormRepository) TokensByUser(userID string) ([]*DeviceToken, error) {
	var tokens []*DeviceToken
	err := r.db.Where("user_id = ?", userID).Find(&tokens).Error
	return tokens, err
}

func (r *gormRepository) DeleteToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&DeviceToken{}).Error
}
