package notification

import "time"

// Type distinguishes notification kinds in the employee dashboard.
const TypeNewTask = "new_task"

// Notification is a persisted message for one user, created when a task
// is assigned to them.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	TaskID    string    `json:"task_id" gorm:"index"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// DeviceToken registers one push-capable device for a user.
type DeviceToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}
