package domain

import "time"

// AccountRole separates dashboard admins from employees. Employees
// additionally carry the job role tasks are assigned against.
type AccountRole string

const (
	AccountAdmin    AccountRole = "admin"
	AccountEmployee AccountRole = "employee"
)

// User represents an account visible in the dashboards. EmployeeRole is
// one of the canonical task roles and is empty for admins.
type User struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	Name         string      `json:"name" gorm:"index;not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null"`
	Password     string      `json:"-" gorm:"not null"`
	Role         AccountRole `json:"role" gorm:"default:employee"`
	EmployeeRole string      `json:"employee_role,omitempty" gorm:"index"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
