package domain

import "time"

// Role is one of the fixed employee roles tasks can be assigned to.
// Every persisted task carries a member of this set; anything else is
// filtered out before it reaches the ingestion queue.
type Role string

const (
	RoleSalesAnalyst         Role = "Sales Analyst"
	RolePresentationDesigner Role = "Presentation Designer"
	RoleSoftwareEngineer     Role = "Software Engineer"
	RoleMarketingManager     Role = "Marketing Manager"
)

// CanonicalRoles lists every valid role in a fixed order.
func CanonicalRoles() []Role {
	return []Role{
		RoleSalesAnalyst,
		RolePresentationDesigner,
		RoleSoftwareEngineer,
		RoleMarketingManager,
	}
}

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// DeadlineNotSpecified is the sentinel stored when a task has no deadline.
const DeadlineNotSpecified = "Not specified"

// Task is a persisted action item extracted from a meeting transcript.
// Deadline is either a YYYY-MM-DD string, the "Not specified" sentinel,
// or the original phrase when it could not be normalized.
type Task struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	Description        string     `json:"task_description" gorm:"not null"`
	AssigneeID         string     `json:"assignee_id" gorm:"index"`
	AssigneeName       string     `json:"assignee_name"`
	Role               Role       `json:"role" gorm:"index;not null"`
	Deadline           string     `json:"deadline"`
	Status             TaskStatus `json:"status" gorm:"default:pending"`
	OriginalTranscript string     `json:"original_transcript,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ValidatedTask is the record admitted to the ingestion queue: a task
// candidate that has passed role/date normalization and assignee
// reconciliation. The enqueuing side relinquishes ownership once it is
// accepted; the queue's worker turns it into exactly one Task row and
// one notification.
type ValidatedTask struct {
	Description        string     `json:"task_description"`
	AssigneeName       string     `json:"assignee_name"`
	AssigneeID         string     `json:"assignee_id"`
	Role               Role       `json:"role"`
	Deadline           string     `json:"deadline"`
	Status             TaskStatus `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	OriginalTranscript string     `json:"original_transcript"`
}
