package model

import (
	"github.com/google/uuid"

	"planner/internal/dates"
)

const (
	StatusDoing     = "doing"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the allowed task statuses.
func ValidStatus(s string) bool {
	return s == StatusDoing || s == StatusCompleted
}

type Task struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID         string    `gorm:"not null;index"`
	Title          string    `gorm:"not null"`
	Description    string    `gorm:"not null;default:''"`
	EstimatedHours *float64
	DueDate        *dates.Date `gorm:"type:date"`
	StartTime      *string
	EndTime        *string
	Instructions   string `gorm:"not null;default:''"`
	Label          string `gorm:"not null;default:''"`
	Status         string `gorm:"not null;default:doing"`
}
