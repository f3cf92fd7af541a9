package models

import (
	"time"

	"gorm.io/datatypes"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type Task struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Title              string         `gorm:"type:varchar(250);not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	DeliveryLocationID uint           `gorm:"index;not null" json:"delivery_location_id"`
	PickupLocationID   uint           `gorm:"index;not null" json:"pickup_location_id"`
	DueDate            datatypes.Date `json:"due_date"`
	RequesterID        uint           `gorm:"index;not null" json:"requester_id"`
	SeekerID           *uint          `gorm:"index" json:"seeker_id"`
	CategoryID         uint           `gorm:"index;not null" json:"category_id"`
	Budget             float64        `json:"budget"`
	Status             TaskStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreationDate       time.Time      `gorm:"autoCreateTime" json:"creation_date"`

	DeliveryLocation *Address    `gorm:"foreignKey:DeliveryLocationID" json:"delivery_address,omitempty"`
	PickupLocation   *Address    `gorm:"foreignKey:PickupLocationID" json:"pickup_address,omitempty"`
	Requester        *Requester  `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Seeker           *TaskSeeker `gorm:"foreignKey:SeekerID" json:"seeker,omitempty"`
	Category         *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Ratings          []Rating    `gorm:"foreignKey:TaskID" json:"ratings,omitempty"`
	Applicants       []Postulant `gorm:"foreignKey:TaskID" json:"applicants,omitempty"`
}
