package models

// Postulant is a task seeker's bid on a task.
type Postulant struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Status   string  `gorm:"type:varchar(20);not null" json:"status"`
	SeekerID uint    `gorm:"index;not null" json:"seeker_id"`
	Price    float64 `json:"price"`
	TaskID   uint    `gorm:"index" json:"task_id"`

	Seeker *TaskSeeker `gorm:"foreignKey:SeekerID" json:"seeker,omitempty"`
	Task   *Task       `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
