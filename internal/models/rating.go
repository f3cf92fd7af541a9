package models

// Rating targets exactly one of the two sides of a task: SeekerID and
// RequesterID are mutually exclusive and never both nil.
type Rating struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	Stars       int   `gorm:"not null" json:"stars"`
	TaskID      uint  `gorm:"index;not null" json:"task_id"`
	SeekerID    *uint `gorm:"index" json:"seeker_id"`
	RequesterID *uint `gorm:"index" json:"requester_id"`

	Task      *Task       `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Seeker    *TaskSeeker `gorm:"foreignKey:SeekerID" json:"seeker,omitempty"`
	Requester *Requester  `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}
