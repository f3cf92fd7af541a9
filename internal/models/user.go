package models

import "time"

type Role string

const (
	RoleNone       Role = "NONE"
	RoleRequester  Role = "REQUESTER"
	RoleTaskSeeker Role = "TASK_SEEKER"
	RoleBoth       Role = "BOTH"
)

// RoleFor derives a user's role from which role records it owns. Every role
// change goes through this function so the column cannot drift from the
// requester/task_seeker tables.
func RoleFor(hasRequester, hasSeeker bool) Role {
	switch {
	case hasRequester && hasSeeker:
		return RoleBoth
	case hasRequester:
		return RoleRequester
	case hasSeeker:
		return RoleTaskSeeker
	default:
		return RoleNone
	}
}

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"type:varchar(120);uniqueIndex;not null" json:"username"`
	Email          string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	FullName       string `gorm:"type:varchar(120);not null" json:"full_name"`
	Description    string `gorm:"type:text" json:"description"`
	ProfilePicture string `json:"profile_picture"`
	Role           Role   `gorm:"type:varchar(20);not null;default:'NONE'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Requester *Requester  `gorm:"foreignKey:UserID;references:ID" json:"requester,omitempty"`
	Seeker    *TaskSeeker `gorm:"foreignKey:UserID;references:ID" json:"seeker,omitempty"`
}
