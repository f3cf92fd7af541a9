package models

// TaskSeeker is the "bids on tasks" side of a user.
type TaskSeeker struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	UserID              uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	OverallRating       float64 `json:"overall_rating"`
	TotalRequestedTasks int     `json:"total_requested_tasks"`
	TotalReviews        int     `json:"total_reviews"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
