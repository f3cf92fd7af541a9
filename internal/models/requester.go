package models

// Requester is the "posts tasks" side of a user. One row per user at most;
// its presence (together with TaskSeeker) determines User.Role.
type Requester struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	UserID              uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	OverallRating       float64 `json:"overall_rating"`
	TotalRequestedTasks int     `json:"total_requested_tasks"`
	TotalReviews        int     `json:"total_reviews"`
	AverageBudget       float64 `json:"average_budget"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
