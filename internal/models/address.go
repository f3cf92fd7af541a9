package models

type Address struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Address   string  `gorm:"type:varchar(250);not null;index" json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UserID    *uint   `gorm:"index" json:"user_id,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
