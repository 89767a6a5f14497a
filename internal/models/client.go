package models

import "time"

// Walk-in client, no login, tied to one branch
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `json:"branch_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
