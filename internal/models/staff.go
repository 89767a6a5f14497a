package models

import "time"

// Staff members are bookable resources, not login accounts.
// BranchID = 0 means the member is not assigned to any branch yet.
type Staff struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `gorm:"index" json:"branch_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
