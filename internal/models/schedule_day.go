package models

import "time"

// One staff member's hours for one calendar date.
// Start/End are "HH:MM" and are retained even when Working is false,
// so toggling a day back on restores its previous hours.
type ScheduleDay struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	StaffID uint   `gorm:"index:idx_schedule_staff_date,unique" json:"staff_id"`
	Date    string `gorm:"size:10;index:idx_schedule_staff_date,unique" json:"date"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Working   bool   `json:"is_working_day"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
