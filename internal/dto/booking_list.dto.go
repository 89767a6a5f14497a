package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	StaffName   string    `json:"staff_name"`
	Services    []string  `json:"services"`
	TotalPrice  int       `json:"total_price"`
	DurationMin int       `json:"duration_min"`
}
