package schedule

import (
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

// Booking totals over the selected services. Integer arithmetic, no
// tax or rounding policy.

func TotalPrice(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.Price
	}
	return total
}

func TotalDuration(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	return total
}

// EndTime adds durationMin minutes to an "HH:MM" start and formats the
// result back zero-padded. The hour wraps modulo 24h with no next-day
// marker; callers treating a same-day booking as a hard requirement
// must check the wrap themselves.
func EndTime(start string, durationMin int) (string, error) {
	m, err := parseHM(start)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_start_time")
	}
	return formatHM(m + durationMin), nil
}
