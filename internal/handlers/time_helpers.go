package handlers

import (
	"time"

	"github.com/Expertman131/beauty-track-sub001/internal/models"
	"github.com/Expertman131/beauty-track-sub001/internal/timezone"
)

// Every date/time coming over the wire is interpreted in the branch's
// own timezone, never the server's.

func locationFromBranch(branch *models.Branch) *time.Location {
	if branch != nil {
		return timezone.Location(branch.Timezone)
	}
	return timezone.Location("")
}

func parseDateInBranch(branch *models.Branch, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromBranch(branch),
	)
}
