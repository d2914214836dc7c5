package request

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses the wire format for calendar dates.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

type UpdateAvailabilityRequest struct {
	Date      string `json:"date" binding:"required"`
	Available int32  `json:"available" binding:"min=0"`
}

// BulkUpdateAvailabilityRequest spans an inclusive date range; the server
// expands it into individual dates.
type BulkUpdateAvailabilityRequest struct {
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
	Available int32  `json:"available" binding:"min=0"`
}

type BlockAvailabilityRequest struct {
	Date string `json:"date" binding:"required"`
}
