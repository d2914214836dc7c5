package response

import (
	"time"

	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ServiceType string    `json:"serviceType"`
	ServiceID   uuid.UUID `json:"serviceId"`
	Date        string    `json:"date"`
	Total       int32     `json:"total"`
	Available   int32     `json:"available"`
	Bookings    int32     `json:"bookings"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DateOutcomeResponse struct {
	Date         string                `json:"date"`
	Availability *AvailabilityResponse `json:"availability,omitempty"`
	Error        string                `json:"error,omitempty"`
}

type BlockResponse struct {
	Availability      AvailabilityResponse `json:"availability"`
	SurvivingBookings int32                `json:"survivingBookings"`
	Warning           string               `json:"warning,omitempty"`
}

const dateLayout = "2006-01-02"

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ServiceType: rm.ServiceType,
		ServiceID:   rm.ServiceID,
		Date:        rm.Date.Format(dateLayout),
		Total:       rm.Total,
		Available:   rm.Available,
		Bookings:    rm.Bookings,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromDateOutcome(o commands.DateOutcome) DateOutcomeResponse {
	resp := DateOutcomeResponse{
		Date:  o.Date.Format(dateLayout),
		Error: o.Error,
	}
	if o.View != nil {
		resp.Availability = FromAvailabilityView(o.View)
	}
	return resp
}

func FromBlockResult(rm *commands.BlockResult) *BlockResponse {
	resp := &BlockResponse{
		Availability:      *FromAvailabilityView(rm.View),
		SurvivingBookings: rm.SurvivingBookings,
	}
	if rm.SurvivingBookings > 0 {
		resp.Warning = "date blocked with confirmed bookings still in place"
	}
	return resp
}
