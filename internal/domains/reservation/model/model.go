package model

import (
	"hauliday/shared/constant"
	"time"

	"github.com/pkg/errors"
)

const (
	EntityName = "reservation"

	FieldReservationID = "reservation_id"
	FieldEquipmentID   = "equipment_id"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldStatus        = "status"

	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Reservation is a booking record written by the external booking flow.
type Reservation struct {
	ReservationID string `dynamodbav:"reservation_id"`
	EquipmentID   string `dynamodbav:"equipment_id"`
	StartDate     string `dynamodbav:"start_date"`
	EndDate       string `dynamodbav:"end_date"`
	Status        string `dynamodbav:"status"`
	CustomerName  string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	CreatedAt     string `dynamodbav:"created_at,omitempty"`
}

// Period parses the stored dates.
func (r Reservation) Period() (DateRange, error) {
	return NewDateRange(r.StartDate, r.EndDate)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses two ISO dates, rejecting a start after the end.
func NewDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(constant.DateFormat, start)
	if err != nil {
		return DateRange{}, errors.Wrapf(err, "invalid start date %q", start)
	}

	e, err := time.Parse(constant.DateFormat, end)
	if err != nil {
		return DateRange{}, errors.Wrapf(err, "invalid end date %q", end)
	}

	if s.After(e) {
		return DateRange{}, errors.Errorf("start date %s is after end date %s", start, end)
	}

	return DateRange{Start: s, End: e}, nil
}

// Overlaps reports whether the ranges share at least one day; touching endpoints overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}
