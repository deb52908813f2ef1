// Package directive finds the machine-readable instructions the assistant embeds in its
// replies and turns them into deterministic caller-facing text.
package directive

import (
	"hauliday/internal/domains/reservation/model"
	"regexp"
	"strings"
)

const (
	KindCheckAvailability = "check_availability"
	KindCreateReservation = "create_reservation"
)

var (
	checkPattern  = regexp.MustCompile(`CHECK_AVAILABILITY:([^,\s]+),(\d{4}-\d{2}-\d{2}),(\d{4}-\d{2}-\d{2})`)
	createPattern = regexp.MustCompile(`CREATE_RESERVATION:([^,\s]+),(\d{4}-\d{2}-\d{2}),(\d{4}-\d{2}-\d{2}),([^,\n]+),([^,\n]+),([^,\n]+)`)
)

type CheckAvailability struct {
	EquipmentID string
	Dates       model.DateRange
}

type CreateReservation struct {
	EquipmentID string
	Dates       model.DateRange
	Contact     Contact
}

type Contact struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,phone"`
}

// Parse returns the first occurrence of each directive kind. A directive whose dates are not
// real calendar dates, or whose start is after its end, is not a match.
func Parse(text string) (*CheckAvailability, *CreateReservation) {
	return parseCheck(text), parseCreate(text)
}

func parseCheck(text string) *CheckAvailability {
	m := checkPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	dates, err := model.NewDateRange(m[2], m[3])
	if err != nil {
		return nil
	}

	return &CheckAvailability{EquipmentID: m[1], Dates: dates}
}

func parseCreate(text string) *CreateReservation {
	m := createPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	dates, err := model.NewDateRange(m[2], m[3])
	if err != nil {
		return nil
	}

	return &CreateReservation{
		EquipmentID: m[1],
		Dates:       dates,
		Contact: Contact{
			Name:  strings.TrimSpace(m[4]),
			Email: strings.TrimSpace(m[5]),
			Phone: strings.TrimSpace(m[6]),
		},
	}
}
