package directive

//go:generate go run go.uber.org/mock/mockgen -source=./processor.go -destination=./mocks/processor_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hauliday/config"
	"hauliday/infras/otel"
	"hauliday/internal/domains/catalog"
	catalogModel "hauliday/internal/domains/catalog/model"
	"hauliday/internal/domains/reservation/model"
	reservation "hauliday/internal/domains/reservation/service"
	"hauliday/shared/constant"
	"hauliday/shared/logger"
	"hauliday/shared/metrics"
	"hauliday/shared/validator"
)

const (
	displayDateFormat = "January 2, 2006"

	resultAvailable        = "available"
	resultUnavailable      = "unavailable"
	resultUnknownEquipment = "unknown_equipment"
	resultHandoff          = "handoff"
	resultInvalidContact   = "invalid_contact"

	otelAttrCheck  = "directive.check"
	otelAttrCreate = "directive.create"
)

type Processor interface {
	// Process returns the caller-facing text for a generated reply.
	Process(ctx context.Context, text string) string
}

type processorImpl struct {
	catalog      *catalog.Catalog
	availability reservation.Availability
	bookingURL   string
	otel         otel.Otel
}

func New(catalog *catalog.Catalog, availability reservation.Availability, cfg *config.Config, otel otel.Otel) Processor {
	return &processorImpl{
		catalog:      catalog,
		availability: availability,
		bookingURL:   cfg.App.BookingURL,
		otel:         otel,
	}
}

func (p *processorImpl) Process(ctx context.Context, text string) string {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Directive.Process")
	defer scope.End()

	check, create := Parse(text)

	scope.SetAttributes(map[string]any{
		otelAttrCheck:  check != nil,
		otelAttrCreate: create != nil,
	})

	if check != nil {
		text = p.applyCheck(ctx, check, text)
	}

	if create != nil {
		text = p.applyCreate(ctx, create, text)
	}

	return text
}

func (p *processorImpl) applyCheck(ctx context.Context, check *CheckAvailability, text string) string {
	item, ok := p.catalog.Get(check.EquipmentID)
	if !ok {
		logger.Ctx(ctx).Warn().Str("equipment_id", check.EquipmentID).Msg("availability directive names unknown equipment")
		metrics.IncDirective(KindCheckAvailability, resultUnknownEquipment)

		return text
	}

	if p.availability.IsAvailable(ctx, item.ID, check.Dates) {
		metrics.IncDirective(KindCheckAvailability, resultAvailable)

		return availableMessage(item, check.Dates)
	}

	metrics.IncDirective(KindCheckAvailability, resultUnavailable)

	return unavailableMessage(item, check.Dates)
}

func (p *processorImpl) applyCreate(ctx context.Context, create *CreateReservation, text string) string {
	item, ok := p.catalog.Get(create.EquipmentID)
	if !ok {
		logger.Ctx(ctx).Warn().Str("equipment_id", create.EquipmentID).Msg("reservation directive names unknown equipment")
		metrics.IncDirective(KindCreateReservation, resultUnknownEquipment)

		return text
	}

	if err := validator.ValidateStruct(&create.Contact); err != nil {
		logger.Ctx(ctx).Info().Err(err).Strs("fields", validator.InvalidFields(&create.Contact)).
			Msg("reservation directive has invalid contact details")
		metrics.IncDirective(KindCreateReservation, resultInvalidContact)

		return confirmDetailsMessage
	}

	metrics.IncDirective(KindCreateReservation, resultHandoff)

	return handoffMessage(item, create, p.bookingURL)
}

const confirmDetailsMessage = "I want to make sure I have your details right before we continue. " +
	"Could you please confirm your full name, email address, and phone number?"

func availableMessage(item catalogModel.Equipment, dates model.DateRange) string {
	return fmt.Sprintf("Good news! The %s is available %s. It rents for %s per day. Would you like to reserve it?",
		item.Name, describeDates(dates), item.PricePerDay)
}

func unavailableMessage(item catalogModel.Equipment, dates model.DateRange) string {
	return fmt.Sprintf("I'm sorry, the %s is not available %s because it is already reserved. "+
		"Would you like to check different dates?", item.Name, describeDates(dates))
}

func handoffMessage(item catalogModel.Equipment, create *CreateReservation, bookingURL string) string {
	return fmt.Sprintf("Thanks, %s! To finish reserving the %s %s at %s per day, please complete your booking at %s. "+
		"We'll send the confirmation to %s.",
		create.Contact.Name, item.Name, describeDates(create.Dates), item.PricePerDay, bookingURL, create.Contact.Email)
}

func describeDates(dates model.DateRange) string {
	if dates.Start.Equal(dates.End) {
		return "on " + dates.Start.Format(displayDateFormat)
	}

	return fmt.Sprintf("from %s to %s", dates.Start.Format(displayDateFormat), dates.End.Format(displayDateFormat))
}
