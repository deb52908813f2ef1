package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"hauliday/infras/otel"
	"hauliday/internal/domains/reservation/model"
	"hauliday/internal/domains/reservation/repository"
	"hauliday/shared/constant"
	"hauliday/shared/logger"
	"hauliday/shared/metrics"
)

const (
	resultAvailable   = "available"
	resultUnavailable = "unavailable"
	resultError       = "error"

	collaboratorStore = "reservation_store"

	otelAttrEquipmentID = "reservation.equipment_id"
	otelAttrAvailable   = "reservation.available"
)

type Availability interface {
	// IsAvailable reports whether no active reservation overlaps the requested range.
	// Store failures report unavailable.
	IsAvailable(ctx context.Context, equipmentID string, requested model.DateRange) bool
}

type serviceImpl struct {
	repo repository.Reservation
	otel otel.Otel
}

func New(repo repository.Reservation, otel otel.Otel) Availability {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) IsAvailable(ctx context.Context, equipmentID string, requested model.DateRange) (available bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()
	defer func() { scope.SetAttribute(otelAttrAvailable, available) }()

	scope.SetAttribute(otelAttrEquipmentID, equipmentID)

	reservations, err := s.repo.FindActiveByEquipment(ctx, equipmentID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("equipment_id", equipmentID).Msg("failed to load reservations, reporting unavailable")
		metrics.IncAvailabilityCheck(resultError)
		metrics.IncCollaboratorFailure(collaboratorStore)

		return false
	}

	for _, reservation := range reservations {
		if reservation.Status == model.StatusCancelled {
			continue
		}

		period, err := reservation.Period()
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("reservation_id", reservation.ReservationID).Msg("skipping reservation with invalid dates")

			continue
		}

		if period.Overlaps(requested) {
			logger.Ctx(ctx).Debug().Str("reservation_id", reservation.ReservationID).Msg("requested dates overlap an existing reservation")
			metrics.IncAvailabilityCheck(resultUnavailable)

			return false
		}
	}

	metrics.IncAvailabilityCheck(resultAvailable)

	return true
}
