package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hauliday/infras/otel/mocks"
	reservationMocks "hauliday/internal/domains/reservation/mocks"
	"hauliday/internal/domains/reservation/model"
	"hauliday/internal/domains/reservation/service"
)

func TestAvailability_IsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	requested, err := model.NewDateRange("2025-08-30", "2025-08-30")
	require.NoError(t, err)

	existing := model.Reservation{
		ReservationID: "r1",
		EquipmentID:   "cotton-candy",
		StartDate:     "2025-08-29",
		EndDate:       "2025-08-31",
		Status:        model.StatusActive,
	}

	tests := []struct {
		name      string
		setupMock func()
		want      bool
	}{
		{
			name: "no reservations",
			setupMock: func() {
				mockRepo.EXPECT().FindActiveByEquipment(gomock.Any(), "cotton-candy").Return(nil, nil)
			},
			want: true,
		},
		{
			name: "overlapping reservation",
			setupMock: func() {
				mockRepo.EXPECT().FindActiveByEquipment(gomock.Any(), "cotton-candy").Return([]model.Reservation{existing}, nil)
			},
			want: false,
		},
		{
			name: "cancelled reservation is ignored",
			setupMock: func() {
				cancelled := existing
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().FindActiveByEquipment(gomock.Any(), "cotton-candy").Return([]model.Reservation{cancelled}, nil)
			},
			want: true,
		},
		{
			name: "malformed records are skipped",
			setupMock: func() {
				mockRepo.EXPECT().FindActiveByEquipment(gomock.Any(), "cotton-candy").Return([]model.Reservation{
					{ReservationID: "bad-date", StartDate: "08/30/2025", EndDate: "2025-08-30", Status: model.StatusActive},
					{ReservationID: "reversed", StartDate: "2025-08-31", EndDate: "2025-08-29", Status: model.StatusActive},
					{ReservationID: "other", StartDate: "2025-09-10", EndDate: "2025-09-12", Status: model.StatusActive},
				}, nil)
			},
			want: true,
		},
		{
			name: "malformed record does not hide a real conflict",
			setupMock: func() {
				mockRepo.EXPECT().FindActiveByEquipment(gomock.Any(), "cotton-candy").Return([]model.Reservation{
					{ReservationID: "bad-date", StartDate: "garbage", EndDate: "garbage", Status: model.StatusActive},
					existing,
				}, nil)
			},
			want: false,
		},
		{
			name: "store error fails closed",
			setupMock: func() {
				mockRepo.EXPECT().FindActiveByEquipment(gomock.Any(), "cotton-candy").Return(nil, errors.New("access denied"))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			assert.Equal(t, tt.want, svc.IsAvailable(context.Background(), "cotton-candy", requested))
		})
	}
}
