package directive_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hauliday/config"
	"hauliday/infras/otel/mocks"
	"hauliday/internal/domains/catalog"
	"hauliday/internal/domains/directive"
	reservationMocks "hauliday/internal/domains/reservation/mocks"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.BookingURL = "https://hauliday.com/book"

	return cfg
}

func TestProcessor_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAvailability := reservationMocks.NewMockAvailability(ctrl)
	processor := directive.New(catalog.MustLoad(), mockAvailability, newConfig(), mocks.NewOtel())

	tests := []struct {
		name         string
		text         string
		setupMock    func()
		wantContains []string
		wantExact    string
	}{
		{
			name: "available",
			text: "CHECK_AVAILABILITY:cotton-candy,2025-08-30,2025-08-30",
			setupMock: func() {
				mockAvailability.EXPECT().IsAvailable(gomock.Any(), "cotton-candy", gomock.Any()).Return(true)
			},
			wantContains: []string{"Cotton Candy Machine", "is available on August 30, 2025", "$40 per day"},
		},
		{
			name: "unavailable",
			text: "Sure, one moment. CHECK_AVAILABILITY:cargo-carrier,2025-09-01,2025-09-03",
			setupMock: func() {
				mockAvailability.EXPECT().IsAvailable(gomock.Any(), "cargo-carrier", gomock.Any()).Return(false)
			},
			wantContains: []string{"Rooftop Cargo Carrier", "not available from September 1, 2025 to September 3, 2025"},
		},
		{
			name:      "unknown equipment keeps the reply",
			text:      "CHECK_AVAILABILITY:bounce-house,2025-08-30,2025-08-30",
			setupMock: func() {},
			wantExact: "CHECK_AVAILABILITY:bounce-house,2025-08-30,2025-08-30",
		},
		{
			name:      "no directive keeps the reply",
			text:      "We rent a cotton candy machine and a rooftop cargo carrier.",
			setupMock: func() {},
			wantExact: "We rent a cotton candy machine and a rooftop cargo carrier.",
		},
		{
			name:      "create hands off to the booking site",
			text:      "CREATE_RESERVATION:cargo-carrier,2025-09-01,2025-09-03,Jane Doe,jane@example.com,555-123-4567",
			setupMock: func() {},
			wantContains: []string{
				"Thanks, Jane Doe!", "Rooftop Cargo Carrier", "https://hauliday.com/book", "jane@example.com",
			},
		},
		{
			name:         "create with bad email asks to confirm",
			text:         "CREATE_RESERVATION:cargo-carrier,2025-09-01,2025-09-03,Jane Doe,jane-at-example,555-123-4567",
			setupMock:    func() {},
			wantContains: []string{"confirm your full name, email address, and phone number"},
		},
		{
			name: "create applied after check wins",
			text: "CHECK_AVAILABILITY:cotton-candy,2025-08-30,2025-08-30\n" +
				"CREATE_RESERVATION:cotton-candy,2025-08-30,2025-08-30,Jane Doe,jane@example.com,5551234567",
			setupMock: func() {
				mockAvailability.EXPECT().IsAvailable(gomock.Any(), "cotton-candy", gomock.Any()).Return(true)
			},
			wantContains: []string{"Thanks, Jane Doe!", "on August 30, 2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got := processor.Process(context.Background(), tt.text)

			if tt.wantExact != "" {
				assert.Equal(t, tt.wantExact, got)
			}

			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}
