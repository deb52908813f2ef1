package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hauliday/infras/llm"
	llmMocks "hauliday/infras/llm/mocks"
	"hauliday/infras/otel/mocks"
	"hauliday/internal/domains/catalog"
	conversationMocks "hauliday/internal/domains/conversation/mocks"
	"hauliday/internal/domains/conversation/model"
	"hauliday/internal/domains/conversation/service"
	"hauliday/shared/timezone"
)

func TestConversation_Reply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := llmMocks.NewMockGenerator(ctrl)
	mockOtel := mocks.NewOtel()
	equipment := catalog.MustLoad()

	svc := service.New(mockGenerator, equipment, nil, mockOtel)

	prior := model.History{
		{Role: model.RoleUser, Content: "What do you rent?"},
		{Role: model.RoleAssistant, Content: "A cotton candy machine and a cargo carrier."},
	}

	tests := []struct {
		name        string
		history     model.History
		setupMock   func()
		wantText    string
		wantFailed  bool
		wantHistLen int
	}{
		{
			name:    "successful reply appends both turns",
			history: prior,
			setupMock: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req llm.Request) (string, error) {
						assert.Contains(t, req.System, "Cotton Candy Machine (id: cotton-candy): $40 per day")
						assert.Contains(t, req.System, "CHECK_AVAILABILITY:<equipment_id>")
						require.Len(t, req.Messages, 3)
						assert.Equal(t, llm.RoleUser, req.Messages[2].Role)
						assert.Equal(t, "How much is the cargo carrier?", req.Messages[2].Content)

						return "It is $30 per day.", nil
					})
			},
			wantText:    "It is $30 per day.",
			wantHistLen: 4,
		},
		{
			name:    "generator failure returns fallback and keeps history",
			history: prior,
			setupMock: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("", errors.New("throttled"))
			},
			wantText:    service.FallbackReply,
			wantFailed:  true,
			wantHistLen: 2,
		},
		{
			name:    "empty response is a failure",
			history: nil,
			setupMock: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("", llm.ErrEmptyResponse)
			},
			wantText:    service.FallbackReply,
			wantFailed:  true,
			wantHistLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			reply, history := svc.Reply(context.Background(), "How much is the cargo carrier?", tt.history)

			assert.Equal(t, tt.wantText, reply.Text)
			assert.Equal(t, tt.wantFailed, reply.Failed)
			assert.Len(t, history, tt.wantHistLen)
		})
	}
}

func TestConversation_Reply_HistoryCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := llmMocks.NewMockGenerator(ctrl)
	svc := service.New(mockGenerator, catalog.MustLoad(), nil, mocks.NewOtel())

	var history model.History
	for range model.HistoryLimit / 2 {
		history = history.Append(
			model.Turn{Role: model.RoleUser, Content: "question"},
			model.Turn{Role: model.RoleAssistant, Content: "answer"},
		)
	}

	mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("latest answer", nil)

	_, updated := svc.Reply(context.Background(), "latest question", history)

	require.Len(t, updated, model.HistoryLimit)
	assert.Equal(t, "latest question", updated[len(updated)-2].Content)
	assert.Equal(t, "latest answer", updated[len(updated)-1].Content)
}

func TestConversation_Reply_Grounding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := llmMocks.NewMockGenerator(ctrl)
	mockGrounding := conversationMocks.NewMockGrounding(ctrl)
	svc := service.New(mockGenerator, catalog.MustLoad(), mockGrounding, mocks.NewOtel())

	mockGrounding.EXPECT().
		Passages(gomock.Any(), "Do you deliver?").
		Return([]string{"Delivery is free within 10 miles."})

	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.Request) (string, error) {
			assert.Contains(t, req.System, "- Delivery is free within 10 miles.")

			return "Yes, free within 10 miles.", nil
		})

	reply, _ := svc.Reply(context.Background(), "Do you deliver?", nil)

	assert.Equal(t, "Yes, free within 10 miles.", reply.Text)
}

func TestConversation_Reply_NormalizesRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := llmMocks.NewMockGenerator(ctrl)
	svc := service.New(mockGenerator, catalog.MustLoad(), nil, mocks.NewOtel())

	history := model.History{
		{Role: model.RoleAssistant, Content: "Welcome to Hauliday."},
		{Role: model.RoleUser, Content: "Hi"},
	}

	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.Request) (string, error) {
			require.Len(t, req.Messages, 1)
			assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
			assert.Equal(t, "Hi\nWhat do you rent?", req.Messages[0].Content)

			return "We rent two items.", nil
		})

	_, _ = svc.Reply(context.Background(), "What do you rent?", history)
}

func TestConversation_Reply_PromptCarriesDeskDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	restore := timezone.SetClock(func() time.Time { return time.Date(2025, 8, 29, 18, 0, 0, 0, time.UTC) })
	defer restore()

	mockGenerator := llmMocks.NewMockGenerator(ctrl)
	svc := service.New(mockGenerator, catalog.MustLoad(), nil, mocks.NewOtel())

	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.Request) (string, error) {
			assert.Contains(t, req.System, "Today is Friday, August 29, 2025 (2025-08-29).")

			return "Sure, which dates?", nil
		})

	reply, _ := svc.Reply(context.Background(), "Is the cargo carrier free this Saturday?", nil)

	assert.False(t, reply.Failed)
}
