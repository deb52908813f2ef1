package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hauliday/config"
	"hauliday/infras/bedrock"
	bedrockMocks "hauliday/infras/bedrock/mocks"
	"hauliday/infras/otel/mocks"
	"hauliday/internal/domains/knowledge/service"
)

func newConfig(knowledgeBaseID string) *config.Config {
	cfg := &config.Config{}
	cfg.Bedrock.KnowledgeBaseID = knowledgeBaseID
	cfg.Bedrock.RetrievalResults = 3

	return cfg
}

func TestKnowledge_Answer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBedrock := bedrockMocks.NewMockBedrock(ctrl)
	svc := service.New(mockBedrock, newConfig("KB123"), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		want      string
		wantErr   bool
	}{
		{
			name: "answer",
			setupMock: func() {
				mockBedrock.EXPECT().RetrieveAndGenerate(gomock.Any(), "What is the deposit?").Return("There is no deposit.", nil)
			},
			want: "There is no deposit.",
		},
		{
			name: "error",
			setupMock: func() {
				mockBedrock.EXPECT().RetrieveAndGenerate(gomock.Any(), "What is the deposit?").Return("", errors.New("throttled"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.Answer(context.Background(), "What is the deposit?")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKnowledge_Passages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBedrock := bedrockMocks.NewMockBedrock(ctrl)
	svc := service.New(mockBedrock, newConfig("KB123"), mocks.NewOtel())

	mockBedrock.EXPECT().
		Retrieve(gomock.Any(), "delivery", int32(3)).
		Return([]bedrock.Passage{{Text: "Free delivery within 10 miles."}}, nil)

	assert.Equal(t, []string{"Free delivery within 10 miles."}, svc.Passages(context.Background(), "delivery"))

	mockBedrock.EXPECT().
		Retrieve(gomock.Any(), "delivery", int32(3)).
		Return(nil, errors.New("throttled"))

	assert.Empty(t, svc.Passages(context.Background(), "delivery"))
}

func TestKnowledge_Passages_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(bedrockMocks.NewMockBedrock(ctrl), newConfig(""), mocks.NewOtel())

	assert.Nil(t, svc.Passages(context.Background(), "delivery"))
}
