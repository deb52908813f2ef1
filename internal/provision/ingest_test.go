package provision_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hauliday/infras/bedrock"
	"hauliday/infras/bedrock/mocks"
	"hauliday/internal/provision"
)

func TestIngest(t *testing.T) {
	started := bedrock.IngestionJob{ID: "job-1", Status: bedrock.IngestionStatusStarting}

	tests := []struct {
		name    string
		setup   func(m *mocks.MockIngestion)
		timeout time.Duration
		want    string
		wantErr error
	}{
		{
			name: "polls until complete",
			setup: func(m *mocks.MockIngestion) {
				gomock.InOrder(
					m.EXPECT().GetIngestionJob(gomock.Any(), "KB1", "DS1", "job-1").
						Return(bedrock.IngestionJob{ID: "job-1", Status: bedrock.IngestionStatusInProgress}, nil),
					m.EXPECT().GetIngestionJob(gomock.Any(), "KB1", "DS1", "job-1").
						Return(bedrock.IngestionJob{ID: "job-1", Status: bedrock.IngestionStatusComplete, Indexed: 3}, nil),
				)
			},
			timeout: time.Minute,
			want:    bedrock.IngestionStatusComplete,
		},
		{
			name: "failed job reports reasons",
			setup: func(m *mocks.MockIngestion) {
				m.EXPECT().GetIngestionJob(gomock.Any(), "KB1", "DS1", "job-1").
					Return(bedrock.IngestionJob{
						ID:             "job-1",
						Status:         bedrock.IngestionStatusFailed,
						FailureReasons: []string{"access denied to bucket"},
					}, nil)
			},
			timeout: time.Minute,
			want:    bedrock.IngestionStatusFailed,
			wantErr: provision.ErrIngestionFailed,
		},
		{
			name: "gives up after the timeout",
			setup: func(m *mocks.MockIngestion) {
				m.EXPECT().GetIngestionJob(gomock.Any(), "KB1", "DS1", "job-1").
					Return(bedrock.IngestionJob{ID: "job-1", Status: bedrock.IngestionStatusInProgress}, nil).
					AnyTimes()
			},
			timeout: 30 * time.Millisecond,
			want:    bedrock.IngestionStatusInProgress,
			wantErr: provision.ErrIngestionTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ingestion := mocks.NewMockIngestion(ctrl)

			ingestion.EXPECT().StartIngestionJob(gomock.Any(), "KB1", "DS1").Return(started, nil)
			tt.setup(ingestion)

			job, err := provision.Ingest(context.Background(), ingestion, provision.IngestOptions{
				KnowledgeBaseID: "KB1",
				DataSourceID:    "DS1",
				Timeout:         tt.timeout,
				Interval:        5 * time.Millisecond,
			})

			assert.Equal(t, tt.want, job.Status)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestIngest_StartFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingestion := mocks.NewMockIngestion(ctrl)

	ingestion.EXPECT().StartIngestionJob(gomock.Any(), "KB1", "DS1").
		Return(bedrock.IngestionJob{}, errors.New("validation error"))

	_, err := provision.Ingest(context.Background(), ingestion, provision.IngestOptions{
		KnowledgeBaseID: "KB1",
		DataSourceID:    "DS1",
	})

	assert.EqualError(t, err, "validation error")
}
