package provision_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hauliday/internal/provision"
)

type fakeSearch struct {
	exists    bool
	existsErr error
	calls     []string
	body      any
}

func (f *fakeSearch) IndexExists(_ context.Context, _ string) (bool, error) {
	f.calls = append(f.calls, "exists")

	return f.exists, f.existsErr
}

func (f *fakeSearch) DeleteIndex(_ context.Context, _ string) error {
	f.calls = append(f.calls, "delete")

	return nil
}

func (f *fakeSearch) CreateIndex(_ context.Context, _ string, body any) (json.RawMessage, error) {
	f.calls = append(f.calls, "create")
	f.body = body

	return json.RawMessage(`{"acknowledged":true}`), nil
}

func TestRecreateIndex(t *testing.T) {
	tests := []struct {
		name      string
		search    *fakeSearch
		wantCalls []string
		wantErr   bool
	}{
		{
			name:      "creates a new index",
			search:    &fakeSearch{},
			wantCalls: []string{"exists", "create"},
		},
		{
			name:      "replaces an existing index",
			search:    &fakeSearch{exists: true},
			wantCalls: []string{"exists", "delete", "create"},
		},
		{
			name:      "stops when the existence check fails",
			search:    &fakeSearch{existsErr: errors.New("403")},
			wantCalls: []string{"exists"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := provision.RecreateIndex(context.Background(), tt.search, "kb-index", 0)

			assert.Equal(t, tt.wantCalls, tt.search.calls)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, `{"acknowledged":true}`, string(res))
			assert.NotNil(t, tt.search.body)
		})
	}
}

func TestIndexMapping(t *testing.T) {
	data, err := json.Marshal(provision.IndexMapping())
	require.NoError(t, err)

	var mapping struct {
		Settings struct {
			Index map[string]any `json:"index"`
		} `json:"settings"`
		Mappings struct {
			Properties map[string]struct {
				Type      string `json:"type"`
				Dimension int    `json:"dimension"`
				Method    struct {
					Name       string         `json:"name"`
					Engine     string         `json:"engine"`
					SpaceType  string         `json:"space_type"`
					Parameters map[string]int `json:"parameters"`
				} `json:"method"`
			} `json:"properties"`
		} `json:"mappings"`
	}

	require.NoError(t, json.Unmarshal(data, &mapping))

	assert.Equal(t, true, mapping.Settings.Index["knn"])
	assert.InDelta(t, 2, mapping.Settings.Index["number_of_shards"], 0)
	assert.InDelta(t, 512, mapping.Settings.Index["knn.algo_param.ef_search"], 0)

	vector := mapping.Mappings.Properties[provision.VectorField]
	assert.Equal(t, "knn_vector", vector.Type)
	assert.Equal(t, 1024, vector.Dimension)
	assert.Equal(t, "hnsw", vector.Method.Name)
	assert.Equal(t, "faiss", vector.Method.Engine)
	assert.Equal(t, "l2", vector.Method.SpaceType)
	assert.Equal(t, map[string]int{"ef_construction": 512, "m": 16}, vector.Method.Parameters)

	for _, field := range []string{"id", "x-amz-bedrock-kb-source-uri", "AMAZON_BEDROCK_TEXT_CHUNK"} {
		assert.Equal(t, "text", mapping.Mappings.Properties[field].Type, field)
	}
}
