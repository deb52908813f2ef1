package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"hauliday/infras/opensearch"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	VectorField     = "bedrock-knowledge-base-v3-vector"
	VectorDimension = 1024

	// IndexSettleDelay is how long to wait after deleting an index before recreating it.
	IndexSettleDelay = 5 * time.Second
)

// IndexMapping is the vector index layout a Bedrock knowledge base writes into.
func IndexMapping() map[string]any {
	keywordSubfield := map[string]any{
		"type": "text",
		"fields": map[string]any{
			"keyword": map[string]any{"type": "keyword", "ignore_above": 256},
		},
	}

	return map[string]any{
		"settings": map[string]any{
			"index": map[string]any{
				"number_of_shards":          2,
				"number_of_replicas":        0,
				"knn":                       true,
				"knn.algo_param.ef_search": 512,
			},
		},
		"mappings": map[string]any{
			"dynamic_templates": []any{
				map[string]any{
					"strings_as_keyword": map[string]any{
						"match_mapping_type": "string",
						"mapping":            map[string]any{"type": "keyword"},
					},
				},
			},
			"properties": map[string]any{
				"AMAZON_BEDROCK_METADATA":   map[string]any{"type": "text", "index": false},
				"AMAZON_BEDROCK_TEXT":       map[string]any{"type": "text", "analyzer": "standard"},
				"AMAZON_BEDROCK_TEXT_CHUNK": map[string]any{"type": "text", "analyzer": "standard"},
				VectorField: map[string]any{
					"type":      "knn_vector",
					"dimension": VectorDimension,
					"method": map[string]any{
						"name":       "hnsw",
						"space_type": "l2",
						"engine":     "faiss",
						"parameters": map[string]any{"ef_construction": 512, "m": 16},
					},
				},
				"id":                              keywordSubfield,
				"x-amz-bedrock-kb-data-source-id": keywordSubfield,
				"x-amz-bedrock-kb-source-uri":     keywordSubfield,
			},
		},
	}
}

// RecreateIndex drops the index if present, waits settle, and creates it with IndexMapping.
func RecreateIndex(ctx context.Context, search opensearch.OpenSearch, index string, settle time.Duration) (json.RawMessage, error) {
	exists, err := search.IndexExists(ctx, index)
	if err != nil {
		return nil, fmt.Errorf("failed to check index %s: %w", index, err)
	}

	if exists {
		log.Info().Str("index", index).Msg("index already exists, deleting")

		if err := search.DeleteIndex(ctx, index); err != nil {
			return nil, fmt.Errorf("failed to delete index %s: %w", index, err)
		}

		if err := sleep(ctx, settle); err != nil {
			return nil, err
		}
	}

	log.Info().Str("index", index).Msg("creating index")

	res, err := search.CreateIndex(ctx, index, IndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index %s: %w", index, err)
	}

	return res, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
