package provision

import (
	"context"
	"fmt"
	"hauliday/infras/s3"
	"hauliday/internal/domains/catalog"
	"hauliday/shared/constant"
	"path"

	"github.com/rs/zerolog/log"
)

const (
	catalogDirectory = "catalog"
	catalogFileName  = "equipment.md"
)

type CatalogSync struct {
	URI    string
	Pruned []string
}

// SyncCatalog uploads the catalog as a knowledge base document under prefix. With prune set,
// any other object in the catalog directory is removed so stale documents stop being indexed.
func SyncCatalog(ctx context.Context, storage s3.S3, catalog *catalog.Catalog, bucket, prefix string, prune bool) (CatalogSync, error) {
	directory := path.Join(prefix, catalogDirectory)

	uri, err := storage.UploadFileBytes(ctx, bucket, directory, catalogFileName, constant.ContentTypeMarkdown, []byte(catalog.Markdown()))
	if err != nil {
		return CatalogSync{}, fmt.Errorf("failed to upload catalog: %w", err)
	}

	res := CatalogSync{URI: uri}

	if !prune {
		return res, nil
	}

	keys, err := storage.ListKeys(ctx, bucket, directory+"/")
	if err != nil {
		return res, fmt.Errorf("failed to list catalog documents: %w", err)
	}

	current := path.Join(directory, catalogFileName)

	for _, key := range keys {
		if key == current {
			continue
		}

		if err := storage.DeleteFile(ctx, bucket, path.Dir(key), path.Base(key)); err != nil {
			return res, fmt.Errorf("failed to prune %s: %w", key, err)
		}

		log.Info().Str("key", key).Msg("pruned stale catalog document")

		res.Pruned = append(res.Pruned, key)
	}

	return res, nil
}
