package importer

import (
	"bytes"
	"context"

	"list-manager/core/storage"
	"list-manager/feature/lists"
	"list-manager/feature/lists/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Coordinator applies a previously computed change-set to the store as one
// atomic unit. It never decides anything: every create/update/delete it
// performs was planned by the traversal.
type Coordinator struct {
	store  lists.Store
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewCoordinator creates a commit coordinator.
func NewCoordinator(store lists.Store, client storage.Client, bucket string, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		store:  store,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Commit applies the change-set. All row writes run inside one store
// transaction in a fixed order: deletions first (replace only), then list
// creations, item creations, image creations, then updates. Any failure
// rolls the rows back and surfaces as KindRepositoryError.
//
// Image payload uploads run inside the transaction scope as well, so an
// upload failure aborts the row writes. Object deletions for replace cannot
// be rolled back and therefore run only after the transaction commits.
func (c *Coordinator) Commit(ctx context.Context, cs *ChangeSet) error {
	err := c.store.Transaction(ctx, func(tx lists.Store) error {
		if cs.DeleteAll {
			if err := tx.DeleteAll(ctx); err != nil {
				return err
			}
		}

		for i := range cs.ListsToCreate {
			if err := tx.CreateList(ctx, &cs.ListsToCreate[i]); err != nil {
				return err
			}
		}
		for i := range cs.ItemsToCreate {
			if err := tx.CreateItem(ctx, &cs.ItemsToCreate[i]); err != nil {
				return err
			}
		}
		for i := range cs.ImagesToCreate {
			img := &cs.ImagesToCreate[i]
			if err := tx.CreateImage(ctx, img); err != nil {
				return err
			}
			if err := c.putPayload(ctx, img); err != nil {
				return err
			}
		}
		for i := range cs.ListsToUpdate {
			if err := tx.UpdateList(ctx, &cs.ListsToUpdate[i]); err != nil {
				return err
			}
		}
		for i := range cs.ItemsToUpdate {
			if err := tx.UpdateItem(ctx, &cs.ItemsToUpdate[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapError(KindRepositoryError, err, "failed to apply change-set")
	}

	if cs.DeleteAll {
		c.purgePayloads(ctx, cs)
	}

	return nil
}

// putPayload uploads one image payload. Images without payload bytes are
// metadata-only and skipped.
func (c *Coordinator) putPayload(ctx context.Context, img *models.ItemImage) error {
	if len(img.Data) == 0 {
		return nil
	}
	_, err := c.client.PutObject(ctx, c.bucket, img.ObjectKey(),
		bytes.NewReader(img.Data), int64(len(img.Data)), minio.PutObjectOptions{
			ContentType: "application/octet-stream",
		})
	return err
}

// purgePayloads removes stale image objects after a replace commit. The rows
// are already gone; a failed object removal only leaks storage, so it is
// logged and not surfaced.
func (c *Coordinator) purgePayloads(ctx context.Context, cs *ChangeSet) {
	kept := make(map[string]struct{}, len(cs.ImagesToCreate))
	for _, img := range cs.ImagesToCreate {
		kept[img.ObjectKey()] = struct{}{}
	}

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		listed := c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
			Prefix:    models.ImageObjectPrefix,
			Recursive: true,
		})
		for obj := range listed {
			if obj.Err != nil {
				c.logger.Warn("Failed to list image objects", zap.Error(obj.Err))
				continue
			}
			if _, ok := kept[obj.Key]; ok {
				continue
			}
			objectsCh <- obj
		}
	}()

	for rmErr := range c.client.RemoveObjects(ctx, c.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		c.logger.Warn("Failed to remove stale image object",
			zap.String("object", rmErr.ObjectName), zap.Error(rmErr.Err))
	}
}
