package importer

import (
	"bytes"
	"context"
	"io"
	"time"

	"list-manager/core/storage"
	"list-manager/feature/lists"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// textImportListName is the list created for free-text imports, which carry
// no list structure of their own.
const textImportListName = "Imported Items"

// Service orchestrates the import pipeline: detect, parse or decode,
// validate, reconcile, and (for Import) commit.
//
// A Service holds no per-call state; each call takes its own snapshot and
// owns its own change-set. Running two commits concurrently against the same
// store is the caller's mistake to prevent.
type Service struct {
	store       lists.Store
	client      storage.Client
	bucket      string
	logger      *zap.Logger
	coordinator *Coordinator
}

// NewService creates a new importer service.
func NewService(store lists.Store, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		client:      client,
		bucket:      bucket,
		logger:      logger,
		coordinator: NewCoordinator(store, client, bucket, logger),
	}
}

// Preview runs the reconciliation traversal and reports what an import would
// do. Nothing is written. report may be nil.
func (s *Service) Preview(ctx context.Context, raw []byte, opts ImportOptions, report ProgressFunc) (*ImportPreview, error) {
	cs, err := s.buildChangeSet(ctx, raw, opts, report)
	if err != nil {
		return nil, err
	}
	return cs.Preview(), nil
}

// Import runs the same traversal as Preview and then commits the resulting
// change-set. report may be nil.
func (s *Service) Import(ctx context.Context, raw []byte, opts ImportOptions, report ProgressFunc) (*ImportResult, error) {
	cs, err := s.buildChangeSet(ctx, raw, opts, report)
	if err != nil {
		return nil, err
	}

	if err := s.coordinator.Commit(ctx, cs); err != nil {
		return nil, err
	}

	result := cs.Result()
	s.logger.Info("Import committed",
		zap.String("strategy", string(opts.Strategy)),
		zap.Int("lists_created", result.ListsCreated),
		zap.Int("lists_updated", result.ListsUpdated),
		zap.Int("items_created", result.ItemsCreated),
		zap.Int("items_updated", result.ItemsUpdated),
		zap.Int("conflicts", len(result.Conflicts)),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

// Export encodes the current store contents as an ExportData graph, loading
// image payloads from object storage.
func (s *Service) Export(ctx context.Context) (*ExportData, error) {
	snapshot, err := s.store.FindAllLists(ctx)
	if err != nil {
		return nil, wrapError(KindRepositoryError, err, "failed to load store snapshot")
	}

	for li := range snapshot {
		for ii := range snapshot[li].Items {
			images := snapshot[li].Items[ii].Images
			for gi := range images {
				data, err := s.loadPayload(ctx, images[gi].ObjectKey())
				if err != nil {
					// Export stays usable when a payload is missing; the
					// image is emitted without bytes.
					s.logger.Warn("Failed to load image payload",
						zap.String("image_id", images[gi].ID), zap.Error(err))
					continue
				}
				images[gi].Data = data
			}
		}
	}

	return FromModels(snapshot, time.Now().UTC()), nil
}

// buildChangeSet is the shared first half of Preview and Import.
func (s *Service) buildChangeSet(ctx context.Context, raw []byte, opts ImportOptions, report ProgressFunc) (*ChangeSet, error) {
	if _, err := ParseStrategy(string(opts.Strategy)); err != nil {
		return nil, wrapError(KindInvalidData, err, "invalid import options")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, newError(KindInvalidData, "raw input is empty")
	}

	var data *ExportData
	switch DetectFormat(raw) {
	case FormatStructured:
		decoded, err := Decode(raw)
		if err != nil {
			return nil, err
		}
		data = decoded
	case FormatFreeText:
		data = textToExport(string(raw), time.Now().UTC())
		if len(data.Lists[0].Items) == 0 {
			return nil, newError(KindInvalidData, "no importable items found in text input")
		}
	}

	if opts.ValidateData {
		if errs := Validate(data); len(errs) > 0 {
			return nil, newError(KindValidationFailed, "%d validation error(s): %s", len(errs), errs[0])
		}
	}

	snapshot, err := s.store.FindAllLists(ctx)
	if err != nil {
		return nil, wrapError(KindRepositoryError, err, "failed to load store snapshot")
	}

	return BuildChangeSet(ctx, snapshot, data.ToModels(), opts, report)
}

// textToExport wraps parsed free-text lines into a single-list graph so the
// rest of the pipeline is format-agnostic.
func textToExport(raw string, now time.Time) *ExportData {
	parsed := ParseText(raw)

	list := ExportList{
		ID:         uuid.NewString(),
		Name:       textImportListName,
		CreatedAt:  now,
		ModifiedAt: now,
		Items:      make([]ExportItem, 0, len(parsed)),
	}
	for i, line := range parsed {
		list.Items = append(list.Items, ExportItem{
			ID:           uuid.NewString(),
			Title:        line.Title,
			Quantity:     line.Quantity,
			OrderNumber:  i,
			IsCrossedOut: line.IsCrossedOut,
			CreatedAt:    now,
			ModifiedAt:   now,
		})
	}

	return &ExportData{
		Version:    SchemaVersion,
		ExportDate: now,
		Lists:      []ExportList{list},
	}
}

// loadPayload reads one image payload from object storage.
func (s *Service) loadPayload(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
