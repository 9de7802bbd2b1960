package lists

import (
	"context"
	"time"

	"list-manager/feature/lists/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles list operations.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new lists service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetLists returns every list with items and image metadata.
func (s *Service) GetLists(ctx context.Context) ([]models.List, error) {
	return s.store.FindAllLists(ctx)
}

// GetList returns a single list by ID.
func (s *Service) GetList(ctx context.Context, id string) (*models.List, error) {
	return s.store.FindList(ctx, id)
}

// CreateList creates a new empty list with a generated ID.
func (s *Service) CreateList(ctx context.Context, name string, orderNumber int) (*models.List, error) {
	now := time.Now().UTC()
	list := models.List{
		ID:          uuid.NewString(),
		Name:        name,
		OrderNumber: orderNumber,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if err := s.store.CreateList(ctx, &list); err != nil {
		return nil, err
	}
	s.logger.Info("Created list", zap.String("list_id", list.ID), zap.String("name", name))
	return &list, nil
}

// DeleteAllLists removes every list, item, and image row.
func (s *Service) DeleteAllLists(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return err
	}
	s.logger.Warn("Deleted all lists")
	return nil
}

// Store exposes the underlying store for other features (e.g. the importer).
func (s *Service) Store() Store {
	return s.store
}
