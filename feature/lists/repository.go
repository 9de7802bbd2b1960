package lists

import (
	"context"
	"fmt"

	"list-manager/feature/lists/models"

	"gorm.io/gorm"
)

// Store is the narrow persistence interface the importer reconciles against.
// It deliberately exposes only find/create/update/delete operations; callers
// never see the underlying database.
type Store interface {
	// FindAllLists returns every list with its items and image metadata.
	FindAllLists(ctx context.Context) ([]models.List, error)
	// FindList returns a single list by ID, or gorm.ErrRecordNotFound.
	FindList(ctx context.Context, id string) (*models.List, error)
	// CreateList inserts a list row. Nested items are not written.
	CreateList(ctx context.Context, list *models.List) error
	// UpdateList updates the mutable fields of a list row.
	UpdateList(ctx context.Context, list *models.List) error
	// CreateItem inserts an item row. Nested images are not written.
	CreateItem(ctx context.Context, item *models.Item) error
	// UpdateItem updates the mutable fields of an item row.
	UpdateItem(ctx context.Context, item *models.Item) error
	// CreateImage inserts an image metadata row.
	CreateImage(ctx context.Context, image *models.ItemImage) error
	// DeleteAll removes every list, item, and image row.
	DeleteAll(ctx context.Context) error
	// Transaction runs fn against a transactional view of the store.
	// fn returning an error rolls back every write made through it.
	Transaction(ctx context.Context, fn func(Store) error) error
}

// GormStore implements Store on top of GORM.
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a new GORM-backed store.
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the lists schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.List{}, &models.Item{}, &models.ItemImage{}); err != nil {
		return fmt.Errorf("failed to migrate lists schema: %w", err)
	}
	return nil
}

func (s *GormStore) FindAllLists(ctx context.Context) ([]models.List, error) {
	var out []models.List
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Images").
		Order("order_number, id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}
	return out, nil
}

func (s *GormStore) FindList(ctx context.Context, id string) (*models.List, error) {
	var list models.List
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Images").
		First(&list, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *GormStore) CreateList(ctx context.Context, list *models.List) error {
	// Nested items are written by their own CreateItem calls.
	row := *list
	row.Items = nil
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create list %s: %w", list.ID, err)
	}
	return nil
}

func (s *GormStore) UpdateList(ctx context.Context, list *models.List) error {
	err := s.db.WithContext(ctx).Model(&models.List{}).
		Where("id = ?", list.ID).
		Updates(map[string]any{
			"name":         list.Name,
			"order_number": list.OrderNumber,
			"is_archived":  list.IsArchived,
			"modified_at":  list.ModifiedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update list %s: %w", list.ID, err)
	}
	return nil
}

func (s *GormStore) CreateItem(ctx context.Context, item *models.Item) error {
	row := *item
	row.Images = nil
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create item %s: %w", item.ID, err)
	}
	return nil
}

func (s *GormStore) UpdateItem(ctx context.Context, item *models.Item) error {
	err := s.db.WithContext(ctx).Model(&models.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"title":          item.Title,
			"description":    item.Description,
			"quantity":       item.Quantity,
			"order_number":   item.OrderNumber,
			"is_crossed_out": item.IsCrossedOut,
			"modified_at":    item.ModifiedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", item.ID, err)
	}
	return nil
}

func (s *GormStore) CreateImage(ctx context.Context, image *models.ItemImage) error {
	if err := s.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image %s: %w", image.ID, err)
	}
	return nil
}

func (s *GormStore) DeleteAll(ctx context.Context) error {
	// Children first to keep foreign keys satisfied.
	db := s.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&models.ItemImage{}).Error; err != nil {
		return fmt.Errorf("failed to delete images: %w", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Item{}).Error; err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	if err := db.Where("1 = 1").Delete(&models.List{}).Error; err != nil {
		return fmt.Errorf("failed to delete lists: %w", err)
	}
	return nil
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
