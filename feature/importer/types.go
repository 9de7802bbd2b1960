package importer

import (
	"fmt"

	"list-manager/feature/lists/models"
)

// MergeStrategy is the policy governing how incoming data is reconciled
// with existing data. It is fixed for the whole operation.
type MergeStrategy string

const (
	// MergeReplace discards the entire local state and recreates it from the payload.
	MergeReplace MergeStrategy = "replace"
	// MergeMerge matches incoming entities against existing ones and overwrites
	// matches; entities present only locally are never touched.
	MergeMerge MergeStrategy = "merge"
	// MergeAppend creates every incoming entity with a freshly generated ID.
	MergeAppend MergeStrategy = "append"
)

// ParseStrategy converts a string to a MergeStrategy.
func ParseStrategy(s string) (MergeStrategy, error) {
	switch MergeStrategy(s) {
	case MergeReplace, MergeMerge, MergeAppend:
		return MergeStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown merge strategy: %q", s)
	}
}

// ImportOptions controls a single preview or import call.
type ImportOptions struct {
	// Strategy is the merge strategy to apply.
	Strategy MergeStrategy
	// ValidateData aborts the call before reconciliation when the decoded
	// payload violates structural invariants. When false, invalid entities
	// are skipped individually during traversal instead.
	ValidateData bool
}

// ConflictType classifies a conflict record.
type ConflictType string

const (
	ConflictListModified ConflictType = "list_modified"
	ConflictItemModified ConflictType = "item_modified"
	ConflictListDeleted  ConflictType = "list_deleted"
	ConflictItemDeleted  ConflictType = "item_deleted"
)

// ConflictDetail records that applying the import would change an existing
// entity. Conflicts are informational and never block the import.
type ConflictDetail struct {
	// Type classifies the conflict.
	Type ConflictType `json:"type"`

	// EntityName is the display name of the affected entity.
	EntityName string `json:"entity_name"`

	// EntityID is the ID of the affected entity.
	EntityID string `json:"entity_id"`

	// CurrentValue is the local value that would be overwritten.
	CurrentValue string `json:"current_value"`

	// IncomingValue is the payload value. Absent for deletions.
	IncomingValue *string `json:"incoming_value,omitempty"`

	// Message is a human-readable description of the conflict.
	Message string `json:"message"`
}

// ChangeSet is the in-memory plan produced by reconciliation, before any
// store mutation. Preview and commit share the same change-set shape, so the
// two can never diverge.
type ChangeSet struct {
	// Strategy is the merge strategy the change-set was built under.
	Strategy MergeStrategy

	// DeleteAll requests deletion of every existing entity before the
	// creations are applied. Only set by the replace strategy.
	DeleteAll bool

	// ListsToCreate holds new list rows (items flattened into ItemsToCreate).
	ListsToCreate []models.List

	// ListsToUpdate holds updated list rows, keyed to existing IDs.
	ListsToUpdate []models.List

	// ItemsToCreate holds new item rows with ListID resolved.
	ItemsToCreate []models.Item

	// ItemsToUpdate holds updated item rows, keyed to existing IDs.
	ItemsToUpdate []models.Item

	// ImagesToCreate holds new image rows; Data carries the payload bytes.
	ImagesToCreate []models.ItemImage

	// Conflicts collects informational overwrite records.
	Conflicts []ConflictDetail

	// Errors collects per-entity failures recovered during traversal.
	Errors []string
}

// ImportPreview reports what an import would do, without committing it.
type ImportPreview struct {
	ListsToCreate  int              `json:"lists_to_create"`
	ListsToUpdate  int              `json:"lists_to_update"`
	ItemsToCreate  int              `json:"items_to_create"`
	ItemsToUpdate  int              `json:"items_to_update"`
	ImagesToCreate int              `json:"images_to_create"`
	DeleteAll      bool             `json:"delete_all"`
	Conflicts      []ConflictDetail `json:"conflicts"`
	Errors         []string         `json:"errors"`
}

// TotalChanges is the sum of all create/update counters.
func (p *ImportPreview) TotalChanges() int {
	return p.ListsToCreate + p.ListsToUpdate + p.ItemsToCreate + p.ItemsToUpdate
}

// HasConflicts reports whether any conflict was detected.
func (p *ImportPreview) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// IsValid reports whether the traversal completed without per-entity errors.
func (p *ImportPreview) IsValid() bool {
	return len(p.Errors) == 0
}

// ImportResult reports a committed import.
type ImportResult struct {
	ListsCreated  int              `json:"lists_created"`
	ListsUpdated  int              `json:"lists_updated"`
	ItemsCreated  int              `json:"items_created"`
	ItemsUpdated  int              `json:"items_updated"`
	ImagesCreated int              `json:"images_created"`
	Conflicts     []ConflictDetail `json:"conflicts"`
	Errors        []string         `json:"errors"`
}

// TotalChanges is the sum of all create/update counters.
func (r *ImportResult) TotalChanges() int {
	return r.ListsCreated + r.ListsUpdated + r.ItemsCreated + r.ItemsUpdated
}

// HasConflicts reports whether any conflict was detected.
func (r *ImportResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// WasSuccessful reports whether the traversal completed without per-entity errors.
func (r *ImportResult) WasSuccessful() bool {
	return len(r.Errors) == 0
}

// Preview wraps the change-set counters as an ImportPreview.
func (cs *ChangeSet) Preview() *ImportPreview {
	return &ImportPreview{
		ListsToCreate:  len(cs.ListsToCreate),
		ListsToUpdate:  len(cs.ListsToUpdate),
		ItemsToCreate:  len(cs.ItemsToCreate),
		ItemsToUpdate:  len(cs.ItemsToUpdate),
		ImagesToCreate: len(cs.ImagesToCreate),
		DeleteAll:      cs.DeleteAll,
		Conflicts:      cs.Conflicts,
		Errors:         cs.Errors,
	}
}

// Result wraps the change-set counters as an ImportResult.
func (cs *ChangeSet) Result() *ImportResult {
	return &ImportResult{
		ListsCreated:  len(cs.ListsToCreate),
		ListsUpdated:  len(cs.ListsToUpdate),
		ItemsCreated:  len(cs.ItemsToCreate),
		ItemsUpdated:  len(cs.ItemsToUpdate),
		ImagesCreated: len(cs.ImagesToCreate),
		Conflicts:     cs.Conflicts,
		Errors:        cs.Errors,
	}
}
