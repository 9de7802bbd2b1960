package importer

import (
	"fmt"
	"strings"

	"list-manager/feature/lists/models"
)

// Validate checks the structural invariants of a decoded graph. Every check
// runs; all failures are collected rather than short-circuiting on the first.
// An empty result means the graph is safe to reconcile.
func Validate(data *ExportData) []string {
	var errs []string

	if strings.TrimSpace(data.Version) == "" {
		errs = append(errs, "version must not be empty")
	}
	if data.ExportDate.IsZero() {
		errs = append(errs, "exportDate must be a valid timestamp")
	}

	for li, list := range data.Lists {
		if strings.TrimSpace(list.Name) == "" {
			errs = append(errs, fmt.Sprintf("list %d (%s): name must not be empty", li, list.ID))
		}
		for ii, item := range list.Items {
			if strings.TrimSpace(item.Title) == "" {
				errs = append(errs, fmt.Sprintf("list %d item %d (%s): title must not be empty", li, ii, item.ID))
			}
			if item.Quantity < 1 {
				errs = append(errs, fmt.Sprintf("list %d item %d (%s): quantity must be at least 1, got %d", li, ii, item.ID, item.Quantity))
			}
		}
	}

	return errs
}

// validateList is the lazy per-entity counterpart of Validate, used by the
// traversal when pre-flight validation is disabled.
func validateList(list models.List) error {
	if strings.TrimSpace(list.Name) == "" {
		return fmt.Errorf("name is empty")
	}
	return nil
}

// validateItem is the lazy per-entity counterpart of Validate for items.
func validateItem(item models.Item) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("title is empty")
	}
	if item.Quantity < 1 {
		return fmt.Errorf("quantity %d is below 1", item.Quantity)
	}
	return nil
}
