package importer

import (
	"context"
	"fmt"
	"strings"

	"list-manager/feature/lists/models"

	"github.com/google/uuid"
)

// BuildChangeSet runs the reconciliation traversal: it diffs the incoming
// graph against the existing snapshot under the given strategy and returns
// the resulting change-set. Nothing is written; preview and commit both call
// this exact function.
//
// The snapshot is read-only for the duration of the call. Cancellation is
// checked between top-level list iterations; a cancelled call returns the
// context error and no change-set.
func BuildChangeSet(ctx context.Context, existing []models.List, incoming []models.List, opts ImportOptions, report ProgressFunc) (*ChangeSet, error) {
	cs := &ChangeSet{Strategy: opts.Strategy}

	progress := Progress{TotalLists: len(incoming)}
	for _, l := range incoming {
		progress.TotalItems += len(l.Items)
	}
	emit := func() {
		if report != nil {
			report(progress)
		}
	}

	// Matching indices, only needed for merge. First exact-id match wins;
	// name matches fall back to the first same-named list in snapshot order.
	var listsByID map[string]*models.List
	var listsByName map[string]*models.List
	if opts.Strategy == MergeMerge {
		listsByID = make(map[string]*models.List, len(existing))
		listsByName = make(map[string]*models.List, len(existing))
		for i := range existing {
			l := &existing[i]
			listsByID[l.ID] = l
			key := normalizeName(l.Name)
			if _, taken := listsByName[key]; !taken {
				listsByName[key] = l
			}
		}
	}

	if opts.Strategy == MergeReplace {
		cs.DeleteAll = true
	}

	for li := range incoming {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		list := incoming[li]
		progress.CurrentOperation = fmt.Sprintf("Processing list %d of %d", li+1, len(incoming))

		if err := validateList(list); err != nil {
			cs.Errors = append(cs.Errors, fmt.Sprintf("skipped list %q: %v", list.Name, err))
			// Skipped entities still count as processed so progress completes.
			progress.ProcessedItems += len(list.Items)
			progress.ProcessedLists++
			emit()
			continue
		}

		switch opts.Strategy {
		case MergeReplace:
			ingestCreate(cs, list, false, &progress, emit)
		case MergeAppend:
			ingestCreate(cs, list, true, &progress, emit)
		case MergeMerge:
			mergeList(cs, list, listsByID, listsByName, &progress, emit)
		}

		progress.ProcessedLists++
		emit()
	}

	if len(incoming) == 0 {
		progress.CurrentOperation = "Nothing to process"
		emit()
	}

	return cs, nil
}

// ingestCreate plans creation of a whole list subtree. With fresh set, every
// entity gets a newly generated ID (append strategy); otherwise incoming IDs
// are kept.
func ingestCreate(cs *ChangeSet, list models.List, fresh bool, progress *Progress, emit func()) {
	listID := list.ID
	if fresh {
		listID = uuid.NewString()
	}

	row := list
	row.ID = listID
	row.Items = nil
	cs.ListsToCreate = append(cs.ListsToCreate, row)

	for _, item := range list.Items {
		if err := validateItem(item); err != nil {
			cs.Errors = append(cs.Errors, fmt.Sprintf("skipped item %q in list %q: %v", item.Title, list.Name, err))
			progress.ProcessedItems++
			emit()
			continue
		}

		itemID := item.ID
		if fresh {
			itemID = uuid.NewString()
		}

		itemRow := item
		itemRow.ID = itemID
		itemRow.ListID = listID
		itemRow.Images = nil
		cs.ItemsToCreate = append(cs.ItemsToCreate, itemRow)

		planImages(cs, item.Images, itemID, fresh)

		progress.ProcessedItems++
		emit()
	}
}

// mergeList reconciles one incoming list against the snapshot indices.
func mergeList(cs *ChangeSet, list models.List, byID, byName map[string]*models.List, progress *Progress, emit func()) {
	target := byID[list.ID]
	if target == nil {
		target = byName[normalizeName(list.Name)]
	}
	if target == nil {
		// No match anywhere: plan the whole subtree as creations.
		ingestCreate(cs, list, false, progress, emit)
		return
	}

	// A match is always an update entry, conflicting only when fields differ.
	row := list
	row.ID = target.ID
	row.Items = nil
	cs.ListsToUpdate = append(cs.ListsToUpdate, row)

	if diffs := diffList(*target, list); len(diffs) > 0 {
		incoming := list.Name
		cs.Conflicts = append(cs.Conflicts, ConflictDetail{
			Type:          ConflictListModified,
			EntityName:    target.Name,
			EntityID:      target.ID,
			CurrentValue:  target.Name,
			IncomingValue: &incoming,
			Message:       fmt.Sprintf("list %q would be modified: %s", target.Name, strings.Join(diffs, "; ")),
		})
	}

	itemsByID := make(map[string]*models.Item, len(target.Items))
	for i := range target.Items {
		itemsByID[target.Items[i].ID] = &target.Items[i]
	}

	for _, item := range list.Items {
		if err := validateItem(item); err != nil {
			cs.Errors = append(cs.Errors, fmt.Sprintf("skipped item %q in list %q: %v", item.Title, list.Name, err))
			progress.ProcessedItems++
			emit()
			continue
		}

		// Items match by ID only; names are too ambiguous within a list.
		if current, ok := itemsByID[item.ID]; ok {
			row := item
			row.ListID = target.ID
			row.Images = nil
			cs.ItemsToUpdate = append(cs.ItemsToUpdate, row)

			if diffs := diffItem(*current, item); len(diffs) > 0 {
				incoming := item.Title
				cs.Conflicts = append(cs.Conflicts, ConflictDetail{
					Type:          ConflictItemModified,
					EntityName:    current.Title,
					EntityID:      current.ID,
					CurrentValue:  current.Title,
					IncomingValue: &incoming,
					Message:       fmt.Sprintf("item %q would be modified: %s", current.Title, strings.Join(diffs, "; ")),
				})
			}
		} else {
			row := item
			row.ListID = target.ID
			row.Images = nil
			cs.ItemsToCreate = append(cs.ItemsToCreate, row)

			planImages(cs, item.Images, item.ID, false)
		}

		progress.ProcessedItems++
		emit()
	}
}

// planImages queues image creations for a created item.
func planImages(cs *ChangeSet, images []models.ItemImage, itemID string, fresh bool) {
	for _, img := range images {
		row := img
		if fresh {
			row.ID = uuid.NewString()
		}
		row.ItemID = itemID
		cs.ImagesToCreate = append(cs.ImagesToCreate, row)
	}
}

// normalizeName is the case-insensitive trimmed form used for name matching.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// diffList lists the mutable list fields whose values differ.
func diffList(current, incoming models.List) []string {
	var diffs []string
	if current.Name != incoming.Name {
		diffs = append(diffs, fmt.Sprintf("name: current=%q incoming=%q", current.Name, incoming.Name))
	}
	if current.OrderNumber != incoming.OrderNumber {
		diffs = append(diffs, fmt.Sprintf("order_number: current=%d incoming=%d", current.OrderNumber, incoming.OrderNumber))
	}
	if current.IsArchived != incoming.IsArchived {
		diffs = append(diffs, fmt.Sprintf("is_archived: current=%t incoming=%t", current.IsArchived, incoming.IsArchived))
	}
	return diffs
}

// diffItem lists the mutable item fields whose values differ.
func diffItem(current, incoming models.Item) []string {
	var diffs []string
	if current.Title != incoming.Title {
		diffs = append(diffs, fmt.Sprintf("title: current=%q incoming=%q", current.Title, incoming.Title))
	}
	if !equalDescription(current.Description, incoming.Description) {
		diffs = append(diffs, fmt.Sprintf("description: current=%s incoming=%s",
			describeOptional(current.Description), describeOptional(incoming.Description)))
	}
	if current.Quantity != incoming.Quantity {
		diffs = append(diffs, fmt.Sprintf("quantity: current=%d incoming=%d", current.Quantity, incoming.Quantity))
	}
	if current.OrderNumber != incoming.OrderNumber {
		diffs = append(diffs, fmt.Sprintf("order_number: current=%d incoming=%d", current.OrderNumber, incoming.OrderNumber))
	}
	if current.IsCrossedOut != incoming.IsCrossedOut {
		diffs = append(diffs, fmt.Sprintf("is_crossed_out: current=%t incoming=%t", current.IsCrossedOut, incoming.IsCrossedOut))
	}
	return diffs
}

// equalDescription compares optional descriptions; absent and empty string
// are distinct values.
func equalDescription(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func describeOptional(s *string) string {
	if s == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%q", *s)
}
