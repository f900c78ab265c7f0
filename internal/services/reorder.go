package services

import (
	"fmt"

	"navigator_backend/internal/repositories"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"
)

// validateReorderItems runs the shared per-field validation for reorder
// batches, in contract order: non-empty batch, then ids, then positions.
// entity ("article"/"form") only affects the error messages. Returns the
// batch as position updates plus the id -> position map used for the
// completeness check.
func validateReorderItems(items []dto.ReorderItem, entity string) ([]repositories.PositionUpdate, map[uint]int, error) {
	if len(items) == 0 {
		return nil, nil, apperrors.NewBadRequestError("Items must be a non-empty array")
	}

	for _, item := range items {
		if item.ID == nil || *item.ID < 1 {
			return nil, nil, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s ID", entity))
		}
	}
	for _, item := range items {
		if item.Position == nil || *item.Position < 1 {
			return nil, nil, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s position", entity))
		}
	}

	updates := make([]repositories.PositionUpdate, 0, len(items))
	byID := make(map[uint]int, len(items))
	for _, item := range items {
		id := uint(*item.ID)
		updates = append(updates, repositories.PositionUpdate{ID: id, Position: *item.Position})
		byID[id] = *item.Position
	}

	return updates, byID, nil
}

// checkDensePositions verifies that the submitted batch covers every id of a
// module and that the submitted positions are exactly a permutation of 1..N.
// moduleIDs holds the full id set of one module; byID the submitted batch.
func checkDensePositions(moduleIDs []uint, byID map[uint]int, entity string) error {
	seen := make(map[int]bool, len(moduleIDs))
	for _, id := range moduleIDs {
		pos, ok := byID[id]
		if !ok {
			return apperrors.NewBadRequestError(fmt.Sprintf(
				"Reorder must include every %s of the affected module", entity))
		}
		if pos < 1 || pos > len(moduleIDs) || seen[pos] {
			return apperrors.NewBadRequestError(fmt.Sprintf(
				"Submitted %s positions must be a permutation of 1..%d",
				entity, len(moduleIDs)))
		}
		seen[pos] = true
	}
	return nil
}
