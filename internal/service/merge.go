package service

import (
	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
)

// MergeEngine unions item lists keyed by exact item name
type MergeEngine struct {
	logger zerolog.Logger
}

// NewMergeEngine creates a merge engine
func NewMergeEngine() *MergeEngine {
	return &MergeEngine{logger: logging.Component("merge")}
}

// Merge walks every list in order and keeps one item per name:
//   - the first occurrence fixes the position and the category
//   - essential is sticky: any essential occurrence makes the result essential
//   - count is the maximum of the counts that are set; unset stays unset
//
// Items without a name or category are dropped; negative counts are treated
// as unset.
func (m *MergeEngine) Merge(lists [][]domain.Item) []domain.Item {
	merged := make([]domain.Item, 0)
	index := make(map[string]int)

	for _, list := range lists {
		for _, item := range list {
			if item.Name == "" || item.Category == "" {
				m.logger.Warn().Str("name", item.Name).Str("category", string(item.Category)).Msg("dropping malformed item")
				continue
			}

			if item.Count < 0 {
				m.logger.Warn().Str("name", item.Name).Int("count", item.Count).Msg("dropping negative count")
				item.Count = 0
			}

			i, seen := index[item.Name]
			if !seen {
				index[item.Name] = len(merged)
				merged = append(merged, item)
				continue
			}

			merged[i] = mergeItem(merged[i], item)
		}
	}

	return merged
}

func mergeItem(existing, incoming domain.Item) domain.Item {
	out := existing
	out.IsEssential = existing.IsEssential || incoming.IsEssential
	if incoming.HasCount() && incoming.Count > existing.Count {
		out.Count = incoming.Count
	}
	return out
}
