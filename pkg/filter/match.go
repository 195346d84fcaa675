package filter

import (
	"context"

	"github.com/curatord/curatord/pkg/storage"
)

// MatchedCollection identifies a filter-type collection an item
// satisfies, carrying just what the Webhook Propagator needs to append
// the item on the server side.
type MatchedCollection struct {
	ID               int64
	Name             string
	EmbyCollectionID string
}

// FindMatchingCollections iterates every active filter-type collection
// with a bound Emby collection id, pre-filters by item_type
// compatibility, then evaluates its rule tree against item.
func FindMatchingCollections(ctx context.Context, store storage.CustomCollectionStorage, item storage.MediaMetadata) ([]MatchedCollection, error) {
	collections, err := store.ListCustomCollections(ctx)
	if err != nil {
		return nil, err
	}

	var matched []MatchedCollection
	for _, c := range collections {
		if c.Type != storage.CollectionTypeFilter || c.Status != "active" || c.EmbyCollectionID == nil {
			continue
		}

		def, err := ParseDefinition(c.Definition)
		if err != nil {
			continue
		}
		if !itemTypeAllowed(def.ItemTypes, item.ItemType) {
			continue
		}

		if Evaluate(def, item) {
			matched = append(matched, MatchedCollection{ID: c.ID, Name: c.Name, EmbyCollectionID: *c.EmbyCollectionID})
		}
	}

	return matched, nil
}

func itemTypeAllowed(allowed []storage.ItemType, itemType storage.ItemType) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if t == itemType {
			return true
		}
	}
	return false
}
