package usecase

import (
	"context"
	"encoding/json"
	"log"

	"dailysync/utils"
)

// fetchCollection reads the full collection from the remote store, mirroring
// the result into the offline cache. When the remote store is unreachable it
// serves the last mirrored records instead; the cache never becomes a source
// of truth beyond that fallback.
func fetchCollection[T interface{ RecordID() string }](ctx context.Context, gw *Gateway, userID, collection string) ([]T, error) {
	records := []T{}
	err := gw.Store.FindAll(ctx, userID, collection, &records)
	if err == nil {
		mirrorCollection(ctx, gw, userID, collection, records)
		return records, nil
	}

	if gw.Cache == nil {
		return nil, err
	}
	raw, cerr := gw.Cache.GetAll(ctx, userID, collection)
	if cerr != nil {
		utils.TrackError("cache", collection+"_fallback_failed")
		return nil, err
	}

	log.Printf("remote store unreachable, serving %s from offline cache: %v", collection, err)
	records = records[:0]
	for _, doc := range raw {
		var rec T
		if uerr := json.Unmarshal(doc, &rec); uerr != nil {
			log.Printf("Warning: skipping malformed cached %s record: %v", collection, uerr)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// mirrorCollection rewrites the cache region to match the fetched snapshot,
// so deletions disappear from the mirror as well. Best effort.
func mirrorCollection[T interface{ RecordID() string }](ctx context.Context, gw *Gateway, userID, collection string, records []T) {
	if gw.Cache == nil {
		return
	}
	byID := make(map[string]any, len(records))
	for _, rec := range records {
		byID[rec.RecordID()] = rec
	}
	if err := gw.Cache.ReplaceAll(ctx, userID, collection, byID); err != nil {
		utils.TrackError("cache", collection+"_mirror_failed")
		log.Printf("Warning: failed to mirror %s collection: %v", collection, err)
	}
}
