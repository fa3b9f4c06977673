package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"dailysync/model"
	"dailysync/repository"
	"dailysync/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoSession is returned by every mutation attempted without an
// authenticated principal. No remote write happens in that case; callers
// must check the error before assuming persistence occurred.
var ErrNoSession = errors.New("no authenticated session")

// Gateway is the single funnel for entity writes. It centralizes identifier
// assignment and timestamp stamping, mirrors writes into the offline cache
// and publishes a change event after every accepted mutation so the live
// subscriptions pick it up. It never recomputes entity fields itself; the
// services derive streak/progress before handing records over.
type Gateway struct {
	Store repository.RemoteStore
	Cache *repository.OfflineCache
	Pub   repository.Publisher

	// Now is the mutation clock; overridable in tests.
	Now func() time.Time
}

func NewGateway(store repository.RemoteStore, cache *repository.OfflineCache, pub repository.Publisher) *Gateway {
	return &Gateway{Store: store, Cache: cache, Pub: pub, Now: time.Now}
}

func (g *Gateway) nowMillis() int64 {
	if g.Now != nil {
		return g.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

// Create assigns id/createdAt/updatedAt, persists the record and returns
// the new id.
func (g *Gateway) Create(ctx context.Context, userID, collection string, rec model.Record) (string, error) {
	if userID == "" {
		return "", ErrNoSession
	}

	id := utils.GenerateID()
	rec.Stamp(id, userID, g.nowMillis())

	if err := g.Store.Insert(ctx, collection, rec); err != nil {
		return "", err
	}

	g.mirror(ctx, userID, collection, id, rec)
	g.publish(ctx, userID, collection)
	return id, nil
}

// Update merges the partial payload into the existing record and stamps
// updated_at. Fields omitted from the payload keep their prior value.
//
// The cache mirror is not rewritten here: the partial payload carries bson
// field names, while the mirror holds the record's JSON form, so merging it
// in place would corrupt the entry. The mirror entry stays stale until the
// next collection fetch re-mirrors the region, which the change event this
// method publishes triggers on every live subscription.
func (g *Gateway) Update(ctx context.Context, userID, collection, id string, fields bson.M) error {
	if userID == "" {
		return ErrNoSession
	}

	fields["updated_at"] = g.nowMillis()
	if err := g.Store.Update(ctx, userID, collection, id, fields); err != nil {
		return err
	}

	g.publish(ctx, userID, collection)
	return nil
}

// Set overwrites the whole document at the path, creating it if absent.
// Reserved for singleton documents, not entity collections.
func (g *Gateway) Set(ctx context.Context, userID, collection, id string, rec any) error {
	if userID == "" {
		return ErrNoSession
	}

	if err := g.Store.Replace(ctx, userID, collection, id, rec); err != nil {
		return err
	}

	g.mirror(ctx, userID, collection, id, rec)
	g.publish(ctx, userID, collection)
	return nil
}

// Delete drops the record and its cache mirror entry.
func (g *Gateway) Delete(ctx context.Context, userID, collection, id string) error {
	if userID == "" {
		return ErrNoSession
	}

	if err := g.Store.Delete(ctx, userID, collection, id); err != nil {
		return err
	}

	if g.Cache != nil {
		if err := g.Cache.Remove(ctx, userID, collection, id); err != nil {
			utils.TrackError("cache", collection+"_remove_failed")
			log.Printf("Warning: failed to remove cached %s record: %v", collection, err)
		}
	}
	g.publish(ctx, userID, collection)
	return nil
}

// mirror writes one record into the offline cache, best effort.
func (g *Gateway) mirror(ctx context.Context, userID, collection, id string, rec any) {
	if g.Cache == nil {
		return
	}
	if err := g.Cache.Save(ctx, userID, collection, id, rec); err != nil {
		utils.TrackError("cache", collection+"_save_failed")
		log.Printf("Warning: failed to mirror %s record: %v", collection, err)
	}
}

func (g *Gateway) publish(ctx context.Context, userID, collection string) {
	if g.Pub == nil {
		return
	}
	if err := g.Pub.PublishChange(ctx, userID, collection); err != nil {
		utils.TrackError("pubsub", collection+"_publish_failed")
		log.Printf("Warning: failed to publish %s change: %v", collection, err)
	}
}
