package subscription

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"dailysync/repository"
	"dailysync/utils"

	"github.com/redis/go-redis/v9"
)

// Fetcher loads the full, sorted collection value for a user. It returns the
// typed record slice; the controller marshals it once per refresh.
type Fetcher func(ctx context.Context, userID string) (any, error)

// Controller owns the single live subscription for one user's collection.
// On every change notification it re-fetches the complete collection and
// replaces the in-memory snapshot, so consumers only ever observe a fully
// replaced, internally consistent value — never a partial update.
type Controller struct {
	collection string
	userID     string
	fetch      Fetcher
	rc         *redis.Client

	mu       sync.RWMutex
	snapshot []byte
	nextID   int
	subs     map[int]chan []byte
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewController(rc *redis.Client, userID, collection string, fetch Fetcher) *Controller {
	return &Controller{
		collection: collection,
		userID:     userID,
		fetch:      fetch,
		rc:         rc,
		subs:       make(map[int]chan []byte),
	}
}

// Start activates the live subscription. Any previous subscription is
// cancelled first, so calling Start twice leaves exactly one listener and
// a single change produces a single fan-out.
func (c *Controller) Start(ctx context.Context) {
	c.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	// The channel subscription must be live before the first snapshot is
	// taken: pub/sub is fire-and-forget, so a change slipping between the
	// two would otherwise be lost for good.
	sub := c.subscribe(ctx)

	// Subscriptions fire immediately with the current value.
	if err := c.refresh(ctx); err != nil {
		log.Printf("initial snapshot for %s/%s: %v", c.userID, c.collection, err)
	}

	utils.ActiveSubscriptions.Inc()
	go c.listen(ctx, done, sub)
}

// Stop cancels the live subscription, if any. Idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	utils.ActiveSubscriptions.Dec()
}

// subscribe opens the change channel and waits for the server's
// confirmation, so callers know the feed is live when it returns.
func (c *Controller) subscribe(ctx context.Context) *redis.PubSub {
	sub := c.rc.Subscribe(ctx, repository.ChangeChannel(c.userID, c.collection))
	if _, err := sub.Receive(ctx); err != nil {
		log.Printf("subscribe %s/%s: %v", c.userID, c.collection, err)
	}
	return sub
}

func (c *Controller) listen(ctx context.Context, done chan struct{}, sub *redis.PubSub) {
	defer close(done)
	channel := repository.ChangeChannel(c.userID, c.collection)
	for {
		ch := sub.Channel()
	recv:
		for {
			select {
			case <-ctx.Done():
				sub.Close()
				return
			case _, ok := <-ch:
				if !ok {
					break recv
				}
				if err := c.refresh(ctx); err != nil {
					log.Printf("refresh %s/%s: %v", c.userID, c.collection, err)
				}
			}
		}
		sub.Close()
		if ctx.Err() != nil {
			return
		}
		// transport dropped the channel; let the client reconnect
		log.Printf("change channel %s closed, resubscribing", channel)
		time.Sleep(time.Second)
		sub = c.subscribe(ctx)
		// anything published during the outage was dropped by the
		// transport, so take a fresh snapshot before listening again
		if err := c.refresh(ctx); err != nil {
			log.Printf("refresh %s/%s: %v", c.userID, c.collection, err)
		}
	}
}

// refresh replaces the snapshot with the current full collection value and
// fans it out to every subscriber.
func (c *Controller) refresh(ctx context.Context) error {
	records, err := c.fetch(ctx, c.userID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	utils.TrackSnapshotRefresh(c.collection)

	c.mu.Lock()
	c.snapshot = data
	subs := make([]chan []byte, 0, len(c.subs))
	for _, ch := range c.subs {
		subs = append(subs, ch)
	}
	c.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- data:
		default:
			// slow consumer; it will catch up on the next change
		}
	}
	return nil
}

// Snapshot returns the last delivered full collection value as JSON, or nil
// when nothing has been received yet.
func (c *Controller) Snapshot() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Subscribe registers a consumer of full snapshots. The channel fires
// immediately with the current snapshot, then on every subsequent change.
// The returned cancel func must be called to release the consumer.
func (c *Controller) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 8)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	snapshot := c.snapshot
	c.mu.Unlock()

	if snapshot != nil {
		ch <- snapshot
	}

	cancel := func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
	return ch, cancel
}
