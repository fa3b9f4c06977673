package subscription

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub is the session-scoped sync context: one controller per collection per
// active user, created lazily on first use and torn down together. It
// replaces the web client's module-level listener globals with a single
// owned object.
type Hub struct {
	rc       *redis.Client
	fetchers map[string]Fetcher

	mu    sync.Mutex
	users map[string]map[string]*hubEntry
}

// hubEntry pairs a controller with its one-time activation, so every
// caller — including racers on a brand-new controller — returns only after
// Start has completed and a snapshot exists.
type hubEntry struct {
	start sync.Once
	ctrl  *Controller
}

func NewHub(rc *redis.Client, fetchers map[string]Fetcher) *Hub {
	return &Hub{
		rc:       rc,
		fetchers: fetchers,
		users:    make(map[string]map[string]*hubEntry),
	}
}

// Controller returns the live controller for the user's collection,
// activating it on first use. Subsequent calls return the same instance;
// its subscription stays live for the session lifetime.
func (h *Hub) Controller(ctx context.Context, userID, collection string) (*Controller, error) {
	fetch, ok := h.fetchers[collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	h.mu.Lock()
	perUser, ok := h.users[userID]
	if !ok {
		perUser = make(map[string]*hubEntry)
		h.users[userID] = perUser
	}
	entry, ok := perUser[collection]
	if !ok {
		entry = &hubEntry{ctrl: NewController(h.rc, userID, collection, fetch)}
		perUser[collection] = entry
	}
	h.mu.Unlock()

	entry.start.Do(func() {
		// The controller outlives the request that created it; its
		// lifetime ends at DropUser or Close, not when the caller's
		// context does.
		entry.ctrl.Start(context.WithoutCancel(ctx))
	})
	return entry.ctrl, nil
}

// Snapshot returns the current snapshot for the user's collection, starting
// the controller if needed.
func (h *Hub) Snapshot(ctx context.Context, userID, collection string) ([]byte, error) {
	ctrl, err := h.Controller(ctx, userID, collection)
	if err != nil {
		return nil, err
	}
	return ctrl.Snapshot(), nil
}

// DropUser tears down every controller belonging to the user. Called at
// session end (logout).
func (h *Hub) DropUser(userID string) {
	h.mu.Lock()
	perUser := h.users[userID]
	delete(h.users, userID)
	h.mu.Unlock()

	for _, entry := range perUser {
		entry.ctrl.Stop()
	}
}

// Close tears down every controller in the hub.
func (h *Hub) Close() {
	h.mu.Lock()
	users := h.users
	h.users = make(map[string]map[string]*hubEntry)
	h.mu.Unlock()

	for _, perUser := range users {
		for _, entry := range perUser {
			entry.ctrl.Stop()
		}
	}
}
