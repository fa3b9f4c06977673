package subscription

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"dailysync/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func countingFetcher(counter *atomic.Int64, value any) Fetcher {
	return func(ctx context.Context, userID string) (any, error) {
		counter.Add(1)
		return value, nil
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestControllerStartFetchesImmediately(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	c := NewController(client, "user-1", "todos", countingFetcher(&fetches, []string{"a", "b"}))

	c.Start(context.Background())
	defer c.Stop()

	if got := fetches.Load(); got != 1 {
		t.Errorf("fetch count after Start = %d, want 1", got)
	}

	var snapshot []string
	if err := json.Unmarshal(c.Snapshot(), &snapshot); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	if len(snapshot) != 2 {
		t.Errorf("snapshot = %v, want two records", snapshot)
	}
}

func TestControllerRefreshesOnChangeEvent(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	c := NewController(client, "user-1", "todos", countingFetcher(&fetches, []string{"a"}))

	ctx := context.Background()
	c.Start(ctx)
	defer c.Stop()

	updates, cancel := c.Subscribe()
	defer cancel()

	// First delivery is the current snapshot, before any event.
	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("no immediate snapshot on subscribe")
	}

	pub := repository.NewRedisPublisher(client)
	// Give the listener a moment to establish its subscription.
	waitFor(t, time.Second, func() bool {
		return client.PubSubNumSub(ctx, repository.ChangeChannel("user-1", "todos")).Val()[repository.ChangeChannel("user-1", "todos")] == 1
	})
	if err := pub.PublishChange(ctx, "user-1", "todos"); err != nil {
		t.Fatalf("PublishChange() error = %v", err)
	}

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered after change event")
	}
	if got := fetches.Load(); got != 2 {
		t.Errorf("fetch count = %d, want 2 (initial + one event)", got)
	}
}

func TestControllerStartTwiceKeepsOneListener(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	c := NewController(client, "user-1", "todos", countingFetcher(&fetches, []string{"a"}))

	ctx := context.Background()
	c.Start(ctx)
	c.Start(ctx)
	defer c.Stop()

	channel := repository.ChangeChannel("user-1", "todos")
	waitFor(t, time.Second, func() bool {
		return client.PubSubNumSub(ctx, channel).Val()[channel] == 1
	})

	before := fetches.Load()
	pub := repository.NewRedisPublisher(client)
	if err := pub.PublishChange(ctx, "user-1", "todos"); err != nil {
		t.Fatalf("PublishChange() error = %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		return fetches.Load() == before+1
	})
	// Settle time: a second listener would produce a second refresh.
	time.Sleep(100 * time.Millisecond)
	if got := fetches.Load(); got != before+1 {
		t.Errorf("fetch count = %d, want %d (one refresh per event)", got, before+1)
	}
}

func TestControllerStopReturnsPromptly(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	c := NewController(client, "user-1", "todos", countingFetcher(&fetches, nil))

	c.Start(context.Background())

	stopped := make(chan struct{})
	go func() {
		c.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop() did not return: listener goroutine never exited")
	}
}

func TestControllerCatchesChangePublishedRightAfterStart(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	c := NewController(client, "user-1", "todos", countingFetcher(&fetches, []string{"a"}))

	ctx := context.Background()
	c.Start(ctx)
	defer c.Stop()

	// The feed is live by the time Start returns, so a change published
	// immediately afterwards must trigger a refresh.
	pub := repository.NewRedisPublisher(client)
	if err := pub.PublishChange(ctx, "user-1", "todos"); err != nil {
		t.Fatalf("PublishChange() error = %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		return fetches.Load() == 2
	})
}

func TestControllerStopEndsSubscription(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	c := NewController(client, "user-1", "todos", countingFetcher(&fetches, nil))

	ctx := context.Background()
	c.Start(ctx)

	channel := repository.ChangeChannel("user-1", "todos")
	waitFor(t, time.Second, func() bool {
		return client.PubSubNumSub(ctx, channel).Val()[channel] == 1
	})

	c.Stop()
	c.Stop() // idempotent

	waitFor(t, time.Second, func() bool {
		return client.PubSubNumSub(ctx, channel).Val()[channel] == 0
	})
}
