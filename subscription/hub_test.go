package subscription

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"dailysync/repository"
)

func TestHubReturnsSameController(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	hub := NewHub(client, map[string]Fetcher{
		"todos": countingFetcher(&fetches, []string{"a"}),
	})
	defer hub.Close()

	ctx := context.Background()
	first, err := hub.Controller(ctx, "user-1", "todos")
	if err != nil {
		t.Fatalf("Controller() error = %v", err)
	}
	second, err := hub.Controller(ctx, "user-1", "todos")
	if err != nil {
		t.Fatalf("Controller() error = %v", err)
	}
	if first != second {
		t.Error("hub created a second controller for the same collection")
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("fetch count = %d, want 1 (single activation)", got)
	}
}

func TestHubConcurrentControllerCreation(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	hub := NewHub(client, map[string]Fetcher{
		"todos": countingFetcher(&fetches, []string{"a"}),
	})
	defer hub.Close()

	ctx := context.Background()
	type result struct {
		ctrl     *Controller
		snapshot []byte
		err      error
	}
	results := make(chan result, 2)
	release := make(chan struct{})
	for i := 0; i < 2; i++ {
		go func() {
			<-release
			ctrl, err := hub.Controller(ctx, "user-1", "todos")
			var snapshot []byte
			if ctrl != nil {
				snapshot = ctrl.Snapshot()
			}
			results <- result{ctrl, snapshot, err}
		}()
	}
	close(release)

	first := <-results
	second := <-results
	if first.err != nil || second.err != nil {
		t.Fatalf("Controller() errors = %v, %v", first.err, second.err)
	}
	if first.ctrl != second.ctrl {
		t.Error("concurrent callers received different controllers")
	}
	if first.snapshot == nil || second.snapshot == nil {
		t.Error("Controller() returned before the first snapshot was taken")
	}
}

func TestHubUnknownCollection(t *testing.T) {
	client, _ := testRedis(t)
	hub := NewHub(client, map[string]Fetcher{})
	defer hub.Close()

	if _, err := hub.Controller(context.Background(), "user-1", "bogus"); err == nil {
		t.Error("unknown collection accepted")
	}
}

func TestHubControllerSurvivesRequestContext(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	hub := NewHub(client, map[string]Fetcher{
		"todos": countingFetcher(&fetches, []string{"a"}),
	})
	defer hub.Close()

	reqCtx, cancel := context.WithCancel(context.Background())
	if _, err := hub.Controller(reqCtx, "user-1", "todos"); err != nil {
		t.Fatalf("Controller() error = %v", err)
	}
	cancel()

	channel := repository.ChangeChannel("user-1", "todos")
	waitFor(t, time.Second, func() bool {
		return client.PubSubNumSub(context.Background(), channel).Val()[channel] == 1
	})

	before := fetches.Load()
	pub := repository.NewRedisPublisher(client)
	if err := pub.PublishChange(context.Background(), "user-1", "todos"); err != nil {
		t.Fatalf("PublishChange() error = %v", err)
	}
	waitFor(t, 2*time.Second, func() bool {
		return fetches.Load() == before+1
	})
}

func TestHubDropUserStopsControllers(t *testing.T) {
	client, _ := testRedis(t)
	var fetches atomic.Int64
	hub := NewHub(client, map[string]Fetcher{
		"todos":  countingFetcher(&fetches, []string{"a"}),
		"habits": countingFetcher(&fetches, []string{"b"}),
	})
	defer hub.Close()

	ctx := context.Background()
	if _, err := hub.Controller(ctx, "user-1", "todos"); err != nil {
		t.Fatalf("Controller() error = %v", err)
	}
	if _, err := hub.Controller(ctx, "user-1", "habits"); err != nil {
		t.Fatalf("Controller() error = %v", err)
	}

	hub.DropUser("user-1")

	for _, collection := range []string{"todos", "habits"} {
		channel := repository.ChangeChannel("user-1", collection)
		waitFor(t, time.Second, func() bool {
			return client.PubSubNumSub(ctx, channel).Val()[channel] == 0
		})
	}
}
